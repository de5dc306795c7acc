package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/blood-press-log/internal/logger"
	"github.com/MKhiriev/blood-press-log/internal/store"
	"github.com/MKhiriev/blood-press-log/models"
)

const defaultPageSize = 10

// readingService is the concrete implementation of ReadingService. It folds
// up to two raw cuff measurements into one stored reading and serves the
// filtered, paginated history queries behind the list and export views.
type readingService struct {
	readingRepository store.ReadingRepository
	logger            *logger.Logger
}

// NewReadingService constructs a ReadingService wired to the given
// ReadingRepository.
func NewReadingService(readingRepository store.ReadingRepository, logger *logger.Logger) ReadingService {
	return &readingService{
		readingRepository: readingRepository,
		logger:            logger,
	}
}

// SaveReading aggregates primary and secondary into one reading and
// persists it.
//
// The primary measurement must have all three channels filled with numeric
// values; otherwise ErrPrimaryMeasurementIncomplete is returned. A
// secondary with any empty channel is ignored and the primary is stored
// verbatim. A fully present secondary is averaged per channel with the
// primary, rounding halves away from zero (119.5 → 120).
func (s *readingService) SaveReading(ctx context.Context, userID int64, primary, secondary models.RawMeasurement, measuredAt string) (int64, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("user_id", userID).Msg("missing user id for reading save")
		return 0, ErrInvalidDataProvided
	}

	high, low, plus, err := aggregate(primary, secondary)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("measurement aggregation failed")
		return 0, err
	}

	measuredDate := models.Today()
	if measuredAt != "" {
		measuredDate, err = models.ParseDate(measuredAt)
		if err != nil {
			log.Err(err).Str("measured_at", measuredAt).Msg("invalid measurement date")
			return 0, ErrInvalidDataProvided
		}
	}

	id, err := s.readingRepository.Insert(ctx, models.Reading{
		UserID:     userID,
		High:       high,
		Low:        low,
		Plus:       plus,
		MeasuredAt: measuredDate,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("reading insert ended with error")
		return 0, fmt.Errorf("reading insert ended with error: %w", err)
	}

	return id, nil
}

// ListReadings returns one page of the user's filtered history.
//
// Page defaults to 1 and page size to 10. totalPages is
// ceil(total/limit) with a floor of 1 so the client always has a valid
// page range to render. Page numbers below 1 or beyond totalPages produce
// an empty window without an error.
func (s *readingService) ListReadings(ctx context.Context, filter models.ReadingFilter) (models.ReadingPage, error) {
	log := logger.FromContext(ctx)

	if filter.UserID <= 0 {
		log.Error().Msg("missing user id for readings query")
		return models.ReadingPage{}, ErrInvalidDataProvided
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}

	total, err := s.readingRepository.CountReadings(ctx, filter)
	if err != nil {
		return models.ReadingPage{}, fmt.Errorf("counting readings ended with error: %w", err)
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	page := models.ReadingPage{
		Records:    []models.Reading{},
		Total:      total,
		Page:       filter.Page,
		TotalPages: totalPages,
	}

	// out-of-range pages are an empty window, not an error
	if filter.Page < 1 || filter.Page > totalPages {
		return page, nil
	}

	records, err := s.readingRepository.FindReadings(ctx, filter)
	if err != nil {
		return models.ReadingPage{}, fmt.Errorf("querying readings ended with error: %w", err)
	}

	page.Records = records
	return page, nil
}

// ExportReadings returns the full filtered, date-descending set without
// windowing.
func (s *readingService) ExportReadings(ctx context.Context, filter models.ReadingFilter) ([]models.Reading, error) {
	log := logger.FromContext(ctx)

	if filter.UserID <= 0 {
		log.Error().Msg("missing user id for readings export")
		return nil, ErrInvalidDataProvided
	}

	filter.Page = 0
	filter.Limit = 0

	records, err := s.readingRepository.FindReadings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("exporting readings ended with error: %w", err)
	}

	return records, nil
}

// aggregate folds the primary and optional secondary measurements into the
// three stored channels.
//
// Rules:
//   - primary must be complete and numeric → ErrPrimaryMeasurementIncomplete;
//   - secondary incomplete (any channel empty) → primary verbatim;
//   - secondary complete → per-channel rounded mean, halves away from zero.
func aggregate(primary, secondary models.RawMeasurement) (high, low, plus int, err error) {
	pHigh, pLow, pPlus, err := parseMeasurement(primary)
	if err != nil {
		return 0, 0, 0, ErrPrimaryMeasurementIncomplete
	}

	if !secondary.IsComplete() {
		return pHigh, pLow, pPlus, nil
	}

	sHigh, sLow, sPlus, err := parseMeasurement(secondary)
	if err != nil {
		// present but non-numeric is malformed input, not a partial slot
		return 0, 0, 0, ErrInvalidDataProvided
	}

	return roundedMean(pHigh, sHigh), roundedMean(pLow, sLow), roundedMean(pPlus, sPlus), nil
}

// parseMeasurement converts all three channels to integers; any empty or
// non-numeric channel fails the whole triple.
func parseMeasurement(m models.RawMeasurement) (high, low, plus int, err error) {
	high, err = strconv.Atoi(strings.TrimSpace(m.High))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("systolic channel: %w", err)
	}

	low, err = strconv.Atoi(strings.TrimSpace(m.Low))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("diastolic channel: %w", err)
	}

	plus, err = strconv.Atoi(strings.TrimSpace(m.Plus))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("pulse channel: %w", err)
	}

	return high, low, plus, nil
}

// roundedMean returns round((a+b)/2) with halves rounded away from zero.
func roundedMean(a, b int) int {
	return int(math.Round(float64(a+b) / 2))
}
