package http

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/blood-press-log/internal/logger"
	"github.com/MKhiriev/blood-press-log/internal/utils"
	"github.com/MKhiriev/blood-press-log/models"
)

func (h *Handler) saveReading(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SaveReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if request.UserID == 0 {
		log.Error().Msg("userId is required")
		respondError(w, "userId is required", http.StatusBadRequest)
		return
	}

	id, err := h.services.ReadingService.SaveReading(ctx, request.UserID, request.Primary(), request.Secondary(), request.MeasuredAt)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int64("user_id", request.UserID).Msg("error saving reading")
		if status == http.StatusBadRequest {
			respondError(w, "missing required fields: userId, high, low, plus", status)
			return
		}
		respondError(w, "internal server error", status)
		return
	}

	utils.WriteJSON(w, models.SaveReadingResponse{Success: true, ID: id}, http.StatusOK)
}

func (h *Handler) listReadings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := parseReadingFilter(r)
	if err != nil {
		log.Err(err).Msg("invalid readings query")
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.services.ReadingService.ListReadings(ctx, filter)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int64("user_id", filter.UserID).Msg("error fetching readings")
		if status == http.StatusBadRequest {
			respondError(w, "userId is required", status)
			return
		}
		respondError(w, "internal server error", status)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) exportReadings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := parseReadingFilter(r)
	if err != nil {
		log.Err(err).Msg("invalid export query")
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.services.ReadingService.ExportReadings(ctx, filter)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int64("user_id", filter.UserID).Msg("error exporting readings")
		if status == http.StatusBadRequest {
			respondError(w, "userId is required", status)
			return
		}
		respondError(w, "internal server error", status)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="blood-press-log.csv"`)
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)
	writer.Write([]string{"id", "measured_at", "high", "low", "plus", "created_at"}) //nolint:errcheck
	for _, record := range records {
		writer.Write([]string{ //nolint:errcheck
			strconv.FormatInt(record.ID, 10),
			record.MeasuredAt.String(),
			strconv.Itoa(record.High),
			strconv.Itoa(record.Low),
			strconv.Itoa(record.Plus),
			record.CreatedAt.Format(time.RFC3339),
		})
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		log.Err(err).Msg("error writing csv export")
	}
}

// parseReadingFilter extracts and validates the list/export query
// parameters. Date boundaries must be "YYYY-MM-DD"; page and limit must be
// integers when present.
func parseReadingFilter(r *http.Request) (models.ReadingFilter, error) {
	query := r.URL.Query()

	rawUserID := query.Get("userId")
	if rawUserID == "" {
		return models.ReadingFilter{}, fmt.Errorf("userId is required")
	}

	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		return models.ReadingFilter{}, fmt.Errorf("userId must be an integer")
	}

	filter := models.ReadingFilter{UserID: userID}

	if raw := query.Get("startDate"); raw != "" {
		filter.StartDate, err = models.ParseDate(raw)
		if err != nil {
			return models.ReadingFilter{}, fmt.Errorf("startDate must be formatted as YYYY-MM-DD")
		}
	}

	if raw := query.Get("endDate"); raw != "" {
		filter.EndDate, err = models.ParseDate(raw)
		if err != nil {
			return models.ReadingFilter{}, fmt.Errorf("endDate must be formatted as YYYY-MM-DD")
		}
	}

	if raw := query.Get("page"); raw != "" {
		filter.Page, err = strconv.Atoi(raw)
		if err != nil {
			return models.ReadingFilter{}, fmt.Errorf("page must be an integer")
		}
	}

	if raw := query.Get("limit"); raw != "" {
		filter.Limit, err = strconv.Atoi(raw)
		if err != nil {
			return models.ReadingFilter{}, fmt.Errorf("limit must be an integer")
		}
	}

	return filter, nil
}
