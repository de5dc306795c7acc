package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/blood-press-log/internal/logger"
	"github.com/MKhiriev/blood-press-log/models"
)

// ocrService validates and normalizes uploaded images before handing them
// to the external recognizer. It is stateless per call: no retries, no
// caching of recognition results.
type ocrService struct {
	recognizer Recognizer
	logger     *logger.Logger
}

// NewOCRService constructs an OCRService delegating to the given Recognizer.
func NewOCRService(recognizer Recognizer, logger *logger.Logger) OCRService {
	return &ocrService{
		recognizer: recognizer,
		logger:     logger,
	}
}

// Recognize strips an optional "data:image/...;base64," prefix from the
// uploaded image and forwards the bare base64 payload to the recognizer.
//
// Returns ErrInvalidDataProvided when the image is empty; recognizer
// failures pass through unchanged for the transport layer to classify.
func (s *ocrService) Recognize(ctx context.Context, image string) (models.RawMeasurement, error) {
	log := logger.FromContext(ctx)

	if image == "" {
		log.Error().Msg("missing image for recognition")
		return models.RawMeasurement{}, ErrInvalidDataProvided
	}

	if strings.HasPrefix(image, "data:image/") {
		if _, rest, ok := strings.Cut(image, ";base64,"); ok {
			image = rest
		}
	}

	return s.recognizer.Recognize(ctx, image)
}
