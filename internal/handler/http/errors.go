package http

import (
	"net/http"

	"github.com/MKhiriev/blood-press-log/internal/utils"
	"github.com/MKhiriev/blood-press-log/models"
)

// respondError writes the JSON error body every failed request carries.
func respondError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode) //nolint:errcheck
}
