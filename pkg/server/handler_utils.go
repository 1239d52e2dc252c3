package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mightyai/mighty-gateway/internal"
	"github.com/mightyai/mighty-gateway/pkg/models"
)

var log = internal.GetLogger()

// APIError represents an error response. Used for swagger documentation.
type APIError struct {
	Message string `json:"message"`
}

// encodeJSON encodes data into JSON and writes it to the response writer.
func encodeJSON(w http.ResponseWriter, data interface{}) error {
	return json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes a JSON request body into the provided data struct.
func decodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(&data)
}

// renderError renders an error response.
func renderError(w http.ResponseWriter, err error, status int) {
	if status != http.StatusBadRequest {
		// Don't log client errors
		log.Error(err)
	}
	http.Error(w, err.Error(), status)
}

// statusForError maps a capability-level error to the caller-visible status:
// an unreachable backend is 503, everything else (including malformed backend
// responses) is 500.
func statusForError(err error) int {
	if errors.Is(err, models.ErrBackendUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
