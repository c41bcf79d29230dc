// Package respond writes the service's JSON bodies. Conversion outcomes
// are not errors at this layer; only malformed requests and missing
// resources come through here.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Failure is the body of every non-2xx response. FailureCode carries the
// conversion failure taxonomy when the rejection maps onto it, so API
// clients branch on the same codes library callers do.
type Failure struct {
	Error       string `json:"error"`
	Code        int    `json:"code"`
	FailureCode string `json:"failureCode,omitempty"`
	Message     string `json:"message,omitempty"`
}

// WriteJSON writes data with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Int("status", statusCode).Msg("Failed to encode response body")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// WriteFailure writes a failure response, optionally tagged with a
// conversion failure code name.
func WriteFailure(w http.ResponseWriter, statusCode int, failureCode, message string) {
	WriteJSON(w, statusCode, Failure{
		Error:       http.StatusText(statusCode),
		Code:        statusCode,
		FailureCode: failureCode,
		Message:     message,
	})
}

// WriteBadRequest writes a 400. Malformed requests never reach the
// conversion pipeline, so they carry no failure code.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteFailure(w, http.StatusBadRequest, "", message)
}

// WriteNotFound writes a 404.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteFailure(w, http.StatusNotFound, "", message)
}
