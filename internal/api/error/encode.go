package error

import (
	"encoding/json"
	"net/http"
)

// Error is the wire shape of every error response:
// {message: string, details?: object}.
type Error struct {
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// EncodeError writes an error response with the status of the code.
func EncodeError(w http.ResponseWriter, code ErrorCode, message string) error {
	return encode(w, code.StatusCode(), Error{Message: message})
}

// EncodeValidationError writes a 400 with per-field details.
func EncodeValidationError(w http.ResponseWriter, message string, details map[string]any) error {
	return encode(w, http.StatusBadRequest, Error{Message: message, Details: details})
}

// EncodeInternalError writes a 500 with a generic message. Internal
// causes are logged, never sent to the client.
func EncodeInternalError(w http.ResponseWriter) error {
	return encode(w, http.StatusInternalServerError, Error{Message: "internal server error"})
}

func encode(w http.ResponseWriter, status int, body Error) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(payload)
	return err
}
