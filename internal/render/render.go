package render

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v as a JSON response with the given status code.
// The payload is encoded into a buffer first so that an encoding failure
// can still produce a clean 500 instead of a half-written body.
func JSON(w http.ResponseWriter, status int, v interface{}) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Error writes a JSON error body with the given status code and message.
func Error(w http.ResponseWriter, status int, message string) {
	// Encoding a flat struct cannot fail; ignore the returned error.
	_ = JSON(w, status, errorBody{Error: message})
}
