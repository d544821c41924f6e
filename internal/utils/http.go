package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as an "application/json" response
// body under the given status code. Headers and status are only written
// after marshaling succeeds, so a marshaling failure still produces a clean
// 500 instead of a half-written response.
//
// The first return value is the number of body bytes written; the error is
// non-nil only when marshaling fails.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
