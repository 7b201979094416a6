package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// WriteJSON encodes data and writes it with statusCode and an
// application/json content type. When data cannot be encoded the client
// gets 500 and the encoding error is returned.
//
//	WriteJSON(w, bundles, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	return write(w, contentTypeJSON, statusCode, body)
}

// WriteText writes s as a UTF-8 plain text response.
func WriteText(w http.ResponseWriter, s string, statusCode int) (int, error) {
	return write(w, contentTypeText, statusCode, []byte(s))
}

func write(w http.ResponseWriter, contentType string, statusCode int, body []byte) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
