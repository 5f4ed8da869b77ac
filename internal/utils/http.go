package utils

import (
	"net/http"
)

// WriteText writes body to the HTTP response as-is.
//
// It sets the "Content-Type" header to contentType and writes the provided
// HTTP status code before sending the response body.
//
// Parameters:
//
//	w           - the HTTP response writer to write the response to
//	body        - the response body
//	contentType - value of the Content-Type header (e.g. "text/plain; charset=utf-8")
//	statusCode  - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if writing the body fails
//
// Example usage:
//
//	WriteText(w, "AnnBob", "text/plain; charset=utf-8", http.StatusOK)
func WriteText(w http.ResponseWriter, body, contentType string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write([]byte(body))
}
