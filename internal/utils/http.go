// Package utils provides general-purpose helper utilities used across
// different parts of the application: plain-text HTTP responses and
// identifier generation.
package utils

import (
	"net/http"
)

// WriteText writes text as a plain-text response with the given status code.
//
// It sets the "Content-Type" header to "text/plain; charset=utf-8" and
// writes statusCode before the body. It returns the number of bytes written
// and any error from the underlying writer.
//
// Example usage:
//
//	WriteText(w, http.StatusOK, "ok")
//	WriteText(w, http.StatusConflict, "No vials to consume!")
func WriteText(w http.ResponseWriter, statusCode int, text string) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}
