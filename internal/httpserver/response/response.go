// Package response writes the JSON envelopes shared by every handler.
package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the uniform failure shape: {error, detail?}.
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// JSON encodes v with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Raw forwards a pre-encoded JSON body, preserving the given status.
func Raw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Error writes the failure envelope without detail.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorBody{Error: msg})
}

// ErrorWithDetail writes the failure envelope with a diagnostic detail.
func ErrorWithDetail(w http.ResponseWriter, status int, msg, detail string) {
	JSON(w, status, ErrorBody{Error: msg, Detail: detail})
}
