package handlers

import (
	"net/http"

	"voyago/internal/httpserver/deps"
	"voyago/internal/httpserver/response"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, readyzResponse{Ready: true})
	}
}
