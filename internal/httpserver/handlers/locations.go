package handlers

import (
	"net/http"
	"strings"

	"voyago/internal/httpserver/deps"
	"voyago/internal/httpserver/response"
)

// Locations proxies the city/airport keyword search:
// GET /api/locations?keyword=par.
func Locations(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))
		if keyword == "" {
			response.Error(w, http.StatusBadRequest, "missing keyword")
			return
		}

		payload, err := d.Travel.SearchLocations(r.Context(), keyword)
		if err != nil {
			writeTravelError(w, d.Logger, err)
			return
		}
		response.Raw(w, http.StatusOK, payload)
	}
}
