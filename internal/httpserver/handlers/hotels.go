package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"voyago/internal/httpserver/deps"
	"voyago/internal/httpserver/response"
	"voyago/internal/logger"
)

// HotelsGet proxies the hotel list search: GET /api/hotels?cityCode=PAR.
func HotelsGet(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		searchHotels(d, w, r, r.URL.Query().Get("cityCode"))
	}
}

// HotelsPost is the body variant: POST /api/hotels {"cityCode":"PAR"}.
func HotelsPost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CityCode string `json:"cityCode"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}
		searchHotels(d, w, r, body.CityCode)
	}
}

func searchHotels(d deps.Deps, w http.ResponseWriter, r *http.Request, cityCode string) {
	cityCode = strings.ToUpper(strings.TrimSpace(cityCode))
	if cityCode == "" {
		response.Error(w, http.StatusBadRequest, "missing cityCode")
		return
	}

	payload, err := d.Travel.SearchHotelsByCity(r.Context(), cityCode)
	if err != nil {
		writeTravelError(w, d.Logger, err)
		return
	}

	d.Logger.Debug("hotel search ok", logger.String("cityCode", cityCode))
	response.Raw(w, http.StatusOK, payload)
}
