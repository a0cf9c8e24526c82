package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"voyago/internal/amadeus"
	"voyago/internal/httpserver/deps"
	"voyago/internal/httpserver/response"
	"voyago/internal/logger"
)

// FlightsGet proxies the flight-offers search via query string.
func FlightsGet(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		adults, _ := strconv.Atoi(params.Get("adults"))
		searchFlights(d, w, r, amadeus.FlightQuery{
			Origin:        params.Get("originLocationCode"),
			Destination:   params.Get("destinationLocationCode"),
			DepartureDate: params.Get("departureDate"),
			ReturnDate:    params.Get("returnDate"),
			Adults:        adults,
		})
	}
}

// FlightsPost is the body variant. The older client builds sent short
// origin/destination keys, so both spellings are accepted.
func FlightsPost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Origin                  string `json:"origin"`
			Destination             string `json:"destination"`
			OriginLocationCode      string `json:"originLocationCode"`
			DestinationLocationCode string `json:"destinationLocationCode"`
			DepartureDate           string `json:"departureDate"`
			ReturnDate              string `json:"returnDate"`
			Adults                  int    `json:"adults"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}

		origin := body.OriginLocationCode
		if origin == "" {
			origin = body.Origin
		}
		destination := body.DestinationLocationCode
		if destination == "" {
			destination = body.Destination
		}

		searchFlights(d, w, r, amadeus.FlightQuery{
			Origin:        origin,
			Destination:   destination,
			DepartureDate: body.DepartureDate,
			ReturnDate:    body.ReturnDate,
			Adults:        body.Adults,
		})
	}
}

func searchFlights(d deps.Deps, w http.ResponseWriter, r *http.Request, q amadeus.FlightQuery) {
	var missing []string
	if strings.TrimSpace(q.Origin) == "" {
		missing = append(missing, "originLocationCode")
	}
	if strings.TrimSpace(q.Destination) == "" {
		missing = append(missing, "destinationLocationCode")
	}
	if strings.TrimSpace(q.DepartureDate) == "" {
		missing = append(missing, "departureDate")
	}
	if len(missing) > 0 {
		response.Error(w, http.StatusBadRequest, "missing "+strings.Join(missing, ", "))
		return
	}

	payload, err := d.Travel.SearchFlights(r.Context(), q)
	if err != nil {
		writeTravelError(w, d.Logger, err)
		return
	}

	d.Logger.Debug("flight search ok",
		logger.String("origin", q.Origin),
		logger.String("destination", q.Destination))
	response.Raw(w, http.StatusOK, payload)
}
