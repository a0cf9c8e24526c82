package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"voyago/internal/domain"
	"voyago/internal/httpserver/deps"
	"voyago/internal/httpserver/response"
	"voyago/internal/logger"
)

// bookingPayload mirrors the client's submission. Guests and price arrive as
// loosely-typed values (the form layer sends whatever the inputs hold), so
// they are coerced with JS-like semantics: non-numeric means default.
type bookingPayload struct {
	HotelID   string      `json:"hotelId"`
	HotelName string      `json:"hotelName"`
	CityCode  string      `json:"cityCode"`
	CheckIn   string      `json:"checkIn"`
	CheckOut  string      `json:"checkOut"`
	Guests    interface{} `json:"guests"`
	FullName  string      `json:"fullName"`
	Email     string      `json:"email"`
	Price     interface{} `json:"price"`
}

// BookingsCreate validates a submission and appends it to the ledger:
// POST /api/bookings -> 201 {ok:true, booking}.
func BookingsCreate(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p bookingPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}

		b := domain.Booking{
			HotelID:   p.HotelID,
			HotelName: p.HotelName,
			CityCode:  p.CityCode,
			CheckIn:   p.CheckIn,
			CheckOut:  p.CheckOut,
			Guests:    coerceInt(p.Guests, 1),
			FullName:  p.FullName,
			Email:     p.Email,
			Price:     coerceFloat(p.Price, 0),
		}
		b.Normalize()

		if err := b.Validate(); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				response.ErrorWithDetail(w, http.StatusBadRequest,
					"missing required fields", strings.Join(verr.Fields, ", "))
				return
			}
			response.Error(w, http.StatusBadRequest, "invalid booking payload")
			return
		}

		// No trusted client price: fall back to the deterministic estimate so
		// the stored total matches what the search view displayed.
		if b.Price <= 0 {
			per := domain.PerNightPrice(b.HotelID, b.CityCode)
			b.Price = domain.TotalPrice(per, b.CheckIn, b.CheckOut, b.Guests)
		}

		stored := d.Ledger.Insert(b)

		d.Logger.Info("booking created",
			logger.String("confirmation", stored.Confirmation),
			logger.String("cityCode", stored.CityCode),
			logger.Float64("price", stored.Price))

		response.JSON(w, http.StatusCreated, map[string]interface{}{
			"ok":      true,
			"booking": stored,
		})
	}
}

// BookingsList returns every stored booking newest-first:
// GET /api/bookings -> {data:[...]}.
func BookingsList(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]interface{}{
			"data": d.Ledger.List(),
		})
	}
}

func coerceInt(v interface{}, def int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return def
}

func coerceFloat(v interface{}, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return def
}
