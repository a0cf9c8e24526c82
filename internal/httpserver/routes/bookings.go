package routes

import (
	"github.com/go-chi/chi/v5"

	"voyago/internal/httpserver/deps"
	"voyago/internal/httpserver/handlers"
)

func init() { Register(registerBookings) }

func registerBookings(r chi.Router, d deps.Deps) {
	r.Post("/api/bookings", handlers.BookingsCreate(d))
	r.Get("/api/bookings", handlers.BookingsList(d))
}
