package routes

import (
	"github.com/go-chi/chi/v5"

	"voyago/internal/httpserver/deps"
	"voyago/internal/httpserver/handlers"
)

func init() { Register(registerTravel) }

func registerTravel(r chi.Router, d deps.Deps) {
	r.Get("/api/hotels", handlers.HotelsGet(d))
	r.Post("/api/hotels", handlers.HotelsPost(d))
	r.Get("/api/flights", handlers.FlightsGet(d))
	r.Post("/api/flights", handlers.FlightsPost(d))
	r.Get("/api/locations", handlers.Locations(d))
}
