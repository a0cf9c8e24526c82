package domain

import (
	"math"
	"time"
)

// PerNightPrice derives a deterministic nightly rate for a hotel identity.
// The Amadeus sandbox hotel list carries no rates, so the demo needs a
// stable-looking placeholder: a bounded int32 hash of hotelID+cityCode mapped
// into the 95-214 band. Same identity, same price, no external state.
func PerNightPrice(hotelID, cityCode string) float64 {
	id := hotelID
	if id == "" {
		id = "X"
	}

	var h int32
	for _, r := range id + cityCode {
		h = h*31 + int32(r) // wraps on overflow, keeping the band stable
	}

	mod := h % 120
	if mod < 0 {
		mod = -mod
	}
	return float64(95 + mod)
}

// Nights counts whole nights between two YYYY-MM-DD dates, never less than 1.
// Unparseable dates count as a single night; they are rejected by booking
// validation before pricing matters.
func Nights(checkIn, checkOut string) int {
	in, err1 := time.Parse(DateLayout, checkIn)
	out, err2 := time.Parse(DateLayout, checkOut)
	if err1 != nil || err2 != nil {
		return 1
	}

	days := int(math.Round(out.Sub(in).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// TotalPrice computes the stay total: nightly rate, times nights, times
// rooms at two guests per room.
func TotalPrice(perNight float64, checkIn, checkOut string, guests int) float64 {
	if guests < 1 {
		guests = 1
	}
	rooms := (guests + 1) / 2
	return perNight * float64(Nights(checkIn, checkOut)) * float64(rooms)
}
