package domain

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// Booking is one confirmed hotel reservation. Records are immutable once
// stored in the ledger; Confirmation and CreatedAt are assigned on insert.
type Booking struct {
	Confirmation string    `json:"confirmation"`
	HotelID      string    `json:"hotelId" validate:"required"`
	HotelName    string    `json:"hotelName" validate:"required"`
	CityCode     string    `json:"cityCode" validate:"required"`
	CheckIn      string    `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut     string    `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Guests       int       `json:"guests"`
	FullName     string    `json:"fullName" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidationError reports the submitted fields that are missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the JSON field names the client submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize trims free-text inputs and applies the submission defaults:
// guests below 1 become 1, negative prices become 0, city codes are
// upper-cased.
func (b *Booking) Normalize() {
	b.HotelID = strings.TrimSpace(b.HotelID)
	b.HotelName = strings.TrimSpace(b.HotelName)
	b.CityCode = strings.ToUpper(strings.TrimSpace(b.CityCode))
	b.FullName = strings.TrimSpace(b.FullName)
	b.Email = strings.TrimSpace(b.Email)
	if b.Guests < 1 {
		b.Guests = 1
	}
	if b.Price < 0 {
		b.Price = 0
	}
}

// Validate checks the required submission fields and the date ordering.
// It returns a *ValidationError naming every offending field so the caller
// can reject the whole submission in one round trip.
func (b *Booking) Validate() error {
	if err := validate.Struct(b); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return &ValidationError{Fields: fields}
		}
		return err
	}

	in, err1 := time.Parse(DateLayout, b.CheckIn)
	out, err2 := time.Parse(DateLayout, b.CheckOut)
	if err1 == nil && err2 == nil && !out.After(in) {
		return &ValidationError{Fields: []string{"checkOut"}}
	}
	return nil
}
