package deps

import (
	"context"
	"encoding/json"
	"time"

	"voyago/internal/amadeus"
	"voyago/internal/ledger"
	"voyago/internal/logger"
)

// TravelAPI is the slice of the Amadeus client the handlers consume.
// Narrow on purpose so handler tests can substitute a fake.
type TravelAPI interface {
	SearchHotelsByCity(ctx context.Context, cityCode string) (json.RawMessage, error)
	SearchFlights(ctx context.Context, q amadeus.FlightQuery) (json.RawMessage, error)
	SearchLocations(ctx context.Context, keyword string) (json.RawMessage, error)
}

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Travel TravelAPI      // authenticated upstream search client
	Ledger *ledger.Ledger // process-scoped booking store
}
