package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voyago/internal/amadeus"
	"voyago/internal/domain"
	"voyago/internal/httpserver/deps"
	"voyago/internal/ledger"
	"voyago/internal/logger"
)

// fakeTravel records calls and replays a canned payload or error.
type fakeTravel struct {
	payload json.RawMessage
	err     error

	hotelsCalls    int
	flightsCalls   int
	locationsCalls int

	lastCity    string
	lastQuery   amadeus.FlightQuery
	lastKeyword string
}

func (f *fakeTravel) SearchHotelsByCity(ctx context.Context, cityCode string) (json.RawMessage, error) {
	f.hotelsCalls++
	f.lastCity = cityCode
	return f.payload, f.err
}

func (f *fakeTravel) SearchFlights(ctx context.Context, q amadeus.FlightQuery) (json.RawMessage, error) {
	f.flightsCalls++
	f.lastQuery = q
	return f.payload, f.err
}

func (f *fakeTravel) SearchLocations(ctx context.Context, keyword string) (json.RawMessage, error) {
	f.locationsCalls++
	f.lastKeyword = keyword
	return f.payload, f.err
}

func testDeps(travel *fakeTravel) deps.Deps {
	return deps.Deps{
		Logger: logger.NewNop(),
		Travel: travel,
		Ledger: ledger.New(),
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (errMsg, detail string) {
	t.Helper()
	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a JSON error envelope: %v", err)
	}
	return body.Error, body.Detail
}

func TestHotelsGetMissingCityCode(t *testing.T) {
	travel := &fakeTravel{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/hotels", nil)

	HotelsGet(testDeps(travel))(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if travel.hotelsCalls != 0 {
		t.Error("missing cityCode must not contact the upstream gateway")
	}
	if errMsg, _ := decodeError(t, rec); !strings.Contains(errMsg, "cityCode") {
		t.Errorf("error = %q, should name cityCode", errMsg)
	}
}

func TestHotelsGetForwardsPayload(t *testing.T) {
	travel := &fakeTravel{payload: json.RawMessage(`{"data":[{"hotelId":"HLLON101"}]}`)}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/hotels?cityCode=par", nil)

	HotelsGet(testDeps(travel))(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if travel.lastCity != "PAR" {
		t.Errorf("cityCode passed upstream = %q, want PAR", travel.lastCity)
	}
	if rec.Body.String() != `{"data":[{"hotelId":"HLLON101"}]}` {
		t.Errorf("body = %q, should forward the upstream payload verbatim", rec.Body.String())
	}
}

func TestHotelsPostBodyVariant(t *testing.T) {
	travel := &fakeTravel{payload: json.RawMessage(`{"data":[]}`)}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels", strings.NewReader(`{"cityCode":"lon"}`))

	HotelsPost(testDeps(travel))(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if travel.lastCity != "LON" {
		t.Errorf("cityCode = %q, want LON", travel.lastCity)
	}
}

func TestHotelsUpstreamStatusPreserved(t *testing.T) {
	travel := &fakeTravel{err: &amadeus.UpstreamError{Status: http.StatusNotFound, Body: []byte(`{"errors":[]}`)}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/hotels?cityCode=PAR", nil)

	HotelsGet(testDeps(travel))(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want upstream 404 preserved", rec.Code)
	}
}

func TestHotelsAuthFailureIsBadGateway(t *testing.T) {
	travel := &fakeTravel{err: &amadeus.AuthError{Detail: "Client credentials are invalid"}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/hotels?cityCode=PAR", nil)

	HotelsGet(testDeps(travel))(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502 for token-acquisition failure", rec.Code)
	}
	_, detail := decodeError(t, rec)
	if !strings.Contains(detail, "invalid") {
		t.Errorf("detail = %q, should carry the upstream description", detail)
	}
}

func TestHotelsTimeoutIsGatewayTimeout(t *testing.T) {
	travel := &fakeTravel{err: &amadeus.UnavailableError{Err: context.DeadlineExceeded, Timeout: true}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/hotels?cityCode=PAR", nil)

	HotelsGet(testDeps(travel))(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want 504 for upstream timeout", rec.Code)
	}
}

func TestFlightsGetMissingParams(t *testing.T) {
	travel := &fakeTravel{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flights?originLocationCode=LHR", nil)

	FlightsGet(testDeps(travel))(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if travel.flightsCalls != 0 {
		t.Error("invalid query must not contact the upstream gateway")
	}
	errMsg, _ := decodeError(t, rec)
	for _, field := range []string{"destinationLocationCode", "departureDate"} {
		if !strings.Contains(errMsg, field) {
			t.Errorf("error %q should name %s", errMsg, field)
		}
	}
}

func TestFlightsGetPassesQuery(t *testing.T) {
	travel := &fakeTravel{payload: json.RawMessage(`{"data":[]}`)}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/flights?originLocationCode=LHR&destinationLocationCode=JFK&departureDate=2025-05-01&returnDate=2025-05-08&adults=2", nil)

	FlightsGet(testDeps(travel))(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	q := travel.lastQuery
	if q.Origin != "LHR" || q.Destination != "JFK" || q.DepartureDate != "2025-05-01" || q.ReturnDate != "2025-05-08" || q.Adults != 2 {
		t.Errorf("query passed upstream = %+v", q)
	}
}

func TestFlightsPostAcceptsShortKeys(t *testing.T) {
	travel := &fakeTravel{payload: json.RawMessage(`{"data":[]}`)}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/flights",
		strings.NewReader(`{"origin":"LHR","destination":"JFK","departureDate":"2025-05-01","adults":1}`))

	FlightsPost(testDeps(travel))(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if travel.lastQuery.Origin != "LHR" || travel.lastQuery.Destination != "JFK" {
		t.Errorf("query = %+v, short keys should map to location codes", travel.lastQuery)
	}
}

func TestLocationsMissingKeyword(t *testing.T) {
	travel := &fakeTravel{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)

	Locations(testDeps(travel))(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if travel.locationsCalls != 0 {
		t.Error("missing keyword must not contact the upstream gateway")
	}
}

func TestLocationsForwardsPayload(t *testing.T) {
	travel := &fakeTravel{payload: json.RawMessage(`{"data":[{"iataCode":"PAR"}]}`)}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/locations?keyword=par", nil)

	Locations(testDeps(travel))(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if travel.lastKeyword != "par" {
		t.Errorf("keyword = %q, want par", travel.lastKeyword)
	}
}

func TestBookingsCreate(t *testing.T) {
	d := testDeps(&fakeTravel{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{
		"hotelId":"HLLON101","hotelName":"Test Hotel","cityCode":"LON",
		"checkIn":"2025-03-01","checkOut":"2025-03-03","guests":2,
		"fullName":"Ada Lovelace","email":"ada@example.com","price":240
	}`))

	BookingsCreate(d)(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		OK      bool           `json:"ok"`
		Booking domain.Booking `json:"booking"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.OK {
		t.Error("ok = false, want true")
	}
	if !strings.HasPrefix(body.Booking.Confirmation, "H") || len(body.Booking.Confirmation) != 7 {
		t.Errorf("confirmation = %q, want H + 6 characters", body.Booking.Confirmation)
	}
	if body.Booking.Price != 240 {
		t.Errorf("price = %v, want the submitted 240", body.Booking.Price)
	}
	if d.Ledger.Len() != 1 {
		t.Errorf("ledger length = %d, want 1", d.Ledger.Len())
	}
}

func TestBookingsCreateMissingEmail(t *testing.T) {
	d := testDeps(&fakeTravel{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{
		"hotelId":"HLLON101","hotelName":"Test Hotel","cityCode":"LON",
		"checkIn":"2025-03-01","checkOut":"2025-03-03",
		"fullName":"Ada Lovelace"
	}`))

	BookingsCreate(d)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	_, detail := decodeError(t, rec)
	if !strings.Contains(detail, "email") {
		t.Errorf("detail = %q, should name the missing email field", detail)
	}
	if d.Ledger.Len() != 0 {
		t.Error("failed validation must not append to the ledger")
	}
}

func TestBookingsCreateDefaultsAndEstimates(t *testing.T) {
	d := testDeps(&fakeTravel{})
	rec := httptest.NewRecorder()
	// guests non-numeric, price absent: defaults apply, server estimates.
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{
		"hotelId":"HLLON101","hotelName":"Test Hotel","cityCode":"LON",
		"checkIn":"2025-03-01","checkOut":"2025-03-04","guests":"a few",
		"fullName":"Ada Lovelace","email":"ada@example.com"
	}`))

	BookingsCreate(d)(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Booking domain.Booking `json:"booking"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Booking.Guests != 1 {
		t.Errorf("guests = %d, want default 1 for non-numeric input", body.Booking.Guests)
	}

	per := domain.PerNightPrice("HLLON101", "LON")
	want := domain.TotalPrice(per, "2025-03-01", "2025-03-04", 1)
	if body.Booking.Price != want {
		t.Errorf("price = %v, want server estimate %v", body.Booking.Price, want)
	}
}

func TestBookingsListNewestFirst(t *testing.T) {
	d := testDeps(&fakeTravel{})

	codes := make([]string, 0, 3)
	for _, hotel := range []string{"B1", "B2", "B3"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{
			"hotelId":"`+hotel+`","hotelName":"Hotel `+hotel+`","cityCode":"LON",
			"checkIn":"2025-03-01","checkOut":"2025-03-03","guests":1,
			"fullName":"Ada Lovelace","email":"ada@example.com","price":100
		}`))
		BookingsCreate(d)(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("setup insert failed: %d", rec.Code)
		}
		var body struct {
			Booking domain.Booking `json:"booking"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		codes = append(codes, body.Booking.Confirmation)
	}

	rec := httptest.NewRecorder()
	BookingsList(d)(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	var list struct {
		Data []domain.Booking `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(list.Data) != 3 {
		t.Fatalf("list length = %d, want 3", len(list.Data))
	}
	for i, want := range []string{codes[2], codes[1], codes[0]} {
		if list.Data[i].Confirmation != want {
			t.Errorf("list[%d] = %q, want %q (newest first)", i, list.Data[i].Confirmation, want)
		}
	}
}

func TestBookingsCreateInvalidJSON(t *testing.T) {
	d := testDeps(&fakeTravel{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{not json`))

	BookingsCreate(d)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if d.Ledger.Len() != 0 {
		t.Error("malformed payload must not append to the ledger")
	}
}
