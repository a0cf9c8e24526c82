// Package amadeus mediates all traffic to the Amadeus travel API: the OAuth2
// token broker and the authenticated search client built on top of it.
package amadeus

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"

	"voyago/internal/logger"
	"voyago/internal/sources/refdata"
	"voyago/internal/utils"
)

const (
	hotelsByCityPath = "/v1/reference-data/locations/hotels/by-city"
	flightOffersPath = "/v2/shopping/flight-offers"
	locationsPath    = "/v1/reference-data/locations"

	maxFlightOffers = 10
)

// FlightQuery carries the flight-offers search parameters. Tags feed
// go-querystring, so field names match the upstream API exactly.
type FlightQuery struct {
	Origin        string `url:"originLocationCode"`
	Destination   string `url:"destinationLocationCode"`
	DepartureDate string `url:"departureDate"`
	ReturnDate    string `url:"returnDate,omitempty"`
	Adults        int    `url:"adults"`
	Max           int    `url:"max"`
}

// Client issues authenticated search calls against the upstream API. Every
// method acquires a token from the broker, makes one GET, and hands the raw
// upstream JSON back to the caller.
type Client struct {
	baseURL string
	broker  *Broker
	http    *http.Client
	ref     *refdata.Table
	log     logger.Logger
}

func NewClient(baseURL string, broker *Broker, httpClient *http.Client, ref *refdata.Table, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		broker:  broker,
		http:    httpClient,
		ref:     ref,
		log:     log,
	}
}

// SearchHotelsByCity lists hotels for a city. Airport codes are mapped to
// the city codes the hotel endpoint expects (LHR -> LON) before the call.
func (c *Client) SearchHotelsByCity(ctx context.Context, cityCode string) (json.RawMessage, error) {
	cityCode = strings.ToUpper(strings.TrimSpace(cityCode))
	if cityCode == "" {
		return nil, &RequestError{Reason: "missing cityCode"}
	}

	params := url.Values{}
	params.Set("cityCode", c.ref.CityFor(cityCode))
	return c.get(ctx, hotelsByCityPath, params)
}

// SearchFlights looks up flight offers for a route. Origin, destination and
// departure date are required; adults defaults to one traveler.
func (c *Client) SearchFlights(ctx context.Context, q FlightQuery) (json.RawMessage, error) {
	q.Origin = strings.ToUpper(strings.TrimSpace(q.Origin))
	q.Destination = strings.ToUpper(strings.TrimSpace(q.Destination))
	q.DepartureDate = strings.TrimSpace(q.DepartureDate)
	q.ReturnDate = strings.TrimSpace(q.ReturnDate)

	var missing []string
	if q.Origin == "" {
		missing = append(missing, "originLocationCode")
	}
	if q.Destination == "" {
		missing = append(missing, "destinationLocationCode")
	}
	if q.DepartureDate == "" {
		missing = append(missing, "departureDate")
	}
	if len(missing) > 0 {
		return nil, &RequestError{Reason: "missing " + strings.Join(missing, ", ")}
	}

	if q.Adults < 1 {
		q.Adults = 1
	}
	q.Max = maxFlightOffers

	params, err := query.Values(q)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, flightOffersPath, params)
}

// SearchLocations searches cities and airports by keyword.
func (c *Client) SearchLocations(ctx context.Context, keyword string) (json.RawMessage, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, &RequestError{Reason: "missing keyword"}
	}

	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("subType", "CITY,AIRPORT")
	return c.get(ctx, locationsPath, params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	token, err := c.broker.Token(ctx)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UnavailableError{Err: err, Timeout: isTimeout(err)}
	}
	defer utils.Close(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("upstream call failed",
			logger.String("path", path),
			logger.Int("status", resp.StatusCode))
		return nil, &UpstreamError{Status: resp.StatusCode, Body: body}
	}
	return body, nil
}
