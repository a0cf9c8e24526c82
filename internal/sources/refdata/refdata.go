// Package refdata provides the static reference table mapping airport IATA
// codes to the city codes the Amadeus hotel search expects. A built-in
// default set covers the common demo routes; an optional YAML file can
// overlay or extend it without a rebuild.
package refdata

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table resolves airport codes to hotel-search city codes. Read-only after
// Load, safe for concurrent use.
type Table struct {
	airportCity map[string]string
}

type fileSchema struct {
	AirportCities map[string]string `yaml:"airport_cities"`
}

// Amadeus hotel search wants city codes, not airport codes.
func defaults() map[string]string {
	return map[string]string{
		"LHR": "LON", "LGW": "LON", "STN": "LON", "LTN": "LON",
		"CDG": "PAR", "ORY": "PAR",
		"JFK": "NYC", "LGA": "NYC", "EWR": "NYC",
		"FCO": "ROM", "CIA": "ROM",
		"NRT": "TYO", "HND": "TYO",
		"SXF": "BER",
	}
}

// Load builds the table from defaults, overlaid with entries from path when
// it is non-empty. A missing path is fine (defaults only); an unreadable or
// malformed file is a startup error.
func Load(path string) (*Table, error) {
	t := &Table{airportCity: defaults()}
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read refdata file: %w", err)
	}

	var file fileSchema
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse refdata yaml: %w", err)
	}

	for airport, city := range file.AirportCities {
		t.airportCity[strings.ToUpper(airport)] = strings.ToUpper(city)
	}
	return t, nil
}

// CityFor maps an airport code to its hotel-search city code. Codes with no
// mapping pass through unchanged; most IATA city codes are their own answer.
func (t *Table) CityFor(airport string) string {
	code := strings.ToUpper(strings.TrimSpace(airport))
	if city, ok := t.airportCity[code]; ok {
		return city
	}
	return code
}
