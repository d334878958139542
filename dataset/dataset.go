// Package dataset loads the aviation fare dataset into route records for
// graph construction.
//
// The expected input is a CSV of average fares between airport pairs
// (one row per pair) with, at minimum, origin code, destination code and
// fare columns; city names, the dominant carrier, passenger counts and
// non-stop mileage are picked up when present. Header names vary between
// dataset revisions, so columns are resolved by a case-insensitive
// candidate list rather than fixed positions.
//
// Malformed rows are the loader's responsibility, not the engine's: rows
// with missing codes, unparsable fares or negative fares are skipped and
// counted, and the engine receives only clean records.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/skylane/farepath/core"
)

// Sentinel errors returned by Load and Read.
var (
	// ErrMissingColumn indicates that a required column (origin code,
	// destination code, or fare) could not be resolved from the header.
	ErrMissingColumn = errors.New("dataset: required column not found in header")

	// ErrNoRoutes indicates that no usable route rows survived filtering.
	ErrNoRoutes = errors.New("dataset: no usable route records")
)

// Column candidate names, lowercased, for header resolution. The first
// match wins; names cover the Aviation.csv revisions seen in the wild.
var (
	originCols      = []string{"airport_1", "origin_airport", "origin", "from"}
	destinationCols = []string{"airport_2", "destination_airport", "destination", "to"}
	fareCols        = []string{"fare", "average fare", "avg_fare", "price"}
	originCityCols  = []string{"city1", "origin_city", "from_city"}
	destCityCols    = []string{"city2", "destination_city", "to_city"}
	carrierCols     = []string{"carrier_lg", "primary_carrier", "carrier"}
	passengerCols   = []string{"passengers", "pax"}
	milesCols       = []string{"nsmiles", "miles", "distance"}
)

// Dataset is one loaded route dataset: the cleaned record batch, the
// city→airports lookup, and a memoized flight graph.
//
// A Dataset is loaded once at startup and read-only afterwards; Graph()
// builds the core.Graph on first use and reuses it for every later call,
// so repeated queries never pay the construction cost twice.
type Dataset struct {
	records []core.Edge
	cities  map[string][]string

	// RowsRead and RowsSkipped report load statistics for logging.
	RowsRead    int
	RowsSkipped int

	buildOnce sync.Once
	graph     *core.Graph
	buildErr  error
}

// Load reads and parses the CSV file at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return d, nil
}

// Read parses a route dataset from r.
//
// Each surviving row yields two directed records — the dataset reports an
// average fare per unordered airport pair, so both directions fly at the
// same price. Airport codes are uppercased; rows whose codes are not
// exactly three letters, or whose fare is absent, unparsable or negative,
// are skipped and counted in RowsSkipped.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows; filtering handles them
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	d := &Dataset{cities: make(map[string][]string)}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A structurally broken row is data noise, not a fatal
			// condition; skip it like any other malformed row.
			d.RowsRead++
			d.RowsSkipped++
			continue
		}
		d.RowsRead++

		rec, ok := cols.parse(row)
		if !ok {
			d.RowsSkipped++
			continue
		}

		// Both directions: the pair fare is symmetric.
		d.records = append(d.records, rec, reverse(rec))
		d.addCity(rec.OriginCity, rec.From)
		d.addCity(rec.DestinationCity, rec.To)
	}

	if len(d.records) == 0 {
		return nil, ErrNoRoutes
	}
	for city := range d.cities {
		sort.Strings(d.cities[city])
	}

	return d, nil
}

// Edges returns a copy of the cleaned route records, ready for core.Build.
func (d *Dataset) Edges() []core.Edge {
	cp := make([]core.Edge, len(d.records))
	copy(cp, d.records)

	return cp
}

// Graph returns the flight graph for this dataset, building it on first
// call and memoizing the result for the dataset's lifetime.
func (d *Dataset) Graph() (*core.Graph, error) {
	d.buildOnce.Do(func() {
		d.graph, d.buildErr = core.Build(d.records)
	})

	return d.graph, d.buildErr
}

// Cities returns the sorted list of city names present in the dataset.
func (d *Dataset) Cities() []string {
	names := make([]string, 0, len(d.cities))
	for c := range d.cities {
		names = append(names, c)
	}
	sort.Strings(names)

	return names
}

// AirportsForCity returns the sorted airport codes serving the named city,
// matched case-insensitively. An unknown city yields an empty slice.
func (d *Dataset) AirportsForCity(city string) []string {
	codes := d.cities[normalizeCity(city)]
	cp := make([]string, len(codes))
	copy(cp, codes)

	return cp
}

// addCity records that code serves city, keeping the code list unique.
func (d *Dataset) addCity(city, code string) {
	city = normalizeCity(city)
	if city == "" {
		return
	}
	for _, c := range d.cities[city] {
		if c == code {
			return
		}
	}
	d.cities[city] = append(d.cities[city], code)
}

func normalizeCity(city string) string {
	return strings.TrimSpace(city)
}

// reverse flips a record's direction, swapping the city metadata with it.
func reverse(e core.Edge) core.Edge {
	e.From, e.To = e.To, e.From
	e.OriginCity, e.DestinationCity = e.DestinationCity, e.OriginCity

	return e
}

// columns holds resolved header indexes; -1 marks an absent optional column.
type columns struct {
	origin, destination, fare  int
	originCity, destCity       int
	carrier, passengers, miles int
}

// resolveColumns maps the header onto column indexes. Origin, destination
// and fare are required; everything else is optional metadata.
func resolveColumns(header []string) (*columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	find := func(candidates []string) int {
		for _, c := range candidates {
			if i, ok := index[c]; ok {
				return i
			}
		}

		return -1
	}

	cols := &columns{
		origin:      find(originCols),
		destination: find(destinationCols),
		fare:        find(fareCols),
		originCity:  find(originCityCols),
		destCity:    find(destCityCols),
		carrier:     find(carrierCols),
		passengers:  find(passengerCols),
		miles:       find(milesCols),
	}
	switch {
	case cols.origin < 0:
		return nil, fmt.Errorf("%w: origin airport (tried %v)", ErrMissingColumn, originCols)
	case cols.destination < 0:
		return nil, fmt.Errorf("%w: destination airport (tried %v)", ErrMissingColumn, destinationCols)
	case cols.fare < 0:
		return nil, fmt.Errorf("%w: fare (tried %v)", ErrMissingColumn, fareCols)
	}

	return cols, nil
}

// parse converts one CSV row into a route record, reporting ok=false when
// the row must be skipped.
func (c *columns) parse(row []string) (core.Edge, bool) {
	var rec core.Edge

	from, ok := airportField(row, c.origin)
	if !ok {
		return rec, false
	}
	to, ok := airportField(row, c.destination)
	if !ok || to == from {
		return rec, false
	}
	fare, err := floatField(row, c.fare)
	if err != nil || fare < 0 {
		return rec, false
	}

	rec = core.Edge{
		From:            from,
		To:              to,
		Fare:            fare,
		OriginCity:      stringField(row, c.originCity),
		DestinationCity: stringField(row, c.destCity),
		Carrier:         stringField(row, c.carrier),
	}
	if v, err := floatField(row, c.passengers); err == nil {
		rec.Passengers = v
	}
	if v, err := floatField(row, c.miles); err == nil {
		rec.Miles = v
	}

	return rec, true
}

// airportField extracts and validates a three-letter airport code.
func airportField(row []string, i int) (string, bool) {
	code := core.Normalize(stringField(row, i))
	if len(code) != 3 {
		return "", false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}

	return code, true
}

func stringField(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

func floatField(row []string, i int) (float64, error) {
	s := stringField(row, i)
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	// Tolerate currency formatting: "$1,234.56".
	s = strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", "")

	return strconv.ParseFloat(s, 64)
}
