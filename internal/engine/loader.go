package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/csv"
	"github.com/apache/arrow/go/v18/arrow/memory"
)

// Column order of the Gapminder CSV.
var gapminderSchema = arrow.NewSchema([]arrow.Field{
	{Name: "country", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "continent", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "year", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	{Name: "lifeExp", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "pop", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "gdpPercap", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "iso_alpha", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "iso_num", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
}, nil)

const chunkRows = 512

// LoadColumnar reads a Gapminder CSV file into a ColumnStore.
func LoadColumnar(path string) (*ColumnStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &MissingDataError{Reason: "open " + path, Err: err}
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader reads Gapminder CSV from src into a ColumnStore.
func LoadReader(src io.Reader) (*ColumnStore, error) {
	return loadWith(src, memory.DefaultAllocator)
}

// dictBuilder dictionary-encodes one string column.
type dictBuilder struct {
	ids  map[string]int32
	list []string
}

func newDictBuilder() *dictBuilder {
	return &dictBuilder{ids: make(map[string]int32)}
}

func (d *dictBuilder) id(s string) int32 {
	if id, ok := d.ids[s]; ok {
		return id
	}
	id := int32(len(d.list))
	d.list = append(d.list, s)
	d.ids[s] = id
	return id
}

// checkHeader consumes the header line and requires it to name the schema
// columns in schema order.
func checkHeader(br *bufio.Reader) error {
	line, err := br.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return &MissingDataError{Reason: "read header", Err: err}
	}
	line = strings.TrimPrefix(strings.TrimRight(line, "\r\n"), "\ufeff")
	names := strings.Split(line, ",")

	fields := gapminderSchema.Fields()
	if len(names) != len(fields) {
		return missingData("header has %d columns, want %d", len(names), len(fields))
	}
	for i, f := range fields {
		if got := strings.Trim(strings.TrimSpace(names[i]), `"`); got != f.Name {
			return missingData("header column %d is %q, want %q", i+1, got, f.Name)
		}
	}
	return nil
}

type rowKey struct {
	country int32
	year    int32
}

func loadWith(src io.Reader, mem memory.Allocator) (*ColumnStore, error) {
	start := time.Now()
	slog.Debug("loading dataset")

	br := bufio.NewReader(src)
	if err := checkHeader(br); err != nil {
		return nil, err
	}

	r := csv.NewReader(br, gapminderSchema,
		csv.WithHeader(false),
		csv.WithChunk(chunkRows),
		csv.WithAllocator(mem),
		csv.WithNullReader(true, ""),
	)
	defer r.Release()

	store := &ColumnStore{}
	countries := newDictBuilder()
	continents := newDictBuilder()
	seen := make(map[rowKey]struct{})

	for r.Next() {
		rec := r.Record()
		if err := appendRecord(store, rec, countries, continents, seen); err != nil {
			return nil, err
		}
	}
	if err := r.Err(); err != nil {
		return nil, &MissingDataError{Reason: "parse csv", Err: err}
	}
	if store.Len() == 0 {
		return nil, missingData("dataset has no rows")
	}

	store.CountryDict = countries.list
	store.ContinentDict = continents.list

	slog.Info("dataset loaded",
		"rows", store.Len(),
		"countries", len(store.CountryDict),
		"continents", len(store.ContinentDict),
		"elapsed", time.Since(start))
	return store, nil
}

func appendRecord(store *ColumnStore, rec arrow.Record, countries, continents *dictBuilder, seen map[rowKey]struct{}) error {
	var (
		country   = rec.Column(0).(*array.String)
		continent = rec.Column(1).(*array.String)
		year      = rec.Column(2).(*array.Int32)
		lifeExp   = rec.Column(3).(*array.Float64)
		pop       = rec.Column(4).(*array.Int64)
		gdp       = rec.Column(5).(*array.Float64)
		isoAlpha  = rec.Column(6).(*array.String)
		isoNum    = rec.Column(7).(*array.Int32)
	)

	for i := 0; i < int(rec.NumRows()); i++ {
		row := store.Len() + 1
		for c := 0; c < int(rec.NumCols()); c++ {
			if rec.Column(c).IsNull(i) {
				return missingData("row %d: empty %s", row, rec.ColumnName(c))
			}
		}
		if code := isoAlpha.Value(i); len(code) != 3 {
			return missingData("row %d: iso_alpha %q is not a 3-letter code", row, code)
		}

		cid := countries.id(country.Value(i))
		key := rowKey{country: cid, year: year.Value(i)}
		if _, dup := seen[key]; dup {
			return missingData("row %d: duplicate record for %s in %d", row, country.Value(i), year.Value(i))
		}
		seen[key] = struct{}{}

		store.CountryIDs = append(store.CountryIDs, cid)
		store.ContinentIDs = append(store.ContinentIDs, continents.id(continent.Value(i)))
		store.Years = append(store.Years, year.Value(i))
		store.LifeExps = append(store.LifeExps, lifeExp.Value(i))
		store.Pops = append(store.Pops, pop.Value(i))
		store.GdpPercaps = append(store.GdpPercaps, gdp.Value(i))
		store.IsoAlphas = append(store.IsoAlphas, isoAlpha.Value(i))
		store.IsoNums = append(store.IsoNums, isoNum.Value(i))
	}
	return nil
}

// String summarizes the store for logs and the inspect command.
func (cs *ColumnStore) String() string {
	return fmt.Sprintf("%d rows, %d countries, %d continents", cs.Len(), len(cs.CountryDict), len(cs.ContinentDict))
}
