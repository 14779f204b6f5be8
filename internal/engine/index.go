package engine

import (
	"slices"
	"strconv"

	"golang.org/x/exp/constraints"

	"gapminder/internal/models"
)

// Metric selects one numeric column of the dataset.
type Metric int

const (
	MetricPop Metric = iota
	MetricGdpPercap
	MetricLifeExp
)

// Label returns the human-readable name of the metric.
func (m Metric) Label() string {
	switch m {
	case MetricPop:
		return "Population"
	case MetricGdpPercap:
		return "GDP per Capita"
	default:
		return "Life Expectancy"
	}
}

// Column returns the CSV column name of the metric.
func (m Metric) Column() string {
	switch m {
	case MetricPop:
		return "pop"
	case MetricGdpPercap:
		return "gdpPercap"
	default:
		return "lifeExp"
	}
}

// Variables is the fixed display order of the map variable selector.
var Variables = []Metric{MetricPop, MetricGdpPercap, MetricLifeExp}

// DefaultVariable is used for unknown map variable labels.
const DefaultVariable = MetricLifeExp

// TopNChoices are the slider marks of the bar item count.
var TopNChoices = []int{5, 10, 15, 20, 25}

const (
	MinTopN = 5
	MaxTopN = 25
)

// Index holds the distinct continents and years of a ColumnStore, sorted
// ascending, plus the variable label mapping.
type Index struct {
	Continents []string
	Years      []int
	Variables  map[string]Metric
}

// BuildIndex derives the Index from store.
func BuildIndex(store *ColumnStore) (*Index, error) {
	if store == nil || store.Len() == 0 {
		return nil, missingData("cannot index an empty dataset")
	}

	continents := make([]string, 0, len(store.ContinentDict))
	for _, id := range store.ContinentIDs {
		continents = append(continents, store.ContinentDict[id])
	}
	years := make([]int, 0, store.Len())
	for _, y := range store.Years {
		years = append(years, int(y))
	}

	vars := make(map[string]Metric, len(Variables))
	for _, m := range Variables {
		vars[m.Label()] = m
	}

	return &Index{
		Continents: distinctSorted(continents),
		Years:      distinctSorted(years),
		Variables:  vars,
	}, nil
}

func distinctSorted[T constraints.Ordered](values []T) []T {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

func (ix *Index) HasContinent(c string) bool {
	_, ok := slices.BinarySearch(ix.Continents, c)
	return ok
}

func (ix *Index) HasYear(y int) bool {
	_, ok := slices.BinarySearch(ix.Years, y)
	return ok
}

// MetricFor resolves a variable label. Unknown labels resolve to
// DefaultVariable with ok=false.
func (ix *Index) MetricFor(label string) (Metric, bool) {
	if m, ok := ix.Variables[label]; ok {
		return m, true
	}
	return DefaultVariable, false
}

// Options returns the selectable values of every control.
func (ix *Index) Options(defaults models.Defaults) models.Options {
	opts := models.Options{
		Orientations: []models.Option{
			{Label: "Vertical", Value: models.Vertical},
			{Label: "Horizontal", Value: models.Horizontal},
		},
		Themes: []models.Option{
			{Label: "Light", Value: ThemeLight},
			{Label: "Dark", Value: ThemeDark},
		},
		Defaults: defaults,
	}
	for _, c := range ix.Continents {
		opts.Continents = append(opts.Continents, models.Option{Label: c, Value: c})
	}
	for _, y := range ix.Years {
		opts.Years = append(opts.Years, models.Option{Label: strconv.Itoa(y), Value: y})
	}
	for _, m := range Variables {
		opts.Variables = append(opts.Variables, models.Option{Label: m.Label(), Value: m.Label()})
	}
	for _, n := range TopNChoices {
		opts.TopN = append(opts.TopN, models.Option{Label: strconv.Itoa(n), Value: n})
	}
	return opts
}
