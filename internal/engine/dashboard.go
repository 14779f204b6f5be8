package engine

import (
	"context"
	"errors"
	"slices"

	"golang.org/x/sync/errgroup"

	"gapminder/internal/models"
)

// Dashboard serves every view from one immutable store and its index. It is
// safe for concurrent use.
type Dashboard struct {
	store *ColumnStore
	index *Index
}

// NewDashboard indexes store. It fails with a MissingDataError when the
// store is empty.
func NewDashboard(store *ColumnStore) (*Dashboard, error) {
	ix, err := BuildIndex(store)
	if err != nil {
		return nil, err
	}
	return &Dashboard{store: store, index: ix}, nil
}

func (d *Dashboard) Store() *ColumnStore { return d.store }
func (d *Dashboard) Index() *Index       { return d.index }

// ValidateFilter rejects a FilterSpec whose values are outside the index
// domains or the control ranges.
func (d *Dashboard) ValidateFilter(spec models.FilterSpec) error {
	if !d.index.HasContinent(spec.Continent) {
		return &ConfigurationError{Field: "continent", Value: spec.Continent, Reason: "not present in dataset"}
	}
	if !d.index.HasYear(spec.Year) {
		return &ConfigurationError{Field: "year", Value: spec.Year, Reason: "not present in dataset"}
	}
	if !slices.Contains(TopNChoices, spec.TopN) {
		return &ConfigurationError{Field: "topn", Value: spec.TopN, Reason: "must be one of 5, 10, 15, 20, 25"}
	}
	if spec.Orientation != models.Vertical && spec.Orientation != models.Horizontal {
		return &ConfigurationError{Field: "orient", Value: spec.Orientation, Reason: `must be "v" or "h"`}
	}
	return nil
}

// ValidateMapYear rejects a map year that is not in the index.
func (d *Dashboard) ValidateMapYear(year int) error {
	if !d.index.HasYear(year) {
		return &ConfigurationError{Field: "year", Value: year, Reason: "not present in dataset"}
	}
	return nil
}

// ValidateDefaults checks the configured start-up controls against the
// loaded dataset.
func (d *Dashboard) ValidateDefaults(def models.Defaults) error {
	return errors.Join(
		d.ValidateFilter(models.FilterSpec{
			Continent:   def.Continent,
			Year:        def.Year,
			TopN:        def.TopN,
			Orientation: def.Orientation,
		}),
		d.ValidateMapYear(def.MapYear),
	)
}

func (d *Dashboard) Styles(theme string) models.Styles {
	return StylesFor(ResolveTheme(theme))
}

func (d *Dashboard) Table(theme string) *models.Figure {
	return BuildTable(d.store, ResolveTheme(theme))
}

// Bars validates spec and builds the population, GDP and life expectancy
// charts from the same snapshot.
func (d *Dashboard) Bars(ctx context.Context, spec models.FilterSpec, theme string) (*models.BarFigures, error) {
	if err := d.ValidateFilter(spec); err != nil {
		return nil, err
	}
	t := ResolveTheme(theme)

	metrics := []Metric{MetricPop, MetricGdpPercap, MetricLifeExp}
	figs := make([]*models.Figure, len(metrics))

	g, ctx := errgroup.WithContext(ctx)
	for i, m := range metrics {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			figs[i] = BuildRankedBar(d.store, m, spec.Continent, spec.Year, spec.TopN, spec.Orientation, t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &models.BarFigures{Population: figs[0], GDP: figs[1], LifeExp: figs[2]}, nil
}

// Map validates year and builds the choropleth. Unknown variable labels
// fall back to life expectancy.
func (d *Dashboard) Map(variable string, year int, theme string) (*models.Figure, error) {
	if err := d.ValidateMapYear(year); err != nil {
		return nil, err
	}
	return BuildChoropleth(d.store, d.index, variable, year, ResolveTheme(theme)), nil
}

// Records returns one page of raw rows.
func (d *Dashboard) Records(limit, offset int) models.RecordPage {
	total := d.store.Len()
	page := models.RecordPage{Data: []models.Record{}, Total: total, Limit: limit, Offset: offset}
	if offset >= total {
		return page
	}
	if limit > total-offset {
		limit = total - offset
	}
	for i := offset; i < offset+limit; i++ {
		page.Data = append(page.Data, d.store.Row(i))
	}
	return page
}
