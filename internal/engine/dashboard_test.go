package engine

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gapminder/internal/models"
)

func newTestDashboard(t *testing.T) *Dashboard {
	t.Helper()
	d, err := NewDashboard(loadBundled(t))
	require.NoError(t, err)
	return d
}

func TestNewDashboard_Empty(t *testing.T) {
	_, err := NewDashboard(&ColumnStore{})
	assert.True(t, errors.Is(err, ErrMissingData))
}

func TestDashboard_ValidateFilter(t *testing.T) {
	d := newTestDashboard(t)
	valid := models.FilterSpec{Continent: "Asia", Year: 1952, TopN: 15, Orientation: models.Vertical}
	require.NoError(t, d.ValidateFilter(valid))

	tests := []struct {
		name  string
		mut   func(*models.FilterSpec)
		field string
	}{
		{"unknown continent", func(s *models.FilterSpec) { s.Continent = "Atlantis" }, "continent"},
		{"unknown year", func(s *models.FilterSpec) { s.Year = 1951 }, "year"},
		{"topn too small", func(s *models.FilterSpec) { s.TopN = 0 }, "topn"},
		{"topn too large", func(s *models.FilterSpec) { s.TopN = 30 }, "topn"},
		{"topn off step", func(s *models.FilterSpec) { s.TopN = 12 }, "topn"},
		{"bad orientation", func(s *models.FilterSpec) { s.Orientation = "diagonal" }, "orient"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := valid
			tt.mut(&spec)
			err := d.ValidateFilter(spec)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestDashboard_Bars(t *testing.T) {
	d := newTestDashboard(t)
	spec := models.FilterSpec{Continent: "Asia", Year: 1952, TopN: 15, Orientation: models.Vertical}

	bars, err := d.Bars(context.Background(), spec, "light")
	require.NoError(t, err)
	assert.Equal(t, "Population for Asia in 1952", bars.Population.Layout.Title.Text)
	assert.Equal(t, "GDP per Capita for Asia in 1952", bars.GDP.Layout.Title.Text)
	assert.Equal(t, "Life Expectancy for Asia in 1952", bars.LifeExp.Layout.Title.Text)
	assert.Len(t, bars.Population.Data, 15)
	assert.Len(t, bars.GDP.Data, 15)
	assert.Len(t, bars.LifeExp.Data, 15)
}

func TestDashboard_Bars_InvalidYear(t *testing.T) {
	d := newTestDashboard(t)
	spec := models.FilterSpec{Continent: "Asia", Year: 1951, TopN: 15, Orientation: models.Vertical}

	_, err := d.Bars(context.Background(), spec, "light")
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "year", cfgErr.Field)
	assert.Equal(t, 1951, cfgErr.Value)
}

func TestDashboard_Bars_Cancelled(t *testing.T) {
	d := newTestDashboard(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	spec := models.FilterSpec{Continent: "Asia", Year: 1952, TopN: 15, Orientation: models.Vertical}
	_, err := d.Bars(ctx, spec, "light")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDashboard_Map(t *testing.T) {
	d := newTestDashboard(t)

	fig, err := d.Map("Population", 2007, "dark")
	require.NoError(t, err)
	assert.Len(t, fig.Data[0].Locations, 47)

	_, err = d.Map("Population", 1951, "dark")
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestDashboard_TableAndStyles(t *testing.T) {
	d := newTestDashboard(t)

	assert.Len(t, d.Table("dark").Data[0].Cells.Values[0], d.Store().Len())
	assert.Equal(t, "#111827", d.Styles("dark").Page.BackgroundColor)
	assert.Equal(t, "#ffffff", d.Styles("unknown").Card.BackgroundColor)
}

func TestDashboard_Records(t *testing.T) {
	d := newTestDashboard(t)

	page := d.Records(10, 0)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, 94, page.Total)
	assert.Equal(t, "Afghanistan", page.Data[0].Country)

	page = d.Records(10, 90)
	assert.Len(t, page.Data, 4)

	page = d.Records(10, 500)
	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data)

	page = d.Records(math.MaxInt, 1)
	assert.Len(t, page.Data, 93)
	assert.Equal(t, math.MaxInt, page.Limit)
}

func TestDashboard_ValidateDefaults(t *testing.T) {
	d := newTestDashboard(t)
	def := models.Defaults{
		Continent: "Asia", Year: 1952, TopN: 15, Orientation: models.Vertical,
		Variable: "Life Expectancy", MapYear: 1952, Theme: ThemeLight,
	}
	require.NoError(t, d.ValidateDefaults(def))

	def.Continent = "Atlantis"
	def.MapYear = 1800
	err := d.ValidateDefaults(def)
	require.Error(t, err)

	var ce *ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "continent", ce.Field)
	assert.ErrorContains(t, err, "1800")
}
