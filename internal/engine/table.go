package engine

import "gapminder/internal/models"

// TableColumns is the dataset column order with the table's header names.
var TableColumns = []struct {
	Column string
	Header string
}{
	{"country", "Country"},
	{"continent", "Continent"},
	{"year", "Year"},
	{"lifeExp", "Life Expectancy"},
	{"pop", "Population"},
	{"gdpPercap", "GDP per Capita"},
	{"iso_alpha", "ISO Alpha Country Code"},
	{"iso_num", "ISO Numeric Code"},
}

// BuildTable renders the full dataset, unfiltered, in source row order.
func BuildTable(cs *ColumnStore, theme models.ThemeBundle) *models.Figure {
	n := cs.Len()
	cols := make([][]any, len(TableColumns))
	for c := range cols {
		cols[c] = make([]any, n)
	}
	for i := 0; i < n; i++ {
		cols[0][i] = cs.Country(i)
		cols[1][i] = cs.Continent(i)
		cols[2][i] = cs.Years[i]
		cols[3][i] = cs.LifeExps[i]
		cols[4][i] = cs.Pops[i]
		cols[5][i] = cs.GdpPercaps[i]
		cols[6][i] = cs.IsoAlphas[i]
		cols[7][i] = cs.IsoNums[i]
	}

	headers := make([]any, len(TableColumns))
	cells := make([]any, len(TableColumns))
	for c, tc := range TableColumns {
		headers[c] = tc.Header
		cells[c] = cols[c]
	}

	return &models.Figure{
		Data: []models.Trace{{
			Type:   "table",
			Header: &models.TableSection{Values: headers, Align: "left"},
			Cells:  &models.TableSection{Values: cells, Align: "left"},
		}},
		Layout: models.Layout{
			Template:     theme.PlotStyle,
			PaperBgColor: transparent,
			Margin:       &models.Margin{T: ptr(0), L: ptr(0), R: ptr(0), B: ptr(0)},
			Height:       700,
		},
	}
}
