package engine

import "gapminder/internal/models"

// MapColorScale is the diverging scale of the choropleth.
const MapColorScale = "RdYlBu"

// BuildChoropleth colours every country of year by the variable behind
// label. Unknown labels use DefaultVariable. Zoom and pan are disabled.
func BuildChoropleth(cs *ColumnStore, ix *Index, label string, year int, theme models.ThemeBundle) *models.Figure {
	m, _ := ix.MetricFor(label)
	rows := cs.YearRows(year)
	if len(rows) == 0 {
		return EmptyFigure()
	}

	vf := newValueFormatter()
	t := models.Trace{
		Type:          "choropleth",
		Locations:     make([]string, 0, len(rows)),
		LocationMode:  "ISO-3",
		Z:             make([]float64, 0, len(rows)),
		ColorScale:    MapColorScale,
		CustomData:    make([][]any, 0, len(rows)),
		HoverTemplate: "<b>%{customdata[0]}</b><br>" + m.Column() + "=%{customdata[1]}<extra></extra>",
		ColorBar:      &models.ColorBar{Title: models.Title{Text: m.Column()}},
	}
	for _, i := range rows {
		v := cs.Value(m, i)
		t.Locations = append(t.Locations, cs.IsoAlphas[i])
		t.Z = append(t.Z, v)
		t.CustomData = append(t.CustomData, []any{cs.Country(i), vf.format(m, v)})
	}

	return &models.Figure{
		Data: []models.Trace{t},
		Layout: models.Layout{
			Title:        &models.Title{Text: mapTitleFor(m, year)},
			Template:     theme.PlotStyle,
			PaperBgColor: transparent,
			DragMode:     false,
			Height:       600,
			Margin:       &models.Margin{L: ptr(0), R: ptr(0)},
		},
		Config: &models.FigureConfig{ScrollZoom: false, DisplayModeBar: false},
	}
}
