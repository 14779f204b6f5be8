package engine

import "gapminder/internal/models"

// NoDataMessage is the annotation of the empty placeholder figure.
const NoDataMessage = "No data available for current filters."

const transparent = "rgba(0,0,0,0)"

func ptr[T any](v T) *T { return &v }

// EmptyFigure is the placeholder returned when a filter matches no rows:
// no traces, hidden axes, one centred message.
func EmptyFigure() *models.Figure {
	return &models.Figure{
		Data: []models.Trace{},
		Layout: models.Layout{
			Template:     lightTheme.PlotStyle,
			PaperBgColor: transparent,
			Height:       420,
			Margin:       &models.Margin{T: ptr(40), L: ptr(20), R: ptr(20), B: ptr(20)},
			XAxis:        &models.Axis{Visible: ptr(false)},
			YAxis:        &models.Axis{Visible: ptr(false)},
			Annotations: []models.Annotation{{
				Text:      NoDataMessage,
				XRef:      "paper",
				YRef:      "paper",
				X:         0.5,
				Y:         0.5,
				ShowArrow: false,
				Font:      &models.Font{Size: 16},
			}},
		},
	}
}

// BuildRankedBar charts the topN countries of continent in year ranked by m.
// Each country is its own trace so it gets its own colour and legend entry.
func BuildRankedBar(cs *ColumnStore, m Metric, continent string, year, topN int, orient models.Orientation, theme models.ThemeBundle) *models.Figure {
	ranked := cs.Rank(m, continent, year, topN)
	if len(ranked) == 0 {
		return EmptyFigure()
	}

	if orient != models.Horizontal {
		orient = models.Vertical
	}
	categoryAxis := &models.Axis{Title: &models.Title{Text: "country"}}
	valueAxis := &models.Axis{Title: &models.Title{Text: m.Column()}}

	fig := &models.Figure{
		Data: make([]models.Trace, 0, len(ranked)),
		Layout: models.Layout{
			Title:        &models.Title{Text: barTitleFor(m, continent, year)},
			Template:     theme.PlotStyle,
			PaperBgColor: transparent,
			Height:       600,
			Legend:       &models.Legend{},
			XAxis:        categoryAxis,
			YAxis:        valueAxis,
		},
	}
	if orient == models.Horizontal {
		fig.Layout.XAxis, fig.Layout.YAxis = valueAxis, categoryAxis
	}

	vf := newValueFormatter()
	for i, r := range ranked {
		t := models.Trace{
			Type:         "bar",
			Name:         r.Country,
			LegendGroup:  r.Country,
			Orientation:  string(orient),
			Text:         []string{vf.format(m, r.Value)},
			TextPosition: "outside",
			ClipOnAxis:   ptr(false),
			Marker:       &models.Marker{Color: Palette[i%len(Palette)]},
		}
		if orient == models.Horizontal {
			t.X, t.Y = []any{r.Value}, []any{r.Country}
		} else {
			t.X, t.Y = []any{r.Country}, []any{r.Value}
		}
		fig.Data = append(fig.Data, t)
	}
	return fig
}
