package engine

import (
	"strconv"

	"github.com/valyala/fasttemplate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	barTitle = fasttemplate.New("{metric} for {continent} in {year}", "{", "}")
	mapTitle = fasttemplate.New("{variable} Choropleth Map [{year}]", "{", "}")
)

func barTitleFor(m Metric, continent string, year int) string {
	return barTitle.ExecuteString(map[string]any{
		"metric":    m.Label(),
		"continent": continent,
		"year":      strconv.Itoa(year),
	})
}

func mapTitleFor(m Metric, year int) string {
	return mapTitle.ExecuteString(map[string]any{
		"variable": m.Label(),
		"year":     strconv.Itoa(year),
	})
}

// valueFormatter renders metric values with English digit grouping.
type valueFormatter struct {
	p *message.Printer
}

func newValueFormatter() valueFormatter {
	return valueFormatter{p: message.NewPrinter(language.English)}
}

func (f valueFormatter) format(m Metric, v float64) string {
	switch m {
	case MetricPop:
		return f.p.Sprintf("%d", int64(v))
	case MetricGdpPercap:
		return f.p.Sprintf("%.2f", v)
	default:
		return f.p.Sprintf("%.3f", v)
	}
}

// Palette assigns bar colours in rank order; it has MaxTopN entries so
// colours never repeat within a figure.
var Palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
	"#FD3216", "#00FE35", "#6A76FC", "#FED4C4", "#FE00CE",
	"#0DF9FF", "#F6F926", "#FF9616", "#479B55", "#EEA6FB",
	"#DC587D", "#D626FF", "#6E899C", "#00B5F7", "#B68E00",
}
