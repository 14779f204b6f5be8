package models

// Record is one country/year row of the dataset.
type Record struct {
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Year      int     `json:"year"`
	LifeExp   float64 `json:"lifeExp"`
	Pop       int64   `json:"pop"`
	GdpPercap float64 `json:"gdpPercap"`
	IsoAlpha  string  `json:"iso_alpha"`
	IsoNum    int     `json:"iso_num"`
}

type Orientation string

const (
	Vertical   Orientation = "v"
	Horizontal Orientation = "h"
)

// FilterSpec is the bar chart group's control snapshot.
type FilterSpec struct {
	Continent   string      `json:"continent"`
	Year        int         `json:"year"`
	TopN        int         `json:"topn"`
	Orientation Orientation `json:"orient"`
}

// ThemeBundle holds the presentation constants for one theme.
type ThemeBundle struct {
	PlotStyle      string `json:"plot_style"`
	PageBackground string `json:"page_bg"`
	CardBackground string `json:"card_bg"`
	TextColor      string `json:"text"`
}

type PageStyle struct {
	BackgroundColor string `json:"backgroundColor"`
	MinHeight       string `json:"minHeight"`
}

type CardStyle struct {
	BackgroundColor string `json:"backgroundColor"`
	Color           string `json:"color"`
}

// Styles is the theme group's style output.
type Styles struct {
	Page PageStyle `json:"page"`
	Card CardStyle `json:"card"`
}

// BarFigures are the three ranked bar charts built from one FilterSpec.
type BarFigures struct {
	Population *Figure `json:"population"`
	GDP        *Figure `json:"gdp"`
	LifeExp    *Figure `json:"life_expectancy"`
}

type Option struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// Defaults are the initial control values of the page.
type Defaults struct {
	Continent   string      `json:"continent" yaml:"continent" toml:"continent"`
	Year        int         `json:"year" yaml:"year" toml:"year"`
	TopN        int         `json:"topn" yaml:"top_n" toml:"top_n"`
	Orientation Orientation `json:"orient" yaml:"orientation" toml:"orientation"`
	Variable    string      `json:"variable" yaml:"variable" toml:"variable"`
	MapYear     int         `json:"map_year" yaml:"map_year" toml:"map_year"`
	Theme       string      `json:"theme" yaml:"theme" toml:"theme"`
}

// Options lists the selectable values of every control.
type Options struct {
	Continents   []Option `json:"continents"`
	Years        []Option `json:"years"`
	Variables    []Option `json:"variables"`
	TopN         []Option `json:"topn"`
	Orientations []Option `json:"orientations"`
	Themes       []Option `json:"themes"`
	Defaults     Defaults `json:"defaults"`
}

type RecordPage struct {
	Data   []Record `json:"data"`
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
}
