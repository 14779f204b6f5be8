package models

// Figure is a renderable chart, table or map description. Its JSON form is
// a Plotly figure and can be handed to Plotly.react unchanged.
type Figure struct {
	Data   []Trace       `json:"data"`
	Layout Layout        `json:"layout"`
	Config *FigureConfig `json:"config,omitempty"`
}

// IsEmpty reports whether the figure carries no data series.
func (f *Figure) IsEmpty() bool {
	return len(f.Data) == 0
}

// Trace covers the bar, table and choropleth trace kinds.
type Trace struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`

	// bar
	X            []any    `json:"x,omitempty"`
	Y            []any    `json:"y,omitempty"`
	Orientation  string   `json:"orientation,omitempty"`
	Text         []string `json:"text,omitempty"`
	TextPosition string   `json:"textposition,omitempty"`
	ClipOnAxis   *bool    `json:"cliponaxis,omitempty"`
	Marker       *Marker  `json:"marker,omitempty"`
	LegendGroup  string   `json:"legendgroup,omitempty"`

	// table
	Header *TableSection `json:"header,omitempty"`
	Cells  *TableSection `json:"cells,omitempty"`

	// choropleth
	Locations     []string  `json:"locations,omitempty"`
	LocationMode  string    `json:"locationmode,omitempty"`
	Z             []float64 `json:"z,omitempty"`
	ColorScale    string    `json:"colorscale,omitempty"`
	CustomData    [][]any   `json:"customdata,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	ColorBar      *ColorBar `json:"colorbar,omitempty"`
}

type Marker struct {
	Color string `json:"color"`
}

type TableSection struct {
	Values []any  `json:"values"`
	Align  string `json:"align,omitempty"`
}

type ColorBar struct {
	Title Title `json:"title"`
}

type Title struct {
	Text string `json:"text"`
}

type Margin struct {
	T *int `json:"t,omitempty"`
	L *int `json:"l,omitempty"`
	R *int `json:"r,omitempty"`
	B *int `json:"b,omitempty"`
}

type Axis struct {
	Visible *bool  `json:"visible,omitempty"`
	Title   *Title `json:"title,omitempty"`
}

type Font struct {
	Size int `json:"size"`
}

type Annotation struct {
	Text      string  `json:"text"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	ShowArrow bool    `json:"showarrow"`
	Font      *Font   `json:"font,omitempty"`
}

type Legend struct {
	Title Title `json:"title"`
}

// Layout is the subset of Plotly layout attributes the builders set.
// Template names a Plotly template ("plotly_white", "plotly_dark").
type Layout struct {
	Title        *Title       `json:"title,omitempty"`
	Template     string       `json:"template"`
	PaperBgColor string       `json:"paper_bgcolor"`
	Height       int          `json:"height,omitempty"`
	Margin       *Margin      `json:"margin,omitempty"`
	XAxis        *Axis        `json:"xaxis,omitempty"`
	YAxis        *Axis        `json:"yaxis,omitempty"`
	Annotations  []Annotation `json:"annotations,omitempty"`
	Legend       *Legend      `json:"legend,omitempty"`
	DragMode     any          `json:"dragmode,omitempty"`
}

type FigureConfig struct {
	ScrollZoom     bool `json:"scrollZoom"`
	DisplayModeBar bool `json:"displayModeBar"`
}
