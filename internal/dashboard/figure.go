package dashboard

// Figure is a plotly figure: the page hands it to Plotly.react unchanged
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a choropleth trace keyed by country name
type Trace struct {
	Type          string   `json:"type"`
	Locations     []string `json:"locations"`
	LocationMode  string   `json:"locationmode"`
	Z             []int    `json:"z"`
	Text          []string `json:"text"`
	HoverTemplate string   `json:"hovertemplate"`
	ColorScale    string   `json:"colorscale"`
	ZMin          int      `json:"zmin"`
	ZMax          int      `json:"zmax"`
	ColorBar      ColorBar `json:"colorbar"`
}

type ColorBar struct {
	Title Title `json:"title"`
}

type Title struct {
	Text string `json:"text"`
}

type Layout struct {
	Title  Title  `json:"title"`
	Margin Margin `json:"margin"`
	Geo    Geo    `json:"geo"`
}

type Margin struct {
	R int `json:"r"`
	T int `json:"t"`
	L int `json:"l"`
	B int `json:"b"`
}

type Geo struct {
	ShowFrame      bool   `json:"showframe"`
	ShowCoastlines bool   `json:"showcoastlines"`
	Projection     string `json:"projection_type,omitempty"`
}
