package model

// PageView is everything the page needs to draw one frame. Nil sections are hidden.
type PageView struct {
	Title    string        `json:"title"`
	Theme    ThemeView     `json:"theme"`
	Form     FormView      `json:"form"`
	Alert    *AlertView    `json:"alert,omitempty"`
	Spinner  *SpinnerView  `json:"spinner,omitempty"`
	Forecast *ForecastCard `json:"forecast,omitempty"`
	Map      *MapView      `json:"map,omitempty"`
	Footer   string        `json:"footer"`
}

type ThemeView struct {
	Name Theme `json:"name"`
	Dark bool  `json:"dark"`
	// Attribute is set on the document root, CSS keys off it
	Attribute  string `json:"attribute"`
	Label      string `json:"label"`
	SwitchOn   string `json:"switchOn"`
	SwitchOff  string `json:"switchOff"`
	TitleColor string `json:"titleColor"`
	LabelColor string `json:"labelColor"`
}

type FormView struct {
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Submit      string `json:"submit"`
	Query       string `json:"query"`
}

type AlertView struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type SpinnerView struct {
	Tip string `json:"tip"`
}

type ForecastCard struct {
	Heading string    `json:"heading"`
	Days    []DayView `json:"days"`
}

type DayView struct {
	Date        string `json:"date"`
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	IconURL     string `json:"iconUrl"`
	IconAlt     string `json:"iconAlt"`
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MapView is the Map Display snapshot. MountID only changes when the map is mounted again.
type MapView struct {
	MountID         string      `json:"mountId"`
	Center          Coordinate  `json:"center"`
	Zoom            int         `json:"zoom"`
	Marker          Coordinate  `json:"marker"`
	Popup           string      `json:"popup"`
	ScrollWheelZoom bool        `json:"scrollWheelZoom"`
	Tiles           TileLayer   `json:"tiles"`
	Icons           MarkerIcons `json:"icons"`
}

type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

type MarkerIcons struct {
	IconURL       string `json:"iconUrl"`
	IconRetinaURL string `json:"iconRetinaUrl"`
	ShadowURL     string `json:"shadowUrl"`
}
