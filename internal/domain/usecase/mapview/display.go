// Package mapview holds the Map Display: a viewport centered on one coordinate with a marker.
package mapview

import (
	"sync"

	"github.com/google/uuid"

	"weather-app/internal/domain/model"
	"weather-app/pkg/msg"
)

const DefaultZoom = 10

// Options are the static parts of the map: zoom, tiles and marker assets.
type Options struct {
	Zoom            int
	ScrollWheelZoom bool
	Tiles           model.TileLayer
	Icons           model.MarkerIcons
}

// Display is mounted by the first Show and re-centered by later ones.
type Display struct {
	opts Options

	mu      sync.Mutex
	mounted bool
	view    model.MapView
}

func NewDisplay(opts Options) *Display {
	if opts.Zoom <= 0 {
		opts.Zoom = DefaultZoom
	}
	return &Display{opts: opts}
}

// Show centers the viewport and marker on (lat, lon). It mounts the map when needed
// and reports whether it did.
func (d *Display) Show(lat, lon float64) (model.MapView, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	mounted := false
	if !d.mounted {
		d.mounted = true
		mounted = true
		d.view = model.MapView{
			MountID:         uuid.NewString(),
			Zoom:            d.opts.Zoom,
			ScrollWheelZoom: d.opts.ScrollWheelZoom,
			Tiles:           d.opts.Tiles,
			Icons:           d.opts.Icons,
		}
	}

	point := model.Coordinate{Lat: lat, Lon: lon}
	d.view.Center = point
	d.view.Zoom = d.opts.Zoom
	d.view.Marker = point
	d.view.Popup = msg.GetMessage("map.popup", lat, lon)

	return d.view, mounted
}

// Unmount hides the map, the next Show mounts a fresh one.
func (d *Display) Unmount() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mounted = false
	d.view = model.MapView{}
}

// Snapshot returns the current view, ok is false while unmounted.
func (d *Display) Snapshot() (model.MapView, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view, d.mounted
}
