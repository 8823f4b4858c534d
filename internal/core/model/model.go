// Package model defines core domain types shared across the service.
package model

import "fmt"

// TileMetadata is the zoom range declared by the tile backend for one
// source. Either field may be absent; absent fields fall back to the
// resolved profile defaults.
type TileMetadata struct {
	MinZoom *int `json:"minzoom,omitempty"`
	MaxZoom *int `json:"maxzoom,omitempty"`
}

// GeoBounds is a validated geographic box in degrees.
// Invariants after validation: West < East, South < North,
// longitude in [-180,180], latitude in [-85,85].
type GeoBounds struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

func (b GeoBounds) String() string {
	return fmt.Sprintf("%.6f,%.6f,%.6f,%.6f", b.West, b.South, b.East, b.North)
}

// StyleFlags are explicit caller hints that take precedence over
// identifier-based class inference.
type StyleFlags struct {
	Elevation bool `json:"elevation,omitempty"`
	Thermal   bool `json:"thermal,omitempty"`
	Fire      bool `json:"fire,omitempty"`
}

// FixedOverrides pins sampling behavior for classes where resampling
// would corrupt the data (thermal anomaly grids).
type FixedOverrides struct {
	Resampling  string  `json:"resampling"`
	Interpolate bool    `json:"interpolate"`
	NoData      float64 `json:"nodata"`
}

// TileLayerDescriptor is the final render config for one tile source.
// It is constructed fresh per request and never mutated afterwards.
type TileLayerDescriptor struct {
	URL            string          `json:"url"`
	Opacity        float64         `json:"opacity"`
	TileSize       int             `json:"tile_size"`
	Bounds         *GeoBounds      `json:"bounds,omitempty"`
	MinZoom        int             `json:"minzoom"`
	MaxZoom        int             `json:"maxzoom"`
	BufferPx       int             `json:"buffer_px"`
	Interpolate    bool            `json:"interpolate"`
	LoadRadius     int             `json:"load_radius"`
	FixedOverrides *FixedOverrides `json:"fixed_overrides,omitempty"`
}

// MosaicItem is one per-item input to mosaic assembly. Bounds is the
// raw candidate box as supplied upstream; it is validated during build.
type MosaicItem struct {
	URL      string        `json:"url"`
	Bounds   []float64     `json:"bounds,omitempty"`
	Metadata *TileMetadata `json:"tile_metadata,omitempty"`
}

// MosaicResult aggregates per-item build outcomes for one mosaic.
// SuccessCount+ErrorCount always equals the number of input items.
type MosaicResult struct {
	Layers       []TileLayerDescriptor `json:"layers"`
	SuccessCount int                   `json:"success_count"`
	ErrorCount   int                   `json:"error_count"`
}
