// Package profile maps collection identifiers to rendering profiles.
//
// Resolution is total: every identifier, curated or not, yields a
// usable profile. Curated table entries win; everything else is
// classified by an ordered substring rule list where the first match
// wins, so rule precedence is part of the public contract.
package profile

// Class is the coarse data-type category of a raster collection. It
// selects the opacity heuristics and, together with CoarseGrid, the
// zoom behavior when no curated entry exists.
type Class string

const (
	ClassOptical    Class = "optical"
	ClassSAR        Class = "sar"
	ClassElevation  Class = "elevation"
	ClassThermal    Class = "thermal"
	ClassFire       Class = "fire"
	ClassVegetation Class = "vegetation"
	ClassSnowIce    Class = "snow_ice"
	ClassUnknown    Class = "unknown"
)

// DeepZoom reports whether sources of this class stay legible far past
// their native resolution, enabling client-side overzoom.
func (c Class) DeepZoom() bool {
	switch c {
	case ClassOptical, ClassSAR, ClassElevation:
		return true
	}
	return false
}

// Hints are renderer tuning knobs carried on the profile verbatim.
type Hints struct {
	SuppressLabels bool `toml:"suppress_labels"`
	FadeEnabled    bool `toml:"fade_enabled"`
	LoadRadius     int  `toml:"load_radius"`
	Interpolate    bool `toml:"interpolate"`
	BufferPx       int  `toml:"buffer_px"`
}

// Profile is the immutable rendering profile for one collection.
// Safe to cache keyed by normalized identifier.
type Profile struct {
	Class       Class   `toml:"class"`
	CoarseGrid  bool    `toml:"coarse_grid"`
	MinZoom     int     `toml:"minzoom"`
	MaxZoom     int     `toml:"maxzoom"`
	TileSize    int     `toml:"tile_size"`
	BaseOpacity float64 `toml:"base_opacity"`
	Hints       Hints   `toml:"hints"`
}

// Default profile templates per class. MODIS-family grids top out at
// zoom 9 where the 250m-1km cells degenerate into noise; deep-zoom
// classes start at 0 so the lowest native tile can be overzoomed.

func Optical() Profile {
	return Profile{
		Class:       ClassOptical,
		MinZoom:     0,
		MaxZoom:     22,
		TileSize:    256,
		BaseOpacity: 0.98,
		Hints:       Hints{SuppressLabels: false, FadeEnabled: true, LoadRadius: 2, Interpolate: true},
	}
}

func SAR() Profile {
	return Profile{
		Class:       ClassSAR,
		MinZoom:     0,
		MaxZoom:     22,
		TileSize:    256,
		BaseOpacity: 0.95,
		Hints:       Hints{FadeEnabled: true, LoadRadius: 2, Interpolate: true},
	}
}

func Elevation() Profile {
	return Profile{
		Class:       ClassElevation,
		MinZoom:     0,
		MaxZoom:     22,
		TileSize:    512,
		BaseOpacity: 0.55,
		Hints:       Hints{SuppressLabels: true, FadeEnabled: true, LoadRadius: 1, Interpolate: true, BufferPx: 4},
	}
}

func Coarse(class Class, opacity float64) Profile {
	return Profile{
		Class:       class,
		CoarseGrid:  true,
		MinZoom:     4,
		MaxZoom:     9,
		TileSize:    256,
		BaseOpacity: opacity,
		Hints:       Hints{SuppressLabels: true, LoadRadius: 1, Interpolate: false},
	}
}
