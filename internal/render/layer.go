package render

import (
	"regexp"
	"strings"

	"github.com/rastermaps/renderconfig/internal/core/model"
	"github.com/rastermaps/renderconfig/internal/geo"
	"github.com/rastermaps/renderconfig/internal/profile"
)

// thermalNoData is the documented no-data sentinel for thermal anomaly
// grids; the renderer keys transparency off it.
const thermalNoData = -9999.0

// BuildInput carries the per-source inputs to a layer build. Every
// field except URL is optional.
type BuildInput struct {
	URL      string
	Metadata *model.TileMetadata
	Bounds   []float64
	Flags    model.StyleFlags
	Opacity  *float64
}

// BuildLayer composes one TileLayerDescriptor. It never fails:
// malformed bounds drop to no-bounds, absent metadata drops to profile
// defaults, and an unparseable URL is passed through untouched.
func BuildLayer(p profile.Profile, in BuildInput) model.TileLayerDescriptor {
	minZoom, maxZoom := ResolveZoom(p, in.Metadata)

	d := model.TileLayerDescriptor{
		URL:         normalizeURL(in.URL),
		Opacity:     ResolveOpacity(p, in.Opacity, in.Flags),
		TileSize:    tileSize(p),
		MinZoom:     minZoom,
		MaxZoom:     maxZoom,
		BufferPx:    p.Hints.BufferPx,
		Interpolate: p.Hints.Interpolate,
		LoadRadius:  p.Hints.LoadRadius,
	}

	if b, ok := geo.ValidateBounds(in.Bounds); ok {
		d.Bounds = &b
	}

	if effectiveClass(p.Class, in.Flags) == profile.ClassThermal {
		// interpolating thermal counts invents anomalies between cells
		d.Interpolate = false
		d.FixedOverrides = &model.FixedOverrides{
			Resampling:  "nearest",
			Interpolate: false,
			NoData:      thermalNoData,
		}
	}

	return d
}

func tileSize(p profile.Profile) int {
	if p.TileSize > 0 {
		return p.TileSize
	}
	return 256
}

// Endpoint patterns that rescale on demand and accept a tile_scale
// query parameter.
var dynamicTilerPaths = []string{"/cog/tiles/", "/mosaic/tiles/", "/searches/"}

// Fixed-grid endpoints serve pre-rendered tiles at native scale only;
// sending them a scale parameter fails the request.
var fixedGridPattern = regexp.MustCompile(`/wmts\b|@\dx`)

const tileScale = "2"

// normalizeURL appends the tile scale parameter for dynamic tiler
// endpoints and leaves every other URL untouched.
func normalizeURL(raw string) string {
	if raw == "" {
		return raw
	}
	if fixedGridPattern.MatchString(raw) {
		return raw
	}

	dynamic := false
	for _, p := range dynamicTilerPaths {
		if strings.Contains(raw, p) {
			dynamic = true
			break
		}
	}
	if !dynamic || strings.Contains(raw, "tile_scale=") {
		return raw
	}

	// plain string append: url.Parse would percent-encode the {z}/{x}/{y}
	// placeholders tile templates carry in their path
	sep := "?"
	if strings.Contains(raw, "?") {
		sep = "&"
	}
	return raw + sep + "tile_scale=" + tileScale
}
