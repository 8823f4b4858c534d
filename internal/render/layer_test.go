package render

import (
	"testing"

	"github.com/rastermaps/renderconfig/internal/core/model"
	"github.com/rastermaps/renderconfig/internal/profile"
)

func TestBuildLayer_OpticalNoMetadata(t *testing.T) {
	d := BuildLayer(profile.Optical(), BuildInput{URL: "https://tiles.example.com/cog/tiles/{z}/{x}/{y}.png"})

	if d.MinZoom != 0 {
		t.Fatalf("minzoom = %d, want 0", d.MinZoom)
	}
	if d.MaxZoom < 22 {
		t.Fatalf("maxzoom = %d, want >= 22", d.MaxZoom)
	}
	if d.Opacity < 0.98 {
		t.Fatalf("opacity = %v, want >= 0.98", d.Opacity)
	}
	if d.Bounds != nil {
		t.Fatalf("bounds = %+v, want nil without a candidate box", d.Bounds)
	}
}

func TestBuildLayer_MalformedBoundsDegradeToNone(t *testing.T) {
	d := BuildLayer(profile.Optical(), BuildInput{
		URL:    "https://tiles.example.com/{z}/{x}/{y}.png",
		Bounds: []float64{200, 10, 210, 20},
	})
	if d.Bounds != nil {
		t.Fatalf("bounds = %+v, want nil for out-of-range longitude", d.Bounds)
	}
}

func TestBuildLayer_ValidBoundsClampedAndAttached(t *testing.T) {
	d := BuildLayer(profile.Optical(), BuildInput{
		URL:    "https://tiles.example.com/{z}/{x}/{y}.png",
		Bounds: []float64{10, -89, 20, 89},
	})
	if d.Bounds == nil {
		t.Fatal("expected bounds")
	}
	want := model.GeoBounds{West: 10, South: -85, East: 20, North: 85}
	if *d.Bounds != want {
		t.Fatalf("bounds = %+v, want %+v", *d.Bounds, want)
	}
}

func TestBuildLayer_ThermalFixedOverrides(t *testing.T) {
	p := profile.Coarse(profile.ClassThermal, 1.0)
	d := BuildLayer(p, BuildInput{URL: "https://tiles.example.com/{z}/{x}/{y}.png"})

	if d.FixedOverrides == nil {
		t.Fatal("expected fixed overrides for thermal")
	}
	if d.FixedOverrides.Resampling != "nearest" || d.FixedOverrides.Interpolate {
		t.Fatalf("overrides = %+v, want nearest/no-interpolate", d.FixedOverrides)
	}
	if d.FixedOverrides.NoData != thermalNoData {
		t.Fatalf("nodata = %v, want %v", d.FixedOverrides.NoData, thermalNoData)
	}
	if d.Interpolate {
		t.Fatal("descriptor interpolate must be off for thermal")
	}
}

func TestBuildLayer_ThermalFlagForcesOverrides(t *testing.T) {
	d := BuildLayer(profile.Optical(), BuildInput{
		URL:   "https://tiles.example.com/{z}/{x}/{y}.png",
		Flags: model.StyleFlags{Thermal: true},
	})
	if d.FixedOverrides == nil {
		t.Fatal("thermal flag must attach fixed overrides regardless of profile class")
	}
}

func TestBuildLayer_TileSizeFallsBackTo256(t *testing.T) {
	d := BuildLayer(profile.Profile{Class: profile.ClassUnknown}, BuildInput{URL: "u"})
	if d.TileSize != 256 {
		t.Fatalf("tile size = %d, want 256", d.TileSize)
	}
}

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{
			"dynamic tiler gains scale param",
			"https://t.example.com/cog/tiles/{z}/{x}/{y}.png",
			"https://t.example.com/cog/tiles/{z}/{x}/{y}.png?tile_scale=2",
		},
		{
			"dynamic tiler with existing query",
			"https://t.example.com/mosaic/tiles/{z}/{x}/{y}.png?assets=visual",
			"https://t.example.com/mosaic/tiles/{z}/{x}/{y}.png?assets=visual&tile_scale=2",
		},
		{
			"search mosaic endpoint",
			"https://t.example.com/searches/abc123/{z}/{x}/{y}.png",
			"https://t.example.com/searches/abc123/{z}/{x}/{y}.png?tile_scale=2",
		},
		{
			"scale param not duplicated",
			"https://t.example.com/cog/tiles/{z}/{x}/{y}.png?tile_scale=1",
			"https://t.example.com/cog/tiles/{z}/{x}/{y}.png?tile_scale=1",
		},
		{
			"wmts fixed grid untouched",
			"https://t.example.com/wmts/layer/{z}/{x}/{y}.png",
			"https://t.example.com/wmts/layer/{z}/{x}/{y}.png",
		},
		{
			"retina suffix fixed grid untouched",
			"https://t.example.com/cog/tiles/{z}/{x}/{y}@2x.png",
			"https://t.example.com/cog/tiles/{z}/{x}/{y}@2x.png",
		},
		{
			"plain template untouched",
			"https://t.example.com/{z}/{x}/{y}.png",
			"https://t.example.com/{z}/{x}/{y}.png",
		},
		{"empty", "", ""},
	}
	for _, c := range cases {
		if got := normalizeURL(c.in); got != c.want {
			t.Fatalf("%s: got %q want %q", c.name, got, c.want)
		}
	}
}
