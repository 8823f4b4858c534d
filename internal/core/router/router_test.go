package router

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseLayerRequest_Valid(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/layer?collection=modis-14a1-061&url=https%3A%2F%2Ft.example.com%2F%7Bz%7D%2F%7Bx%7D%2F%7By%7D.png&minzoom=2&maxzoom=9&bbox=10,-89,20,89&fire=true", nil)

	req, err := ParseLayerRequest(r)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if req.Collection != "modis-14a1-061" {
		t.Fatalf("collection = %q", req.Collection)
	}
	if req.Metadata == nil || *req.Metadata.MinZoom != 2 || *req.Metadata.MaxZoom != 9 {
		t.Fatalf("metadata = %+v", req.Metadata)
	}
	if len(req.Bounds) != 4 || req.Bounds[0] != 10 || req.Bounds[3] != 89 {
		t.Fatalf("bounds = %v", req.Bounds)
	}
	if !req.Flags.Fire || req.Flags.Thermal {
		t.Fatalf("flags = %+v", req.Flags)
	}
	if req.Opacity != nil {
		t.Fatalf("opacity = %v, want nil", *req.Opacity)
	}
}

func TestParseLayerRequest_MissingRequired(t *testing.T) {
	r := httptest.NewRequest("GET", "/layer?url=https://t.example.com/x", nil)
	if _, err := ParseLayerRequest(r); err == nil {
		t.Fatal("expected error for missing collection")
	}

	r = httptest.NewRequest("GET", "/layer?collection=naip", nil)
	if _, err := ParseLayerRequest(r); err == nil {
		t.Fatal("expected error for missing url")
	}
}

func TestParseLayerRequest_BadNumericParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/layer?collection=naip&url=u&minzoom=abc", nil)
	if _, err := ParseLayerRequest(r); err == nil {
		t.Fatal("expected error for non-numeric minzoom")
	}

	r = httptest.NewRequest("GET", "/layer?collection=naip&url=u&opacity=high", nil)
	if _, err := ParseLayerRequest(r); err == nil {
		t.Fatal("expected error for non-numeric opacity")
	}

	r = httptest.NewRequest("GET", "/layer?collection=naip&url=u&bbox=1,2,3", nil)
	if _, err := ParseLayerRequest(r); err == nil {
		t.Fatal("expected error for 3-element bbox")
	}
}

func TestParseLayerRequest_OutOfRangeBBoxPassesThrough(t *testing.T) {
	// geometry validity is the validator's call, not the router's:
	// a parseable but out-of-range box degrades to no-bounds downstream
	r := httptest.NewRequest("GET", "/layer?collection=naip&url=u&bbox=200,10,210,20", nil)
	req, err := ParseLayerRequest(r)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(req.Bounds) != 4 || req.Bounds[0] != 200 {
		t.Fatalf("bounds = %v", req.Bounds)
	}
}

func TestParseMosaicRequest_Valid(t *testing.T) {
	body := `{"collection":"sentinel-2-l2a","items":[{"url":"https://t.example.com/a"},{"url":"https://t.example.com/b","bounds":[1,2,3,4],"tile_metadata":{"maxzoom":14}}]}`
	r := httptest.NewRequest("POST", "/mosaic", bytes.NewBufferString(body))

	req, err := ParseMosaicRequest(r)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if req.Collection != "sentinel-2-l2a" || len(req.Items) != 2 {
		t.Fatalf("req = %+v", req)
	}
	if req.Items[1].Metadata == nil || *req.Items[1].Metadata.MaxZoom != 14 {
		t.Fatalf("item metadata = %+v", req.Items[1].Metadata)
	}
}

func TestParseMosaicRequest_Rejections(t *testing.T) {
	cases := []string{
		`not json`,
		`{"items":[{"url":"u"}]}`,
		`{"collection":"c","items":[]}`,
		`{"collection":"   ","items":[{"url":"u"}]}`,
	}
	for _, body := range cases {
		r := httptest.NewRequest("POST", "/mosaic", strings.NewReader(body))
		if _, err := ParseMosaicRequest(r); err == nil {
			t.Fatalf("expected error for body %s", body)
		}
	}
}
