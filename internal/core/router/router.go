// Package router parses layer and mosaic requests into engine inputs.
// Only contract violations (missing collection or url) are rejected;
// dirty optional fields degrade downstream per the engine's rules.
package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rastermaps/renderconfig/internal/core/model"
)

type LayerRequest struct {
	Collection string
	URL        string
	Metadata   *model.TileMetadata
	Bounds     []float64
	Flags      model.StyleFlags
	Opacity    *float64
}

type MosaicRequest struct {
	Collection string             `json:"collection"`
	Items      []model.MosaicItem `json:"items"`
}

// ParseLayerRequest validates GET /layer query parameters.
func ParseLayerRequest(r *http.Request) (LayerRequest, error) {
	q := r.URL.Query()

	collection := strings.TrimSpace(q.Get("collection"))
	if collection == "" {
		return LayerRequest{}, errors.New("missing required parameter: collection")
	}
	rawURL := strings.TrimSpace(q.Get("url"))
	if rawURL == "" {
		return LayerRequest{}, errors.New("missing required parameter: url")
	}

	out := LayerRequest{Collection: collection, URL: rawURL}

	md := &model.TileMetadata{}
	if v := strings.TrimSpace(q.Get("minzoom")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return LayerRequest{}, fmt.Errorf("invalid minzoom: %w", err)
		}
		md.MinZoom = &n
	}
	if v := strings.TrimSpace(q.Get("maxzoom")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return LayerRequest{}, fmt.Errorf("invalid maxzoom: %w", err)
		}
		md.MaxZoom = &n
	}
	if md.MinZoom != nil || md.MaxZoom != nil {
		out.Metadata = md
	}

	if v := strings.TrimSpace(q.Get("bbox")); v != "" {
		// raw candidate box; bounds validation happens in the engine
		// and silently degrades, so parse errors are the only reject
		b, err := parseBBox(v)
		if err != nil {
			return LayerRequest{}, fmt.Errorf("invalid bbox: %w", err)
		}
		out.Bounds = b
	}

	if v := strings.TrimSpace(q.Get("opacity")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return LayerRequest{}, fmt.Errorf("invalid opacity: %w", err)
		}
		out.Opacity = &f
	}

	out.Flags = model.StyleFlags{
		Elevation: boolParam(q.Get("elevation")),
		Thermal:   boolParam(q.Get("thermal")),
		Fire:      boolParam(q.Get("fire")),
	}

	return out, nil
}

// ParseMosaicRequest validates the POST /mosaic JSON body.
func ParseMosaicRequest(r *http.Request) (MosaicRequest, error) {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err != nil {
		return MosaicRequest{}, fmt.Errorf("read body: %w", err)
	}
	var req MosaicRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return MosaicRequest{}, fmt.Errorf("parse body: %w", err)
	}
	if strings.TrimSpace(req.Collection) == "" {
		return MosaicRequest{}, errors.New("missing required field: collection")
	}
	if len(req.Items) == 0 {
		return MosaicRequest{}, errors.New("items must not be empty")
	}
	return req, nil
}

func parseBBox(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, errors.New("expected 4 comma-separated values: west,south,east,north")
	}
	out := make([]float64, 4)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

func boolParam(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true") || v == "1"
}
