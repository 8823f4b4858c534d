// Package geo validates candidate geographic boxes before they reach a
// tile layer descriptor.
package geo

import (
	"math"

	"github.com/rastermaps/renderconfig/internal/core/model"
)

const (
	lonMin = -180.0
	lonMax = 180.0

	// latEnvelope is the safe web-projection envelope; latitudes
	// beyond it are clamped, not rejected.
	latEnvelope = 85.0
)

// ValidateBounds checks a raw candidate box [west, south, east, north]
// and returns the clamped box. A malformed box (wrong arity, non-finite
// values, out-of-range raw longitude, degenerate or inverted extent)
// yields ok=false: the layer renders without bounds rather than with
// wrong ones.
//
// Validation is idempotent: re-validating an already-clamped box
// returns it unchanged.
func ValidateBounds(raw []float64) (model.GeoBounds, bool) {
	if len(raw) != 4 {
		return model.GeoBounds{}, false
	}
	for _, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return model.GeoBounds{}, false
		}
	}

	west, south, east, north := raw[0], raw[1], raw[2], raw[3]

	// out-of-range longitudes are rejected outright; silently wrapping
	// them would move the box to the other side of the antimeridian
	if west < lonMin || west > lonMax || east < lonMin || east > lonMax {
		return model.GeoBounds{}, false
	}
	if west >= east || south >= north {
		return model.GeoBounds{}, false
	}

	b := model.GeoBounds{
		West:  west,
		South: clamp(south, -latEnvelope, latEnvelope),
		East:  east,
		North: clamp(north, -latEnvelope, latEnvelope),
	}
	// a box entirely above or below the envelope collapses when clamped
	if b.South >= b.North {
		return model.GeoBounds{}, false
	}
	return b, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
