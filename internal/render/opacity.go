package render

import (
	"github.com/rastermaps/renderconfig/internal/core/model"
	"github.com/rastermaps/renderconfig/internal/profile"
)

// Per-class opacity floors. Heuristics only ratchet opacity up from
// the profile baseline, never down; thermal is fully opaque because
// its no-data pixels are already transparent.
const (
	opacityFloorOptical    = 0.98
	opacityFloorSAR        = 0.95
	opacityFloorElevation  = 0.55
	opacityFloorThermal    = 1.0
	opacityFloorFire       = 0.7
	opacityFloorVegetation = 0.9
	opacityFloorDefault    = 0.85
)

// ResolveOpacity returns the layer opacity in [0,1]. An explicit
// override wins outright; otherwise the class heuristics apply, with
// explicit style flags taking precedence over the profile class.
func ResolveOpacity(p profile.Profile, override *float64, flags model.StyleFlags) float64 {
	if override != nil {
		return clamp01(*override)
	}

	floor := opacityFloorDefault
	switch effectiveClass(p.Class, flags) {
	case profile.ClassOptical:
		floor = opacityFloorOptical
	case profile.ClassSAR:
		floor = opacityFloorSAR
	case profile.ClassElevation:
		floor = opacityFloorElevation
	case profile.ClassThermal:
		floor = opacityFloorThermal
	case profile.ClassFire:
		floor = opacityFloorFire
	case profile.ClassVegetation, profile.ClassSnowIce:
		floor = opacityFloorVegetation
	}

	out := p.BaseOpacity
	if floor > out {
		out = floor
	}
	return clamp01(out)
}

// effectiveClass applies explicit style flags over name inference.
func effectiveClass(c profile.Class, flags model.StyleFlags) profile.Class {
	switch {
	case flags.Thermal:
		return profile.ClassThermal
	case flags.Fire:
		return profile.ClassFire
	case flags.Elevation:
		return profile.ClassElevation
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
