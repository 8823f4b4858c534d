// Package render computes tile layer descriptors from resolved
// profiles, backend tile metadata and caller hints. Everything here is
// pure arithmetic and string construction; dirty input degrades to
// documented defaults instead of failing.
package render

import (
	"github.com/rastermaps/renderconfig/internal/core/model"
	"github.com/rastermaps/renderconfig/internal/profile"
)

// Physical zoom rails. Coarse MODIS-family grids have no tiles below
// zoom 4 (requests would 404) and degenerate into noise above 9.
// Deep-zoom classes start at 0 so the lowest native tile can be
// overzoomed, and are served up to 22 by dynamic tilers.
const (
	coarseZoomFloor = 4
	coarseZoomCeil  = 9
	overzoomFloor   = 0
	deepZoomCeil    = 22
)

// ResolveZoom reconciles the profile defaults with backend-declared
// tile metadata. Metadata is advisory: it can tighten the range inside
// the physical rails of the class but never widen past them. The
// returned range always satisfies minZoom <= maxZoom.
func ResolveZoom(p profile.Profile, md *model.TileMetadata) (minZoom, maxZoom int) {
	minZoom, maxZoom = p.MinZoom, p.MaxZoom

	switch {
	case md == nil:
		// profile defaults verbatim

	case p.CoarseGrid:
		minZoom = coarseZoomFloor
		if md.MinZoom != nil && *md.MinZoom > minZoom {
			minZoom = *md.MinZoom
		}
		maxZoom = coarseZoomCeil
		if md.MaxZoom != nil && *md.MaxZoom < maxZoom {
			maxZoom = *md.MaxZoom
		}

	case p.Class.DeepZoom():
		// metadata cannot raise the floor: the renderer overzooms the
		// lowest available tile instead of dropping the layer
		minZoom = overzoomFloor
		if md.MaxZoom != nil {
			maxZoom = *md.MaxZoom
		}
		if maxZoom < deepZoomCeil {
			maxZoom = deepZoomCeil
		}

	default:
		if md.MinZoom != nil {
			minZoom = *md.MinZoom
		}
		if md.MaxZoom != nil {
			maxZoom = *md.MaxZoom
		}
	}

	if minZoom > maxZoom {
		minZoom = maxZoom
	}
	return minZoom, maxZoom
}
