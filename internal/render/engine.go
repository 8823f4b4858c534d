package render

import (
	"github.com/rastermaps/renderconfig/internal/core/model"
	"github.com/rastermaps/renderconfig/internal/profile"
)

// Engine is the synchronous, stateless front of the rendering
// configuration subsystem: identifier in, descriptor(s) out. Safe for
// concurrent use; the profile resolver is read-only after construction.
type Engine struct {
	Profiles *profile.Resolver
	mosaic   Assembler
}

func NewEngine(profiles *profile.Resolver) *Engine {
	return &Engine{Profiles: profiles}
}

// Layer resolves the collection profile and builds one descriptor.
func (e *Engine) Layer(collection string, in BuildInput) model.TileLayerDescriptor {
	return BuildLayer(e.Profiles.Resolve(collection), in)
}

// Mosaic builds one descriptor per item under the shared collection's
// profile, tolerating per-item failures.
func (e *Engine) Mosaic(collection string, items []model.MosaicItem) model.MosaicResult {
	return e.mosaic.Assemble(e.Profiles.Resolve(collection), items)
}
