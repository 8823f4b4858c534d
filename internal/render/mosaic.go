package render

import (
	"errors"
	"fmt"

	"github.com/rastermaps/renderconfig/internal/core/model"
	"github.com/rastermaps/renderconfig/internal/core/observability"
	"github.com/rastermaps/renderconfig/internal/profile"
)

// Assembler builds one layer per mosaic item with partial-failure
// tolerance: a bad item is counted and skipped, never allowed to abort
// the remaining items. Build is injectable for tests; zero value uses
// BuildLayer.
type Assembler struct {
	Build func(profile.Profile, BuildInput) model.TileLayerDescriptor
}

type itemOutcome struct {
	layer model.TileLayerDescriptor
	err   error
}

// Assemble folds the items into a MosaicResult.
// SuccessCount+ErrorCount == len(items) always holds; z-order among
// successful layers is the caller's concern.
func (a Assembler) Assemble(p profile.Profile, items []model.MosaicItem) model.MosaicResult {
	build := a.Build
	if build == nil {
		build = BuildLayer
	}

	outcomes := make([]itemOutcome, 0, len(items))
	for i, item := range items {
		outcomes = append(outcomes, buildOne(build, p, i, item))
	}

	res := model.MosaicResult{Layers: make([]model.TileLayerDescriptor, 0, len(items))}
	for _, o := range outcomes {
		if o.err != nil {
			res.ErrorCount++
			continue
		}
		res.Layers = append(res.Layers, o.layer)
		res.SuccessCount++
	}
	observability.AddMosaicOutcomes(res.SuccessCount, res.ErrorCount)
	return res
}

func buildOne(build func(profile.Profile, BuildInput) model.TileLayerDescriptor, p profile.Profile, i int, item model.MosaicItem) (out itemOutcome) {
	// a build is pure and should not panic; if one does, the item is
	// reported as failed and the rest of the mosaic still renders
	defer func() {
		if r := recover(); r != nil {
			out = itemOutcome{err: fmt.Errorf("item %d: build panic: %v", i, r)}
		}
	}()

	if item.URL == "" {
		return itemOutcome{err: errors.New("item missing url")}
	}
	return itemOutcome{layer: build(p, BuildInput{
		URL:      item.URL,
		Metadata: item.Metadata,
		Bounds:   item.Bounds,
	})}
}
