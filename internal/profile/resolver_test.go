package profile

import "testing"

func TestResolve_CuratedTableWins(t *testing.T) {
	r := NewResolver(DefaultTable(), DefaultRules(), 0)

	p := r.Resolve("sentinel-2-l2a")
	if p.Class != ClassOptical {
		t.Fatalf("sentinel-2-l2a class = %s, want optical", p.Class)
	}
	if p.MinZoom != 0 || p.MaxZoom != 22 {
		t.Fatalf("sentinel-2-l2a zoom = [%d,%d], want [0,22]", p.MinZoom, p.MaxZoom)
	}

	p = r.Resolve("modis-14a1-061")
	if p.Class != ClassFire || !p.CoarseGrid {
		t.Fatalf("modis-14a1-061 = %+v, want coarse fire", p)
	}
	if p.BaseOpacity != 0.7 {
		t.Fatalf("modis-14a1-061 base opacity = %v, want 0.7", p.BaseOpacity)
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	r := NewResolver(DefaultTable(), nil, 0)
	a := r.Resolve("Sentinel-2-L2A")
	b := r.Resolve("  sentinel-2-l2a ")
	if a != b {
		t.Fatalf("case/whitespace variants resolved differently: %+v vs %+v", a, b)
	}
}

func TestResolve_RulePrecedenceIsOrdered(t *testing.T) {
	r := NewResolver(NewTable(nil), DefaultRules(), 0)

	// matches the modis, elevation and sar rules at once; the modis
	// rule is evaluated first and must win
	p := r.Resolve("sar-dem-modis-hybrid")
	if !p.CoarseGrid {
		t.Fatalf("hybrid id resolved to %+v, want the coarse modis template", p)
	}

	p = r.Resolve("custom-dem-product")
	if p.Class != ClassElevation {
		t.Fatalf("dem id class = %s, want elevation", p.Class)
	}

	p = r.Resolve("sentinel-1-grd")
	if p.Class != ClassSAR {
		t.Fatalf("sentinel-1 id class = %s, want sar", p.Class)
	}
}

func TestResolve_UnknownFallsToOpticalDefaults(t *testing.T) {
	r := NewResolver(DefaultTable(), DefaultRules(), 0)

	p := r.Resolve("xyz-custom-42")
	if p != Optical() {
		t.Fatalf("unknown id resolved to %+v, want optical defaults", p)
	}
}

func TestResolve_InvariantsHoldForAnyIdentifier(t *testing.T) {
	r := NewResolver(DefaultTable(), DefaultRules(), 0)

	ids := []string{
		"sentinel-2-l2a", "modis-14a1-061", "cop-dem-glo-30",
		"xyz-custom-42", "", "   ", "MODIS-weird", "sar", "some elevation thing",
	}
	for _, id := range ids {
		p := r.Resolve(id)
		if p.MinZoom > p.MaxZoom {
			t.Fatalf("%q: minzoom %d > maxzoom %d", id, p.MinZoom, p.MaxZoom)
		}
		if p.BaseOpacity < 0 || p.BaseOpacity > 1 {
			t.Fatalf("%q: base opacity %v out of [0,1]", id, p.BaseOpacity)
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	r1 := NewResolver(DefaultTable(), DefaultRules(), 0)
	r2 := NewResolver(DefaultTable(), DefaultRules(), 0)
	for _, id := range []string{"sentinel-2-l2a", "nope-123", "modis-x"} {
		if r1.Resolve(id) != r2.Resolve(id) {
			t.Fatalf("%q resolved differently across resolvers", id)
		}
	}
}

func TestResolve_CachedResultStable(t *testing.T) {
	r := NewResolver(DefaultTable(), DefaultRules(), 2)
	first := r.Resolve("sentinel-2-l2a")
	for i := 0; i < 5; i++ {
		if got := r.Resolve("sentinel-2-l2a"); got != first {
			t.Fatalf("cached resolution drifted: %+v vs %+v", got, first)
		}
	}
	r.Invalidate("sentinel-2-l2a")
	if got := r.Resolve("sentinel-2-l2a"); got != first {
		t.Fatalf("re-resolution after invalidate changed result: %+v", got)
	}
}

func TestMerge_DoesNotAffectOtherIdentifiers(t *testing.T) {
	base := DefaultTable()
	before := NewResolver(base, DefaultRules(), 0).Resolve("xyz-custom-42")

	merged := base.Merge(map[string]Profile{"brand-new-collection": Elevation()})
	after := NewResolver(merged, DefaultRules(), 0).Resolve("xyz-custom-42")

	if before != after {
		t.Fatalf("adding a table entry changed fallback resolution: %+v vs %+v", before, after)
	}
	if p, ok := merged.Lookup("brand-new-collection"); !ok || p.Class != ClassElevation {
		t.Fatalf("merged entry missing or wrong: %+v ok=%v", p, ok)
	}
	if _, ok := base.Lookup("brand-new-collection"); ok {
		t.Fatal("merge mutated the base table")
	}
}
