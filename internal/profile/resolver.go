package profile

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rastermaps/renderconfig/internal/core/observability"
)

// Rule classifies identifiers that miss the curated table. Rules are
// evaluated in slice order and the first match wins: an identifier
// like "sar-dem-modis-hybrid" resolves through the modis rule even
// though later rules would also match.
type Rule struct {
	Name     string
	Match    func(id string) bool
	Template Profile
}

func contains(subs ...string) func(string) bool {
	return func(id string) bool {
		for _, s := range subs {
			if strings.Contains(id, s) {
				return true
			}
		}
		return false
	}
}

// DefaultRules is the documented classification order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "modis", Match: contains("modis-"), Template: Coarse(ClassOptical, 0.9)},
		{Name: "elevation", Match: contains("dem", "elevation"), Template: Elevation()},
		{Name: "sar", Match: contains("sentinel-1", "sar"), Template: SAR()},
	}
}

// Resolver resolves collection identifiers to rendering profiles.
// Resolution is pure and deterministic, so results are cached in an
// in-process lru keyed by normalized identifier.
type Resolver struct {
	table *Table
	rules []Rule
	cache *lru.Cache[string, Profile]
}

const defaultCacheSize = 4096

func NewResolver(table *Table, rules []Rule, cacheSize int) *Resolver {
	if table == nil {
		table = NewTable(nil)
	}
	if rules == nil {
		rules = DefaultRules()
	}
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	c, _ := lru.New[string, Profile](cacheSize)
	return &Resolver{table: table, rules: rules, cache: c}
}

// Resolve never fails: unknown identifiers fall through the rule list
// to the optical default.
func (r *Resolver) Resolve(id string) Profile {
	norm := Normalize(id)
	if p, ok := r.cache.Get(norm); ok {
		return p
	}

	p, source := r.resolve(norm)
	r.cache.Add(norm, p)
	observability.IncProfileResolution(string(p.Class), source)
	return p
}

func (r *Resolver) resolve(norm string) (Profile, string) {
	if p, ok := r.table.Lookup(norm); ok {
		return p, "table"
	}
	for _, rule := range r.rules {
		if rule.Match(norm) {
			return rule.Template, "rule:" + rule.Name
		}
	}
	return Optical(), "default"
}

// Invalidate drops the cached resolution for one identifier, used when
// the upstream catalog announces a collection change.
func (r *Resolver) Invalidate(id string) {
	r.cache.Remove(Normalize(id))
}
