package profile

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Table is the curated identifier -> profile set. Read-only after
// construction; adding an entry never changes resolution for
// identifiers not in the table.
type Table struct {
	entries map[string]Profile
}

func NewTable(entries map[string]Profile) *Table {
	m := make(map[string]Profile, len(entries))
	for k, v := range entries {
		m[Normalize(k)] = v
	}
	return &Table{entries: m}
}

func (t *Table) Lookup(id string) (Profile, bool) {
	p, ok := t.entries[Normalize(id)]
	return p, ok
}

func (t *Table) Len() int { return len(t.entries) }

// Merge returns a new table with entries overlaid on t. t itself is
// left untouched so resolvers already holding it keep a stable view.
func (t *Table) Merge(entries map[string]Profile) *Table {
	m := make(map[string]Profile, len(t.entries)+len(entries))
	for k, v := range t.entries {
		m[k] = v
	}
	for k, v := range entries {
		m[Normalize(k)] = v
	}
	return &Table{entries: m}
}

// Normalize folds an identifier to its canonical lookup form.
// Identifiers are case-insensitive and surrounding whitespace carries
// no meaning.
func Normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// DefaultTable is the built-in curated set.
func DefaultTable() *Table {
	thermal := Coarse(ClassThermal, 1.0)
	thermal.Hints.Interpolate = false

	return NewTable(map[string]Profile{
		"sentinel-2-l2a": Optical(),
		"landsat-c2-l2":  Optical(),
		"naip":           Optical(),
		"sentinel-1-rtc": SAR(),
		"sentinel-1-grd": SAR(),
		"cop-dem-glo-30": Elevation(),
		"cop-dem-glo-90": Elevation(),
		"nasadem":        Elevation(),

		"modis-09a1-061":  Coarse(ClassOptical, 0.9),
		"modis-13a1-061":  Coarse(ClassVegetation, 0.9),
		"modis-14a1-061":  Coarse(ClassFire, 0.7),
		"modis-11a1-061":  thermal,
		"modis-10a1-061":  Coarse(ClassSnowIce, 0.9),
		"chloris-biomass": Coarse(ClassVegetation, 0.9),
	})
}

type tableFile struct {
	Collections map[string]Profile `toml:"collections"`
}

// LoadTOML reads curated entries from a TOML file, keyed by collection
// identifier under a [collections.<id>] table per entry.
func LoadTOML(path string) (map[string]Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile table: %w", err)
	}
	var tf tableFile
	if err := toml.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("parse profile table: %w", err)
	}
	for id, p := range tf.Collections {
		if p.BaseOpacity < 0 || p.BaseOpacity > 1 {
			return nil, fmt.Errorf("profile table: %s: base_opacity %v out of [0,1]", id, p.BaseOpacity)
		}
		if p.MinZoom > p.MaxZoom {
			return nil, fmt.Errorf("profile table: %s: minzoom %d > maxzoom %d", id, p.MinZoom, p.MaxZoom)
		}
	}
	return tf.Collections, nil
}
