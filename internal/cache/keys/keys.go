// Package keys builds descriptor cache keys. Keys group under a
// per-collection prefix so one collection can be flushed without
// touching the rest of the keyspace.
package keys

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"

	"github.com/rastermaps/renderconfig/internal/core/model"
)

// CollectionPrefix is the shared key prefix for everything cached
// under one collection identifier.
func CollectionPrefix(collection string) string {
	return "desc:" + sanitize(strings.ToLower(strings.TrimSpace(collection))) + ":"
}

// Descriptor keys one (collection, url, metadata, flags, override)
// combination. The variable parts are hashed: tile URLs routinely
// exceed redis key comfort and carry signing query params.
func Descriptor(collection, url string, md *model.TileMetadata, flags model.StyleFlags, opacity *float64) string {
	var b strings.Builder
	b.WriteString(url)
	b.WriteByte('|')
	if md != nil {
		if md.MinZoom != nil {
			b.WriteString(strconv.Itoa(*md.MinZoom))
		}
		b.WriteByte(',')
		if md.MaxZoom != nil {
			b.WriteString(strconv.Itoa(*md.MaxZoom))
		}
	}
	b.WriteByte('|')
	b.WriteString(fmt.Sprintf("%t%t%t", flags.Elevation, flags.Thermal, flags.Fire))
	b.WriteByte('|')
	if opacity != nil {
		b.WriteString(strconv.FormatFloat(*opacity, 'f', -1, 64))
	}

	sum := xxhash.Sum64String(b.String())
	return fmt.Sprintf("%s%016x", CollectionPrefix(collection), sum)
}

// collapses whitespace runs to '_' and anything outside the safe key
// alphabet to '-', never emitting repeats
func sanitize(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	for _, r := range s {
		var out rune
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
			out = '_'
		case isAlphaNum(r) || r == '_' || r == '-' || r == '.':
			out = r
		default:
			out = '-'
		}
		if (out == '_' || out == '-') && out == prev {
			continue
		}
		b.WriteRune(out)
		prev = out
	}
	return b.String()
}

func isAlphaNum(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		unicode.IsDigit(r)
}
