// Package invalidation defines the collection-update events emitted by
// the upstream catalog when curated metadata for a collection changes.
package invalidation

import (
	"fmt"
	"strings"
	"time"
)

type Event struct {
	Version    int       `json:"version"`
	Op         string    `json:"op"`
	Collection string    `json:"collection"`
	TS         time.Time `json:"ts"`
	Source     string    `json:"source,omitempty"`
}

func (e Event) Validate() error {
	if e.Version != 1 {
		return fmt.Errorf("version must be 1")
	}
	switch e.Op {
	case "upsert", "delete", "refresh":
	default:
		return fmt.Errorf("op must be upsert|delete|refresh")
	}
	if strings.TrimSpace(e.Collection) == "" {
		return fmt.Errorf("collection is required")
	}
	if e.TS.IsZero() {
		return fmt.Errorf("ts is required")
	}
	return nil
}
