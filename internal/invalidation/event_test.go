package invalidation

import (
	"testing"
	"time"
)

func validEvent() Event {
	return Event{Version: 1, Op: "upsert", Collection: "sentinel-2-l2a", TS: time.Now()}
}

func TestValidate_OK(t *testing.T) {
	for _, op := range []string{"upsert", "delete", "refresh"} {
		ev := validEvent()
		ev.Op = op
		if err := ev.Validate(); err != nil {
			t.Fatalf("op %s: %v", op, err)
		}
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Event)
	}{
		{"bad version", func(e *Event) { e.Version = 2 }},
		{"bad op", func(e *Event) { e.Op = "truncate" }},
		{"empty collection", func(e *Event) { e.Collection = "   " }},
		{"zero ts", func(e *Event) { e.TS = time.Time{} }},
	}
	for _, c := range cases {
		ev := validEvent()
		c.mutate(&ev)
		if err := ev.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
	}
}
