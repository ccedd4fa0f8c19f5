package core

import (
	"regexp"
	"testing"
	"time"
)

func TestNewIDShapeAndUniqueness(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-z]{9}$`)
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := NewID()
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected id shape %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = struct{}{}
	}
}

func TestFormatTime(t *testing.T) {
	local := time.FixedZone("BRT", -3*60*60)
	got := FormatTime(time.Date(2024, 3, 1, 9, 30, 0, 5_000_000, local))
	if got != "2024-03-01T12:30:00.005Z" {
		t.Fatalf("unexpected timestamp %s", got)
	}
	if _, err := time.Parse(time.RFC3339, Now()); err != nil {
		t.Fatalf("Now is not RFC 3339: %v", err)
	}
}
