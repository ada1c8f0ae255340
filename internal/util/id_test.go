package util

import (
	"sort"
	"testing"
	"time"
)

func TestNewComponentIDIsValid(t *testing.T) {
	id := NewComponentID()
	if !IsValidID(id) {
		t.Fatalf("NewComponentID returned invalid UUID: %q", id)
	}
}

func TestNewComponentIDIsSortable(t *testing.T) {
	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, NewComponentID())
		time.Sleep(2 * time.Millisecond)
	}

	if !sort.StringsAreSorted(ids) {
		t.Errorf("expected time-ordered ids, got %v", ids)
	}
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"uuid v7", NewComponentID(), true},
		{"uuid v4", "8f14e45f-ceea-4e7a-9a3d-2f5c1b2a3c4d", true},
		{"empty", "", false},
		{"garbage", "not-a-uuid", false},
		{"truncated", "8f14e45f-ceea-4e7a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidID(tt.id); got != tt.want {
				t.Errorf("IsValidID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
