package keys

import (
	"testing"
	"time"
)

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ISU campus map", "isu-campus-map"},
		{"  Dormitory No. 2 ", "dormitory-no-2"},
		{"a//b", "a-b"},
		{"Карта кампуса", "карта-кампуса"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeKey(tt.in); got != tt.want {
			t.Errorf("sanitizeKey(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestExport(t *testing.T) {
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.FixedZone("IRKT", 8*3600))
	if got, want := Export("ISU campus map", at), "exports/isu-campus-map/20250303-210607.html"; got != want {
		t.Errorf("Export() = %q; want %q", got, want)
	}
	if got, want := Latest("ISU campus map"), "exports/isu-campus-map/latest.html"; got != want {
		t.Errorf("Latest() = %q; want %q", got, want)
	}
}
