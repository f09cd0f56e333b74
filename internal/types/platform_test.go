package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFamilyForGOOS(t *testing.T) {
	tests := []struct {
		goos string
		want PlatformFamily
	}{
		{"windows", PlatformWindows},
		{"linux", PlatformUnix},
		{"darwin", PlatformUnix},
		{"freebsd", PlatformUnix},
		{"", PlatformUnix},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, FamilyForGOOS(tt.goos)); diff != "" {
			t.Errorf("FamilyForGOOS(%q) (-want +got):\n%s", tt.goos, diff)
		}
	}
}
