package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "campusmap.log")
			logger, err := New(tt.verbose, path)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			logger.Debug("debug line")
			logger.Info("info line")
			_ = logger.Sync()

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading log: %v", err)
			}
			out := string(data)
			if !strings.Contains(out, "info line") {
				t.Errorf("log missing info line: %s", out)
			}
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug line present = %v; want %v", got, tt.wantDebug)
			}
		})
	}
}
