package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	origVersion, origBuild, origCommit := Version, BuildTime, GitCommit
	defer func() { Version, BuildTime, GitCommit = origVersion, origBuild, origCommit }()

	tests := []struct {
		name      string
		version   string
		buildTime string
		commit    string
		want      []string
	}{
		{"development build", "dev", "unknown", "unknown", []string{"dev (development build"}},
		{"release build", "v1.2.3", "2026-10-01T12:00:00Z", "0123456789abcdef", []string{"v1.2.3", "built 2026-10-01 12:00:00 UTC", "commit 0123456"}},
		{"unparseable build time", "v1.2.3", "yesterday", "abc", []string{"built yesterday", "commit abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, BuildTime, GitCommit = tt.version, tt.buildTime, tt.commit
			got := Info()
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Info() = %q, want it to contain %q", got, want)
				}
			}
		})
	}
}
