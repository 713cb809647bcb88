package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stamp(t *testing.T, version, commit, date string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
	Version, Commit, Date = version, commit, date
}

func TestShort(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{name: "release", version: "v1.2.0", commit: "abc123", want: "v1.2.0"},
		{name: "dev build with commit", version: "dev", commit: "abc123", want: "abc123"},
		{name: "unstamped", version: "dev", commit: "unknown", want: "dev"},
		{name: "empty", version: "", commit: "", want: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stamp(t, tt.version, tt.commit, "unknown")
			assert.Equal(t, tt.want, Short())
		})
	}
}

func TestString(t *testing.T) {
	stamp(t, "v0.3.1", "deadbee", "2026-01-02")
	assert.Equal(t, "sparkcalc v0.3.1 (commit deadbee, built 2026-01-02)", String())
}
