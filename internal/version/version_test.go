package version

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name     string
		ver      string
		com      string
		bt       string
		expected VersionInfo
	}{
		{
			name: "all values set",
			ver:  "v1.2.3",
			com:  "abc123",
			bt:   "2026-01-01T00:00:00Z",
			expected: VersionInfo{
				Version:      "v1.2.3",
				Commit:       "abc123",
				BuildTime:    "2026-01-01T00:00:00Z",
				ToolsVersion: DefaultToolsVersion,
			},
		},
		{
			name: "defaults when unset",
			expected: VersionInfo{
				Version:      DefaultVersion,
				Commit:       DefaultCommit,
				BuildTime:    DefaultBuildTime,
				ToolsVersion: DefaultToolsVersion,
			},
		},
		{
			name: "partial values",
			ver:  "v0.1.0",
			expected: VersionInfo{
				Version:      "v0.1.0",
				Commit:       DefaultCommit,
				BuildTime:    DefaultBuildTime,
				ToolsVersion: DefaultToolsVersion,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetBuildVars(tt.ver, tt.com, tt.bt)
			t.Cleanup(ResetBuildVars)

			assert.Equal(t, &tt.expected, GetVersion())
		})
	}
}

func TestWrite(t *testing.T) {
	SetBuildVars("v1.0.0", "deadbeef", "2026-03-04T05:06:07Z")
	t.Cleanup(ResetBuildVars)

	t.Run("short", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, GetVersion().Write(&buf, true))
		assert.Equal(t, "v1.0.0\n", buf.String())
	})

	t.Run("full", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, GetVersion().Write(&buf, false))
		assert.Equal(t, "packagedsl\n"+
			"Version: v1.0.0\n"+
			"Commit: deadbeef\n"+
			"Built: 2026-03-04T05:06:07Z\n"+
			"Swift tools: 6.0\n", buf.String())
	})
}

type errorWriter struct{}

func (errorWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestWrite_PropagatesWriterError(t *testing.T) {
	assert.Error(t, GetVersion().Write(errorWriter{}, true))
	assert.Error(t, GetVersion().Write(errorWriter{}, false))
}

func TestIsDevelopment(t *testing.T) {
	ResetBuildVars()
	assert.True(t, GetVersion().IsDevelopment())

	SetBuildVars("v2.0.0", "", "")
	t.Cleanup(ResetBuildVars)
	assert.False(t, GetVersion().IsDevelopment())
}

func TestBuiltAt(t *testing.T) {
	tests := []struct {
		name      string
		buildTime string
		expected  time.Time
	}{
		{"rfc3339", "2026-01-02T03:04:05Z", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"date and time", "2026-01-02 03:04:05", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"date only", "2026-01-02", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"unknown", DefaultBuildTime, time.Time{}},
		{"garbage", "yesterday", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vi := &VersionInfo{BuildTime: tt.buildTime}
			assert.True(t, tt.expected.Equal(vi.BuiltAt()), "got %v", vi.BuiltAt())
		})
	}
}
