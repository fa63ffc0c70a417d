// Package version reports build information for the packagedsl binary.
//
// The variables are injected at build time:
//
//	-ldflags "-X packagedsl/internal/version.version=v1.0.0 -X packagedsl/internal/version.commit=abc123 -X packagedsl/internal/version.buildTime=2026-01-01T00:00:00Z"
package version

import (
	"fmt"
	"io"
	"strings"
	"time"
)

//nolint:gochecknoglobals // Required for build-time injection via ldflags.
var (
	version   string
	commit    string
	buildTime string
)

// ApplicationName is the name of the application displayed in version output.
const ApplicationName = "packagedsl"

// DefaultToolsVersion is the swift-tools-version written by assemble when none is given.
const DefaultToolsVersion = "6.0"

// Default values used when version information is not available.
const (
	DefaultVersion   = "dev"
	DefaultCommit    = "unknown"
	DefaultBuildTime = "unknown"
)

// VersionInfo holds the build information of the running binary.
type VersionInfo struct {
	Version      string
	Commit       string
	BuildTime    string
	ToolsVersion string
}

// GetVersion returns the current version information.
func GetVersion() *VersionInfo {
	return &VersionInfo{
		Version:      orDefault(version, DefaultVersion),
		Commit:       orDefault(commit, DefaultCommit),
		BuildTime:    orDefault(buildTime, DefaultBuildTime),
		ToolsVersion: DefaultToolsVersion,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// FormatShort returns the version number alone.
func (vi *VersionInfo) FormatShort() string {
	return vi.Version
}

// FormatFull returns the application name followed by one "Label: value" line per field.
func (vi *VersionInfo) FormatFull() string {
	var b strings.Builder
	b.WriteString(ApplicationName + "\n")
	for _, field := range [][2]string{
		{"Version", vi.Version},
		{"Commit", vi.Commit},
		{"Built", vi.BuildTime},
		{"Swift tools", vi.ToolsVersion},
	} {
		fmt.Fprintf(&b, "%s: %s\n", field[0], field[1])
	}
	return b.String()
}

// Write formats the version based on the short flag and writes it to w.
func (vi *VersionInfo) Write(w io.Writer, short bool) error {
	if short {
		_, err := fmt.Fprintln(w, vi.FormatShort())
		return err
	}
	_, err := io.WriteString(w, vi.FormatFull())
	return err
}

// IsDevelopment reports whether the binary was built without version information.
func (vi *VersionInfo) IsDevelopment() bool {
	return vi.Version == DefaultVersion
}

// BuiltAt parses the build time. It returns the zero time when the value is missing or malformed.
func (vi *VersionInfo) BuiltAt() time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, vi.BuildTime); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SetBuildVars overrides the build-time variables. Tests use it in place of ldflags.
func SetBuildVars(ver, com, bt string) {
	version = ver
	commit = com
	buildTime = bt
}

// ResetBuildVars clears the build-time variables.
func ResetBuildVars() {
	SetBuildVars("", "", "")
}
