package valueobject

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const supportedPlatformPrefix = "SupportedPlatform."

// SupportedPlatform is one operating system and its minimum major version.
type SupportedPlatform struct {
	OS      string
	Version int
}

// ParseSupportedPlatform reads fragments such as "SupportedPlatform.macOS(.v14)" or ".iOS(.v17)".
func ParseSupportedPlatform(code string) (SupportedPlatform, error) {
	s := strings.TrimSpace(code)
	s = strings.TrimPrefix(s, supportedPlatformPrefix)
	s = strings.TrimPrefix(s, ".")

	open := strings.Index(s, "(")
	closing := strings.LastIndex(s, ")")
	if open <= 0 || closing < open {
		return SupportedPlatform{}, fmt.Errorf("invalid supported platform %q", code)
	}

	os := strings.TrimSpace(s[:open])
	arg := strings.TrimSpace(s[open+1 : closing])
	arg = strings.TrimPrefix(arg, ".v")
	version, err := strconv.Atoi(arg)
	if err != nil || os == "" {
		return SupportedPlatform{}, fmt.Errorf("invalid supported platform %q", code)
	}
	return SupportedPlatform{OS: os, Version: version}, nil
}

// Key is the identity used for set membership.
func (p SupportedPlatform) Key() string {
	return strings.ToLower(strings.TrimSpace(p.OS))
}

// Code renders the platform as a source fragment.
func (p SupportedPlatform) Code() string {
	return fmt.Sprintf("%s%s(.v%d)", supportedPlatformPrefix, p.OS, p.Version)
}

// SupportedPlatformSet de-duplicates platforms by OS and version, keeping the
// first spelling seen, and orders the result by OS then version.
func SupportedPlatformSet(platforms ...SupportedPlatform) []SupportedPlatform {
	type key struct {
		os      string
		version int
	}
	seen := make(map[key]bool, len(platforms))
	var set []SupportedPlatform
	for _, p := range platforms {
		k := key{p.Key(), p.Version}
		if seen[k] {
			continue
		}
		seen[k] = true
		set = append(set, p)
	}
	slices.SortStableFunc(set, func(a, b SupportedPlatform) int {
		if c := cmp.Compare(a.Key(), b.Key()); c != 0 {
			return c
		}
		return cmp.Compare(a.Version, b.Version)
	})
	return set
}
