package valueobject

import (
	"fmt"
	"strconv"
	"strings"

	domainerrors "packagedsl/internal/domain/errors/domain"
)

const toolsVersionPrefix = "// swift-tools-version:"

// SwiftVersion is the tools version written at the top of a package manifest.
type SwiftVersion struct {
	Major int
	Minor int
	Patch int
}

// ParseSwiftVersion parses "6", "5.9" or "5.10.1".
func ParseSwiftVersion(s string) (SwiftVersion, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) == 0 || len(parts) > 3 {
		return SwiftVersion{}, fmt.Errorf("%w: %q", domainerrors.ErrInvalidSwiftVersion, s)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return SwiftVersion{}, fmt.Errorf("%w: %q", domainerrors.ErrInvalidSwiftVersion, s)
		}
		nums[i] = n
	}
	return SwiftVersion{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// ParseToolsVersionHeader reads the version from a "// swift-tools-version: X.Y" line.
func ParseToolsVersionHeader(line string) (SwiftVersion, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, toolsVersionPrefix) {
		return SwiftVersion{}, fmt.Errorf("%w: missing tools version header", domainerrors.ErrInvalidSwiftVersion)
	}
	return ParseSwiftVersion(strings.TrimPrefix(line, toolsVersionPrefix))
}

func (v SwiftVersion) String() string {
	if v.Patch != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Header renders the manifest's tools version comment.
func (v SwiftVersion) Header() string {
	return toolsVersionPrefix + " " + v.String()
}
