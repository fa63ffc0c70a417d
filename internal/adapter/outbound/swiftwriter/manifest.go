package swiftwriter

import (
	"strings"

	"packagedsl/internal/domain/valueobject"
)

// AssembleManifest joins fragments into one Package.swift. Import lines are hoisted below
// the tools version header and de-duplicated, any tools version comments inside the
// fragments are dropped, and the support block, if any, comes last.
func AssembleManifest(version valueobject.SwiftVersion, fragments []string, support string) string {
	var (
		imports []string
		seen    = make(map[string]bool)
		bodies  []string
	)

	sources := append(append([]string(nil), fragments...), support)
	for _, source := range sources {
		var lines []string
		for _, line := range strings.Split(source, "\n") {
			trimmed := strings.TrimSpace(line)
			switch {
			case isImport(trimmed):
				if !seen[trimmed] {
					seen[trimmed] = true
					imports = append(imports, trimmed)
				}
				continue
			case strings.HasPrefix(trimmed, "// swift-tools-version"):
				continue
			}
			lines = append(lines, strings.TrimRight(line, " \t\r"))
		}
		if body := strings.Trim(strings.Join(lines, "\n"), "\n"); body != "" {
			bodies = append(bodies, body)
		}
	}

	var b strings.Builder
	b.WriteString(version.Header() + "\n\n")
	for _, imp := range imports {
		b.WriteString(imp + "\n")
	}
	if len(imports) > 0 && len(bodies) > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(strings.Join(bodies, "\n\n"))
	b.WriteByte('\n')
	return b.String()
}

func isImport(line string) bool {
	for _, prefix := range []string{"import ", "@testable import ", "@_exported import "} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
