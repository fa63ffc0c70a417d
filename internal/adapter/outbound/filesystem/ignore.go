package filesystem

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// IgnoreFile lists fragments the store skips, one gitignore-style pattern per line.
const IgnoreFile = ".packagedslignore"

type ignorePattern struct {
	negate bool
	regex  *regexp.Regexp
}

// ignoreRules is the compiled content of an ignore file. The last matching pattern wins.
type ignoreRules []ignorePattern

// loadIgnoreRules reads the ignore file at root. A missing file yields no rules.
func loadIgnoreRules(root string) (ignoreRules, error) {
	content, err := os.ReadFile(filepath.Join(root, IgnoreFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", IgnoreFile, err)
	}
	return parseIgnoreRules(content)
}

func parseIgnoreRules(content []byte) (ignoreRules, error) {
	var rules ignoreRules
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var p ignorePattern
		if strings.HasPrefix(line, "!") {
			p.negate = true
			line = line[1:]
		}
		regex, err := regexp.Compile(ignoreRegex(line))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid pattern %q: %w", IgnoreFile, lineNumber, line, err)
		}
		p.regex = regex
		rules = append(rules, p)
	}
	return rules, scanner.Err()
}

// ignoreRegex translates a pattern. A leading slash anchors it at the root, otherwise it
// may match at any depth; a match on a directory covers everything below it.
func ignoreRegex(pattern string) string {
	rooted := strings.HasPrefix(pattern, "/")
	pattern = strings.TrimSuffix(strings.TrimPrefix(pattern, "/"), "/")

	var b strings.Builder
	if rooted {
		b.WriteString("^")
	} else {
		b.WriteString("(^|/)")
	}
	for i := 0; i < len(pattern); i++ {
		switch {
		case strings.HasPrefix(pattern[i:], "**/"):
			b.WriteString(`([^/]*/)*`)
			i += 2
		case strings.HasPrefix(pattern[i:], "**"):
			b.WriteString(`.*`)
			i++
		case pattern[i] == '*':
			b.WriteString(`[^/]*`)
		case pattern[i] == '?':
			b.WriteString(`[^/]`)
		case pattern[i] == '[':
			if end := strings.IndexByte(pattern[i:], ']'); end > 1 {
				class := pattern[i : i+end+1]
				if strings.HasPrefix(class, "[!") {
					class = "[^" + class[2:]
				}
				b.WriteString(class)
				i += end
				continue
			}
			b.WriteString(`\[`)
		default:
			b.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
		}
	}
	b.WriteString("($|/)")
	return b.String()
}

// Ignored reports whether the slash-separated path is excluded.
func (r ignoreRules) Ignored(path string) bool {
	ignored := false
	for _, p := range r {
		if p.regex.MatchString(path) {
			ignored = !p.negate
		}
	}
	return ignored
}
