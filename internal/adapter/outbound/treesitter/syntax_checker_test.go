package treesitter

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntaxChecker_ValidFragment(t *testing.T) {
	src := `import PackageDescription

struct Core: Product, Target {
    var name: String {
        "Core"
    }
}
`
	issues, err := NewSyntaxChecker(0).Check(context.Background(), []byte(src))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestSyntaxChecker_ReportsErrors(t *testing.T) {
	src := "let package = Package(\n  entries: {\n    App(\n"

	issues, err := NewSyntaxChecker(0).Check(context.Background(), []byte(src))
	require.NoError(t, err)
	require.NotEmpty(t, issues)
	for _, issue := range issues {
		assert.GreaterOrEqual(t, issue.Line, 1)
		assert.GreaterOrEqual(t, issue.Column, 1)
		assert.NotEmpty(t, issue.Message)
	}
}

func TestSyntaxChecker_LimitsIssues(t *testing.T) {
	src := strings.Repeat("let = = ) }\n", 20)

	issues, err := NewSyntaxChecker(2).Check(context.Background(), []byte(src))
	require.NoError(t, err)
	assert.NotEmpty(t, issues)
	assert.LessOrEqual(t, len(issues), 2)
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "collapses whitespace", in: "  a\n\tb ", want: "a b"},
		{name: "ascii truncated", in: strings.Repeat("x", 50), want: strings.Repeat("x", maxSnippetLength) + "..."},
		{name: "multi-byte at limit kept", in: strings.Repeat("é", maxSnippetLength), want: strings.Repeat("é", maxSnippetLength)},
		{
			name: "multi-byte truncated on rune boundary",
			in:   "a" + strings.Repeat("日本", maxSnippetLength),
			want: "a" + strings.Repeat("日本", (maxSnippetLength-2)/2) + "日...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := snippet(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
