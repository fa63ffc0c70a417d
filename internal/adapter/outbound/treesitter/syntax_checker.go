package treesitter

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"packagedsl/internal/port/outbound"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/swift"
)

const (
	defaultMaxIssues = 10
	maxSnippetLength = 40
)

// SyntaxChecker reports error and missing nodes found by the tree-sitter Swift grammar.
// It accepts the whole language, so it catches mistakes outside the subset that the
// extraction parser understands.
type SyntaxChecker struct {
	maxIssues int
}

// NewSyntaxChecker creates a checker that reports at most maxIssues problems per fragment.
// A non-positive value selects the default.
func NewSyntaxChecker(maxIssues int) *SyntaxChecker {
	if maxIssues <= 0 {
		maxIssues = defaultMaxIssues
	}
	return &SyntaxChecker{maxIssues: maxIssues}
}

// Check parses content and returns the syntax problems in source order.
func (c *SyntaxChecker) Check(ctx context.Context, content []byte) ([]outbound.SyntaxIssue, error) {
	// A parser is not safe for concurrent use, so every call gets its own.
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(swift.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || !root.HasError() {
		return nil, nil
	}

	var issues []outbound.SyntaxIssue
	c.collect(root, content, &issues)
	if len(issues) == 0 {
		issues = append(issues, outbound.SyntaxIssue{Line: 1, Column: 1, Message: "source contains syntax errors"})
	}
	return issues, nil
}

func (c *SyntaxChecker) collect(node *sitter.Node, content []byte, issues *[]outbound.SyntaxIssue) {
	if len(*issues) >= c.maxIssues {
		return
	}

	switch {
	case node.IsMissing():
		*issues = append(*issues, issueAt(node, fmt.Sprintf("missing %s", node.Type())))
		return
	case node.IsError():
		*issues = append(*issues, issueAt(node, fmt.Sprintf("unexpected %q", snippet(node.Content(content)))))
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child != nil && (child.HasError() || child.IsMissing()) {
			c.collect(child, content, issues)
		}
	}
}

func issueAt(node *sitter.Node, message string) outbound.SyntaxIssue {
	start := node.StartPoint()
	return outbound.SyntaxIssue{
		Line:    int(start.Row) + 1,
		Column:  int(start.Column) + 1,
		Message: message,
	}
}

// snippet collapses whitespace and keeps at most maxSnippetLength runes.
func snippet(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= maxSnippetLength {
		return text
	}
	return string([]rune(text)[:maxSnippetLength]) + "..."
}
