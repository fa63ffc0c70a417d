package outbound

import (
	"context"
	"fmt"

	"packagedsl/internal/domain/valueobject"
)

// FragmentExtractor turns the source of one fragment into parsing results.
// Implementations must be safe for concurrent use.
type FragmentExtractor interface {
	Extract(ctx context.Context, content []byte) (valueobject.Extraction, error)
}

// SyntaxIssue is a problem reported by a SyntaxChecker.
type SyntaxIssue struct {
	Line    int
	Column  int
	Message string
}

func (i SyntaxIssue) String() string {
	return fmt.Sprintf("%d:%d: %s", i.Line, i.Column, i.Message)
}

// SyntaxChecker validates fragment source against the full language grammar.
type SyntaxChecker interface {
	Check(ctx context.Context, content []byte) ([]SyntaxIssue, error)
}

// SourceRenderer renders domain records back to fragment source.
type SourceRenderer interface {
	RenderIndex(index valueobject.Index) string
	RenderComponent(component valueobject.Component) string
	RenderManifest(version valueobject.SwiftVersion, fragments []string, support string) string
}
