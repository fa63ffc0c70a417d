package extraction

import (
	"context"
	"fmt"

	"packagedsl/internal/adapter/outbound/swiftsyntax"
	"packagedsl/internal/domain/valueobject"
)

// Extract runs the index and structure strategies over a parsed fragment.
func Extract(file *swiftsyntax.Node) (valueobject.Extraction, error) {
	var warnings []valueobject.Warning
	dispatcher := NewDispatcher(
		NewIndexStrategy(),
		NewStructureStrategy(func(w valueobject.Warning) { warnings = append(warnings, w) }),
	)

	results, err := dispatcher.Run(file)
	if err != nil {
		return valueobject.Extraction{}, err
	}
	return valueobject.Extraction{Results: results, Warnings: warnings}, nil
}

// Extractor parses fragment source and extracts its parsing results.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses content and extracts it. Each call owns its strategies, so an Extractor
// may be shared between goroutines.
func (e *Extractor) Extract(ctx context.Context, content []byte) (valueobject.Extraction, error) {
	if err := ctx.Err(); err != nil {
		return valueobject.Extraction{}, err
	}

	file, err := swiftsyntax.Parse(content)
	if err != nil {
		return valueobject.Extraction{}, fmt.Errorf("failed to parse fragment: %w", err)
	}
	return Extract(file)
}
