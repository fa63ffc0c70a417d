package entity

import (
	"fmt"

	domainerrors "packagedsl/internal/domain/errors/domain"
	"packagedsl/internal/domain/valueobject"
)

// Aggregate merges the extraction results of every fragment, in discovery order, into a
// Configuration. Exactly one non-empty index may exist; an empty index only counts when
// no other index is found. Every component is classified, and the first one no entity
// kind accepts aborts the aggregation.
func Aggregate(results []valueobject.ParsingResult) (*Configuration, error) {
	var (
		index    *valueobject.Index
		indexes  int
		entities []Entity
	)

	for _, result := range results {
		switch r := result.(type) {
		case valueobject.Index:
			if r.IsEmpty() {
				if index == nil {
					empty := r
					index = &empty
				}
				continue
			}
			indexes++
			if indexes > 1 {
				return nil, domainerrors.ErrMultipleIndexes
			}
			found := r
			index = &found
		case valueobject.Component:
			e, err := Classify(r)
			if err != nil {
				return nil, err
			}
			entities = append(entities, e)
		default:
			return nil, fmt.Errorf("%w: unexpected parsing result %T", domainerrors.ErrInvalidInput, result)
		}
	}

	if index == nil {
		return nil, domainerrors.ErrMissingIndex
	}
	return NewConfiguration(*index, entities...), nil
}
