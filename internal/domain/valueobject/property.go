package valueobject

import (
	"fmt"
	"strings"

	domainerrors "packagedsl/internal/domain/errors/domain"
)

// MissingFields is a bitmask of the fields a property declaration failed to provide.
type MissingFields uint8

const (
	MissingName MissingFields = 1 << iota
	MissingType
)

// String lists the missing fields, e.g. "name,type".
func (m MissingFields) String() string {
	var parts []string
	if m&MissingName != 0 {
		parts = append(parts, "name")
	}
	if m&MissingType != 0 {
		parts = append(parts, "type")
	}
	return strings.Join(parts, ",")
}

// MissingFieldsError is returned when a property declaration has no resolvable name or type.
type MissingFieldsError struct {
	Fields MissingFields
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("property is missing %s", e.Fields)
}

func (e *MissingFieldsError) Unwrap() error {
	return domainerrors.ErrMissingFields
}

// Property is a computed property captured from a type declaration.
type Property struct {
	Name string
	Type string
	Code []string
}

// NewProperty creates a Property, reporting which of name and type are absent.
func NewProperty(name, typ string, code []string) (Property, error) {
	var missing MissingFields
	if name == "" {
		missing |= MissingName
	}
	if typ == "" {
		missing |= MissingType
	}
	if missing != 0 {
		return Property{}, &MissingFieldsError{Fields: missing}
	}
	return Property{Name: name, Type: typ, Code: code}, nil
}

// FirstCode returns the first code fragment, if any.
func (p Property) FirstCode() (string, bool) {
	if len(p.Code) == 0 {
		return "", false
	}
	return p.Code[0], true
}
