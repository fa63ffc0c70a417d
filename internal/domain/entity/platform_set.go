package entity

import (
	"fmt"
	"strings"
	"unicode"

	domainerrors "packagedsl/internal/domain/errors/domain"
	"packagedsl/internal/domain/valueobject"
)

const (
	platformSetMarker    = "PlatformSet"
	platformSetProperty  = "body"
	supportedPlatformsTy = "any SupportedPlatforms"
)

// PlatformSet is a named set of minimum platform versions.
type PlatformSet struct {
	Name      string
	Platforms []valueobject.SupportedPlatform
}

// NewPlatformSet creates a PlatformSet with set semantics over its platforms.
func NewPlatformSet(name string, platforms ...valueobject.SupportedPlatform) PlatformSet {
	return PlatformSet{Name: name, Platforms: valueobject.SupportedPlatformSet(platforms...)}
}

// InvalidPlatformError is returned when a platform set lists a fragment that is not a
// supported platform.
type InvalidPlatformError struct {
	PlatformSet string
	Fragment    string
}

func (e *InvalidPlatformError) Error() string {
	return fmt.Sprintf("platform set %s: invalid supported platform %q", e.PlatformSet, e.Fragment)
}

func (e *InvalidPlatformError) Unwrap() error {
	return domainerrors.ErrInvalidPlatform
}

// matchPlatformSet accepts a PlatformSet with a non-empty body. Every body fragment must
// parse; the first one that does not rejects the whole declaration.
func matchPlatformSet(c valueobject.Component) ([]valueobject.SupportedPlatform, bool, error) {
	if !c.Inherits(platformSetMarker) {
		return nil, false, nil
	}
	body, ok := c.Property(platformSetProperty)
	if !ok || trimPunctuation(body.Type) != supportedPlatformsTy || len(body.Code) == 0 {
		return nil, false, nil
	}
	platforms := make([]valueobject.SupportedPlatform, 0, len(body.Code))
	for _, code := range body.Code {
		p, err := valueobject.ParseSupportedPlatform(code)
		if err != nil {
			return nil, false, &InvalidPlatformError{PlatformSet: c.Name, Fragment: code}
		}
		platforms = append(platforms, p)
	}
	return platforms, true, nil
}

func newPlatformSet(c valueobject.Component, platforms []valueobject.SupportedPlatform) PlatformSet {
	return NewPlatformSet(c.Name, platforms...)
}

func (s PlatformSet) Kind() Kind { return KindPlatformSet }
func (s PlatformSet) Identifier() string { return s.Name }

func (s PlatformSet) Component() valueobject.Component {
	code := make([]string, len(s.Platforms))
	for i, p := range s.Platforms {
		code[i] = p.Code()
	}
	return valueobject.Component{
		Name:           s.Name,
		InheritedTypes: []string{platformSetMarker},
		Properties: map[string]valueobject.Property{
			platformSetProperty: {Name: platformSetProperty, Type: supportedPlatformsTy, Code: code},
		},
	}
}

func trimPunctuation(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
}
