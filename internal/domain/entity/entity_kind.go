package entity

import (
	"strings"
	"unicode"

	"packagedsl/internal/domain/valueobject"
)

// Kind identifies one of the entity kinds a component can be classified as.
type Kind int

const (
	KindProduct Kind = iota
	KindDependency
	KindTarget
	KindTestTarget
	KindPlatformSet
)

var kindNames = map[Kind]string{
	KindProduct:     "product",
	KindDependency:  "dependency",
	KindTarget:      "target",
	KindTestTarget:  "testTarget",
	KindPlatformSet: "platformSet",
}

var kindDirectories = map[Kind]string{
	KindProduct:     "Products",
	KindDependency:  "Dependencies",
	KindTarget:      "Targets",
	KindTestTarget:  "Tests",
	KindPlatformSet: "Platforms",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Directory is the folder, relative to the package directory, holding fragments of this kind.
func (k Kind) Directory() string {
	return kindDirectories[k]
}

// Entity is a typed view over a Component.
type Entity interface {
	Kind() Kind
	Identifier() string
	// Component serializes the entity back into a raw record.
	Component() valueobject.Component
}

// sanitizeReference keeps only letters and digits, turning "BushelCore()" into "BushelCore".
func sanitizeReference(code string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, code)
}

// referencesFrom sanitizes each fragment of a property, skipping fragments that sanitize to nothing.
func referencesFrom(c valueobject.Component, property string) []string {
	p, ok := c.Property(property)
	if !ok {
		return nil
	}
	var refs []string
	for _, code := range p.Code {
		if ref := sanitizeReference(code); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

func asFunctionCalls(names []string) []string {
	calls := make([]string, len(names))
	for i, name := range names {
		calls[i] = name + "()"
	}
	return calls
}

// putProperty adds a property to the map unless it has no code.
func putProperty(props map[string]valueobject.Property, name, typ string, code ...string) {
	if len(code) == 0 {
		return
	}
	props[name] = valueobject.Property{Name: name, Type: typ, Code: code}
}
