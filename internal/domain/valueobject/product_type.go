package valueobject

import "strings"

// ProductType is the kind of product a package vends.
type ProductType string

const (
	ProductTypeLibrary    ProductType = "library"
	ProductTypeExecutable ProductType = "executable"
	ProductTypePlugin     ProductType = "plugin"
)

// ParseProductType reads a product type from a fragment such as ".executable".
func ParseProductType(code string) (ProductType, bool) {
	t := ProductType(strings.TrimPrefix(strings.TrimSpace(code), "."))
	switch t {
	case ProductTypeLibrary, ProductTypeExecutable, ProductTypePlugin:
		return t, true
	}
	return "", false
}

// Code renders the product type as an implicit member expression.
func (t ProductType) Code() string {
	return "." + string(t)
}

func (t ProductType) String() string {
	return string(t)
}
