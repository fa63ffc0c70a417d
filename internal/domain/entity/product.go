package entity

import "packagedsl/internal/domain/valueobject"

const productMarker = "Product"

// Product is an entry point the package vends.
type Product struct {
	Name         string
	DisplayName  string
	Dependencies []string
	ProductType  valueobject.ProductType
}

func matchProduct(c valueobject.Component) (struct{}, bool) {
	return struct{}{}, c.Inherits(productMarker)
}

func newProduct(c valueobject.Component, _ struct{}) Product {
	product := Product{
		Name:         c.Name,
		Dependencies: referencesFrom(c, "dependencies"),
	}
	if p, ok := c.Property("name"); ok {
		product.DisplayName, _ = p.FirstCode()
	}
	if p, ok := c.Property("productType"); ok {
		for _, code := range p.Code {
			if t, ok := valueobject.ParseProductType(code); ok {
				product.ProductType = t
				break
			}
		}
	}
	return product
}

func (p Product) Kind() Kind { return KindProduct }
func (p Product) Identifier() string { return p.Name }

func (p Product) Component() valueobject.Component {
	props := make(map[string]valueobject.Property)
	if p.DisplayName != "" {
		putProperty(props, "name", "String", p.DisplayName)
	}
	putProperty(props, "dependencies", "any Dependencies", asFunctionCalls(p.Dependencies)...)
	if p.ProductType != "" {
		putProperty(props, "productType", "ProductType", p.ProductType.Code())
	}
	return valueobject.Component{
		Name:           p.Name,
		InheritedTypes: []string{productMarker, targetMarker},
		Properties:     props,
	}
}
