package entity

import (
	"slices"

	"packagedsl/internal/domain/valueobject"
)

// Configuration is the aggregate of one package directory: the index plus every classified entity.
// It is never mutated; the With methods derive a new Configuration.
type Configuration struct {
	index        valueobject.Index
	products     []Product
	dependencies []Dependency
	targets      []Target
	testTargets  []TestTarget
	platformSets []PlatformSet
}

// NewConfiguration creates a Configuration from an index and a list of entities, grouped by kind
// in the order given.
func NewConfiguration(index valueobject.Index, entities ...Entity) *Configuration {
	c := &Configuration{index: index}
	for _, e := range entities {
		c.add(e)
	}
	return c
}

func (c *Configuration) add(e Entity) {
	switch v := e.(type) {
	case Product:
		c.products = append(c.products, v)
	case Dependency:
		c.dependencies = append(c.dependencies, v)
	case Target:
		c.targets = append(c.targets, v)
	case TestTarget:
		c.testTargets = append(c.testTargets, v)
	case PlatformSet:
		c.platformSets = append(c.platformSets, v)
	}
}

func (c *Configuration) Index() valueobject.Index { return c.index }
func (c *Configuration) Products() []Product { return slices.Clone(c.products) }
func (c *Configuration) Dependencies() []Dependency { return slices.Clone(c.dependencies) }
func (c *Configuration) Targets() []Target { return slices.Clone(c.targets) }
func (c *Configuration) TestTargets() []TestTarget { return slices.Clone(c.testTargets) }
func (c *Configuration) PlatformSets() []PlatformSet { return slices.Clone(c.platformSets) }

// Entities returns every entity in classification order, then declaration order.
func (c *Configuration) Entities() []Entity {
	var entities []Entity
	for _, p := range c.products {
		entities = append(entities, p)
	}
	for _, d := range c.dependencies {
		entities = append(entities, d)
	}
	for _, t := range c.targets {
		entities = append(entities, t)
	}
	for _, t := range c.testTargets {
		entities = append(entities, t)
	}
	for _, s := range c.platformSets {
		entities = append(entities, s)
	}
	return entities
}

func (c *Configuration) clone() *Configuration {
	clone := *c
	return &clone
}

// WithIndex derives a Configuration with a replaced index.
func (c *Configuration) WithIndex(index valueobject.Index) *Configuration {
	next := c.clone()
	next.index = index
	return next
}

// WithProducts derives a Configuration whose products are transform applied to a copy of the current list.
func (c *Configuration) WithProducts(transform func([]Product) []Product) *Configuration {
	next := c.clone()
	next.products = transform(slices.Clone(c.products))
	return next
}

// WithDependencies derives a Configuration with transformed dependencies.
func (c *Configuration) WithDependencies(transform func([]Dependency) []Dependency) *Configuration {
	next := c.clone()
	next.dependencies = transform(slices.Clone(c.dependencies))
	return next
}

// WithTargets derives a Configuration with transformed targets.
func (c *Configuration) WithTargets(transform func([]Target) []Target) *Configuration {
	next := c.clone()
	next.targets = transform(slices.Clone(c.targets))
	return next
}

// WithTestTargets derives a Configuration with transformed test targets.
func (c *Configuration) WithTestTargets(transform func([]TestTarget) []TestTarget) *Configuration {
	next := c.clone()
	next.testTargets = transform(slices.Clone(c.testTargets))
	return next
}

// WithPlatformSets derives a Configuration with transformed platform sets.
func (c *Configuration) WithPlatformSets(transform func([]PlatformSet) []PlatformSet) *Configuration {
	next := c.clone()
	next.platformSets = transform(slices.Clone(c.platformSets))
	return next
}
