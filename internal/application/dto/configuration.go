package dto

import (
	"packagedsl/internal/domain/entity"
	"packagedsl/internal/domain/valueobject"
)

// ConfigurationResponse is the printable form of an aggregated package configuration.
type ConfigurationResponse struct {
	Index        IndexResponse         `json:"index"                   yaml:"index"`
	Products     []ProductResponse     `json:"products,omitempty"      yaml:"products,omitempty"`
	Dependencies []DependencyResponse  `json:"dependencies,omitempty"  yaml:"dependencies,omitempty"`
	Targets      []TargetResponse      `json:"targets,omitempty"       yaml:"targets,omitempty"`
	TestTargets  []TargetResponse      `json:"test_targets,omitempty"  yaml:"test_targets,omitempty"`
	PlatformSets []PlatformSetResponse `json:"platform_sets,omitempty" yaml:"platform_sets,omitempty"`
	Warnings     []WarningResponse     `json:"warnings,omitempty"      yaml:"warnings,omitempty"`
}

// IndexResponse lists the names the package root declares.
type IndexResponse struct {
	Entries       []string            `json:"entries,omitempty"        yaml:"entries,omitempty"`
	Dependencies  []string            `json:"dependencies,omitempty"   yaml:"dependencies,omitempty"`
	TestTargets   []string            `json:"test_targets,omitempty"   yaml:"test_targets,omitempty"`
	SwiftSettings []string            `json:"swift_settings,omitempty" yaml:"swift_settings,omitempty"`
	Modifiers     map[string][]string `json:"modifiers,omitempty"      yaml:"modifiers,omitempty"`
}

// ProductResponse describes one product.
type ProductResponse struct {
	Name         string   `json:"name"                   yaml:"name"`
	DisplayName  string   `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Type         string   `json:"type,omitempty"         yaml:"type,omitempty"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// DependencyResponse describes one dependency.
type DependencyResponse struct {
	Name        string `json:"name"                  yaml:"name"`
	Kind        string `json:"kind"                  yaml:"kind"`
	Declaration string `json:"declaration,omitempty" yaml:"declaration,omitempty"`
	Package     string `json:"package,omitempty"     yaml:"package,omitempty"`
}

// TargetResponse describes a target or a test target.
type TargetResponse struct {
	Name         string   `json:"name"                   yaml:"name"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// PlatformSetResponse describes a named set of supported platforms.
type PlatformSetResponse struct {
	Name      string   `json:"name"      yaml:"name"`
	Platforms []string `json:"platforms" yaml:"platforms"`
}

// WarningResponse is a non-fatal problem found while extracting a fragment.
type WarningResponse struct {
	Path        string `json:"path,omitempty"        yaml:"path,omitempty"`
	Declaration string `json:"declaration,omitempty" yaml:"declaration,omitempty"`
	Message     string `json:"message"               yaml:"message"`
}

// MissingSourceResponse is one unresolved reference reported by validation.
type MissingSourceResponse struct {
	Source string `json:"source" yaml:"source"`
	Kind   string `json:"kind"   yaml:"kind"`
	Name   string `json:"name"   yaml:"name"`
}

// NewConfigurationResponse converts a configuration and its extraction warnings.
func NewConfigurationResponse(cfg *entity.Configuration, warnings []valueobject.Warning) ConfigurationResponse {
	resp := ConfigurationResponse{Index: newIndexResponse(cfg.Index())}

	for _, p := range cfg.Products() {
		resp.Products = append(resp.Products, ProductResponse{
			Name:         p.Name,
			DisplayName:  p.DisplayName,
			Type:         p.ProductType.String(),
			Dependencies: p.Dependencies,
		})
	}
	for _, d := range cfg.Dependencies() {
		resp.Dependencies = append(resp.Dependencies, DependencyResponse{
			Name:        d.Name,
			Kind:        d.Capabilities.String(),
			Declaration: d.Declaration,
			Package:     d.Package,
		})
	}
	for _, t := range cfg.Targets() {
		resp.Targets = append(resp.Targets, TargetResponse{Name: t.Name, Dependencies: t.Dependencies})
	}
	for _, t := range cfg.TestTargets() {
		resp.TestTargets = append(resp.TestTargets, TargetResponse{Name: t.Name, Dependencies: t.Dependencies})
	}
	for _, s := range cfg.PlatformSets() {
		platforms := make([]string, len(s.Platforms))
		for i, p := range s.Platforms {
			platforms[i] = p.Code()
		}
		resp.PlatformSets = append(resp.PlatformSets, PlatformSetResponse{Name: s.Name, Platforms: platforms})
	}
	for _, w := range warnings {
		resp.Warnings = append(resp.Warnings, WarningResponse(w))
	}
	return resp
}

func newIndexResponse(index valueobject.Index) IndexResponse {
	resp := IndexResponse{
		Entries:       index.Entries,
		Dependencies:  index.Dependencies,
		TestTargets:   index.TestTargets,
		SwiftSettings: index.SwiftSettings,
	}
	if len(index.Modifiers) == 0 {
		return resp
	}
	resp.Modifiers = make(map[string][]string, len(index.Modifiers))
	for key, fragments := range index.Modifiers {
		resp.Modifiers[string(key)] = fragments
	}
	return resp
}

// NewMissingSourceResponses converts validation findings.
func NewMissingSourceResponses(missing []entity.MissingSource) []MissingSourceResponse {
	resp := make([]MissingSourceResponse, len(missing))
	for i, m := range missing {
		resp[i] = MissingSourceResponse{Source: m.Source.String(), Kind: m.Kind.String(), Name: m.Name}
	}
	return resp
}
