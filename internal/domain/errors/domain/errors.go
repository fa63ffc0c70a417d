// Package domain provides domain-specific error definitions and utilities.
package domain

import "errors"

// Aggregation errors.
var (
	ErrMissingIndex    = errors.New("package index not found")
	ErrMultipleIndexes = errors.New("multiple package indexes found")
)

// Classification and extraction errors.
var (
	ErrUnsupportedComponent = errors.New("unsupported component")
	ErrInvalidPlatform      = errors.New("invalid supported platform")
	ErrDuplicateProperty    = errors.New("duplicate property")
	ErrMissingFields        = errors.New("property is missing required fields")
	ErrSyntax               = errors.New("syntax error")
)

// Validation errors.
var (
	ErrValidationFailure = errors.New("package validation failed")
)

// Storage errors.
var (
	ErrNotADirectory = errors.New("not a directory")
	ErrInvalidPath   = errors.New("invalid fragment path")
	ErrPackageExists = errors.New("package already contains fragments")
)

// General domain errors.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidSwiftVersion = errors.New("invalid swift version")
)
