// Package sentinel provides standardized error definitions for the statkit library.
// This package centralizes all error types used across the statkit components,
// ensuring consistent error handling and messaging throughout the library.
//
// The statistics functions themselves never return errors: an undefined
// statistic is a normal result signaled through their ok flag. The errors
// defined here cover the registry and collector surface only:
// - Looking up a statistic name that was never registered
// - Registering a statistic under an empty name or with a nil function
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrStatNotFound is returned when a statistic name is not present in the registry.
	ErrStatNotFound = ewrap.New("statistic not found")

	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrNilStatFn is returned when a nil function is registered as a statistic.
	ErrNilStatFn = ewrap.New("statistic function cannot be nil")
)
