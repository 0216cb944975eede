// Package errors defines sentinel errors used across multiple packages.
package errors

import "errors"

// ErrInvalidTheme is returned when a theme name is not one of auto, dark or light.
var ErrInvalidTheme = errors.New("invalid theme")

// ErrInvalidWidth is returned when a navigation panel width is out of range.
var ErrInvalidWidth = errors.New("invalid panel width")

// ErrInvalidCadence is returned when the reasoning ticker cadence is not positive.
var ErrInvalidCadence = errors.New("invalid cadence")

// ErrInvalidLogLevel is returned when a log level name is not recognised.
var ErrInvalidLogLevel = errors.New("invalid log level")

// ErrInvalidLogFormat is returned when a log format is neither text nor json.
var ErrInvalidLogFormat = errors.New("invalid log format")

// ErrEmptyPlan is returned when a configured reasoning plan has no steps.
var ErrEmptyPlan = errors.New("plan has no steps")
