// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingData is matched by errors.Is for any absent dataset resource.
	ErrMissingData = errors.New("missing data")

	// ErrInvalidData is matched by errors.Is when a resource is present but unusable.
	ErrInvalidData = errors.New("invalid data")
)

// Resource names used in errors and metrics.
const (
	ResourceGenre  = "genre"
	ResourceItem   = "item"
	ResourceRating = "rating"
)

// MissingDataError names the dataset resource that could not be found.
type MissingDataError struct {
	Resource string
	Path     string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing data: %s resource not found at %s", e.Resource, e.Path)
}

// Is reports whether target is ErrMissingData.
func (e *MissingDataError) Is(target error) bool {
	return target == ErrMissingData
}

// InvalidDataError reports a resource that exists but yields no usable rows.
type InvalidDataError struct {
	Resource string
	Path     string
	Reason   string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid data: %s resource at %s: %s", e.Resource, e.Path, e.Reason)
}

// Is reports whether target is ErrInvalidData.
func (e *InvalidDataError) Is(target error) bool {
	return target == ErrInvalidData
}
