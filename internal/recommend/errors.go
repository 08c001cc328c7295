// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/filmgourmet/internal/recommend/algorithms"
)

var (
	// ErrNotReady is returned by every query issued before a successful load.
	ErrNotReady = errors.New("recommend: network not read")

	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("recommend: label not found")

	// ErrEmptyTeleport is returned when Recommend receives no labels.
	ErrEmptyTeleport = fmt.Errorf("recommend: no labels given: %w", algorithms.ErrEmptyTeleport)

	// ErrTooManyLabels is returned when the distinct label count exceeds MaxLabels.
	ErrTooManyLabels = errors.New("recommend: too many labels")

	// ErrInvalidK is returned for k < 0 or k > MaxK.
	ErrInvalidK = errors.New("recommend: k out of range")

	// ErrInsufficientItems is returned by RandomSample when k exceeds the item count.
	ErrInsufficientItems = errors.New("recommend: not enough item labels")

	// ErrInvalidSampleSize is returned by RandomSample for negative k.
	ErrInvalidSampleSize = errors.New("recommend: sample size must not be negative")
)

// NotFoundError reports a label absent from the loaded graph.
type NotFoundError struct {
	Label string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("recommend: label %q not found", e.Label)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
