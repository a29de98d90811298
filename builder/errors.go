// SPDX-License-Identifier: MIT
// Package: flarelath/builder
//
// errors.go — sentinel errors. Callers branch with errors.Is; constructors
// add context as "<Method>: <details>: %w".

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a generic construction failure (nil graph/constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownVertex indicates a membership constructor referenced a vertex that does not exist.
var ErrUnknownVertex = errors.New("builder: unknown vertex")

// ErrEmptyEntity indicates an empty entity identifier.
var ErrEmptyEntity = errors.New("builder: entity is empty")
