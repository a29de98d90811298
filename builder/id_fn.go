// SPDX-License-Identifier: MIT
// Package: flarelath/builder
//
// id_fn.go — vertex ID schemes. Every IDFn is a pure function of the index.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its string ID.
type IDFn func(idx int) string

// DefaultIDFn renders indices as decimal strings ("0","1",...).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolNumberIDFn prefixes the decimal index: "n0","n1",... for prefix "n".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// PaddedIDFn renders zero-padded decimals ("00","01",...,"10") so that
// lexicographic order matches numeric order up to 10^width-1.
// Flare detection breaks filtration ties lexicographically, which makes this
// the scheme of choice for fixtures with more than ten vertices.
func PaddedIDFn(width int) IDFn {
	return func(idx int) string {
		return fmt.Sprintf("%0*d", width, idx)
	}
}

// WithSymbNumb is shorthand for WithIDScheme(SymbolNumberIDFn(prefix)).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithPaddedIDs is shorthand for WithIDScheme(PaddedIDFn(width)).
func WithPaddedIDs(width int) BuilderOption {
	if width < 1 {
		panic(fmt.Sprintf("builder: WithPaddedIDs(%d)", width))
	}
	return WithIDScheme(PaddedIDFn(width))
}
