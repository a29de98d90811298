package flareness

import "math"

// Classify maps a signature to its flare class and index.
//
//   - empty                    -> None, 0
//   - every value +Inf         -> PureIsland, +Inf
//   - finite and +Inf values   -> FlareAndIsland, max finite value
//   - every value finite       -> PureFlare, max value
//
// Classify is pure and never returns NaN.
func Classify(sig Signature) (Type, float64) {
	if len(sig) == 0 {
		return None, 0
	}

	maxFinite := math.Inf(-1)
	islands := 0
	for _, v := range sig {
		if math.IsInf(v, 1) {
			islands++
			continue
		}
		if v > maxFinite {
			maxFinite = v
		}
	}

	switch islands {
	case len(sig):
		return PureIsland, math.Inf(1)
	case 0:
		return PureFlare, maxFinite
	default:
		return FlareAndIsland, maxFinite
	}
}

// ClassifyResult is Classify with the not-found case: a nil result or one
// with Found == false yields (NotFound, 0).
func ClassifyResult(r *Result) (Type, float64) {
	if r == nil || !r.Found {
		return NotFound, 0
	}

	return Classify(r.Signature)
}
