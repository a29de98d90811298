package dijkstra

import (
	"math"

	"github.com/katalvlaran/flarelath/core"
)

// ValidateWeights checks every edge of g against w before any shortest-path
// work starts. It returns nil when all weights are usable, otherwise a
// *WeightError listing each offending edge in Edge.ID order.
//
// +Inf is accepted and behaves as an impassable edge. EdgeWeigher on a graph
// built without WithWeighted has nothing to read, so every edge is reported
// with ReasonMissing.
//
// Complexity: O(E log E).
func ValidateWeights(g *core.Graph, w Weigher) error {
	if g == nil {
		return ErrNilGraph
	}
	if w == nil {
		w = UnitWeigher{}
	}

	if weightsAbsent(g, w) {
		return missingWeights(g)
	}

	var issues []WeightIssue
	for _, e := range g.Edges() {
		issue, bad := checkEdge(w, e.From, e.To, e)
		if bad {
			issues = append(issues, issue)
			continue
		}
		// Asymmetric weighers may reject only the reverse walk of an undirected edge.
		if !e.Directed && e.From != e.To {
			if issue, bad = checkEdge(w, e.To, e.From, e); bad {
				issues = append(issues, issue)
			}
		}
	}
	if len(issues) > 0 {
		return &WeightError{Issues: issues}
	}

	return nil
}

func checkEdge(w Weigher, from, to string, e *core.Edge) (WeightIssue, bool) {
	wt, ok := w.Weight(from, to, e)
	issue := WeightIssue{EdgeID: e.ID, From: from, To: to, Weight: wt}
	switch {
	case !ok:
		issue.Reason = ReasonMissing
	case math.IsNaN(wt):
		issue.Reason = ReasonNotComparable
	case wt < 0:
		issue.Reason = ReasonNegative
	default:
		return WeightIssue{}, false
	}

	return issue, true
}

// weightsAbsent reports whether w reads stored weights from a graph that never
// stored any.
func weightsAbsent(g *core.Graph, w Weigher) bool {
	switch w.(type) {
	case EdgeWeigher, *EdgeWeigher:
		return !g.Weighted()
	}

	return false
}

// missingWeights flags every edge of g as missing; nil for an edgeless graph.
func missingWeights(g *core.Graph) error {
	edges := g.Edges()
	if len(edges) == 0 {
		return nil
	}
	issues := make([]WeightIssue, 0, len(edges))
	for _, e := range edges {
		issues = append(issues, WeightIssue{EdgeID: e.ID, From: e.From, To: e.To, Reason: ReasonMissing})
	}

	return &WeightError{Issues: issues}
}
