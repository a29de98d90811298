// Package centrality computes vertex centrality scores over a core.Graph for
// use as filtrations in flare detection.
//
// Measures (all over hop distance; edge weights are ignored):
//
//   - Harmonic:    H(v) = Σ_{u≠v} 1/d(v,u), unreachable pairs contribute 0.
//   - Closeness:   C(v) = (r-1)/Σd(v,u) · (r-1)/(n-1), where r counts vertices
//     reachable from v (v included). Isolated vertices score 0.
//   - Betweenness: Brandes accumulation, normalized by 1/((n-1)(n-2)) for n > 2.
//
// ByName resolves "harmonic", "closeness" and "betweenness"; Code maps each to
// the one-letter label used in node annotations ("H", "C", "B").
//
// Complexity: O(V·(V+E)) time for every measure, O(V+E) extra space.
package centrality
