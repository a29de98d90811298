// Package dijkstra provides multi-source Dijkstra shortest paths over a
// core.Graph with non-negative edge costs.
//
// Overview:
//
//   - MultiSource seeds every source at distance 0 and settles vertices in
//     order of their distance to the nearest source. Dijkstra is the
//     single-source form returning plain maps.
//   - Edge costs come from an injected Weigher. UnitWeigher (default) charges 1
//     per edge; EdgeWeigher reads Edge.Weight; WeigherFunc adapts a closure.
//   - ValidateWeights is the explicit precondition step: it scans every edge and
//     reports missing, NaN and negative costs as a *WeightError listing each
//     offending edge. Run it before shortest-path work whenever the costs
//     come from data.
//
// Key features:
//
//   - Every vertex appears in Result.Dist; unreachable ones hold +Inf, never NaN.
//   - WithReturnPath records predecessors; Result.PathTo rebuilds a path.
//   - WithMaxDistance caps exploration; vertices past the cap stay at +Inf.
//   - Edges whose cost resolves to +Inf are impassable.
//   - Heap ties break on vertex ID, so identical inputs give identical runs.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors (sentinel):
//
//   - ErrEmptySource     no source supplied, or an empty source ID.
//   - ErrNilGraph        nil graph.
//   - ErrVertexNotFound  a source is not in the graph.
//   - ErrBadMaxDistance  negative or NaN cap.
//   - ErrInvalidWeight   matched by every *WeightError.
package dijkstra
