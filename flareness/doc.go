// Package flareness measures how an entity spreads across a Mapper graph.
//
// An entity occupies the vertices whose membership set names it (H). H splits
// into a shell (vertices touching the rest of the graph) and a core. The
// flareness signature holds one value per connected component of the core:
// the largest shortest-path distance from the shell to any vertex of that
// component, measured inside the subgraph induced by H. A component the shell
// cannot reach scores +Inf and is called an island.
//
// Overview:
//
//   - Flareness analyzes one entity and returns a *Result. An entity with no
//     vertices is not an error: Result.Found is false.
//   - Classify maps a Signature to a Type and an index:
//
//     []          -> None, 0
//     [+Inf ...]  -> PureIsland, +Inf
//     [3, 4, +Inf]-> FlareAndIsland, 4
//     [1, 1, 2]   -> PureFlare, 2
//
//     ClassifyResult adds NotFound for results with Found == false.
//   - AnalyzeAll runs many entities concurrently over a read-only graph and
//     buckets them into a Report.
//
// Edge costs:
//
// Distances come from a dijkstra.Weigher (unit cost by default). When a
// non-unit Weigher is installed, every edge is checked with
// dijkstra.ValidateWeights before any distance is computed, and a
// *dijkstra.WeightError listing the offending edges is returned instead of a
// signature. WithValidateWeights overrides that default.
//
// Ordering:
//
// Core components are ordered by their smallest vertex ID, so signatures are
// reproducible run to run.
//
// Errors (sentinel):
//
//   - ErrGraphNil     nil graph.
//   - ErrEmptyEntity  empty entity identifier passed to Flareness. AnalyzeAll
//     reports such an entity as not found instead.
//   - ErrBadWorkers   worker count below one.
package flareness
