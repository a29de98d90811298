// Package flaretree detects flares in a graph with a persistence-style sweep
// over a scalar filtration (typically a centrality measure).
//
// Vertices are visited in ascending filtration order. A vertex with no
// already-visited neighbor starts a new flare (birth). A vertex touching
// several live flare trees merges them: the elder tree survives, every younger
// one dies at the current value and becomes a child of the elder. Long-lived
// flares are the topologically prominent branches of the graph.
//
// Overview:
//
//   - Filtration is a tagged value: Explicit(map), ByAttribute(key) or
//     ByCentrality(name). It is resolved once, before the sweep.
//   - Forest is an arena of tree slots addressed by index. Parent and children
//     are indices, so attaching and collapsing are plain slice updates.
//   - Detect runs the sweep and returns every Flare record sorted by lifespan,
//     plus per-vertex attribution (Result.NodeFlare, Result.NodeValue).
//   - Annotate and AnnotateCentralities write flare indices and filtration
//     values back onto vertex metadata.
//
// Tie-breaking:
//
//   - Vertices with equal filtration values are visited in lexicographic ID
//     order.
//   - Among merge candidates the elder is the one with the smallest birth;
//     equal births go to the smaller origin vertex ID.
//   - Output order is lifespan descending, then birth ascending, then origin.
//
// Pruning:
//
// With WithPruneThreshold(t), a younger tree whose lifespan is below t is
// collapsed into the elder right after it dies: its vertices (and those of its
// descendants) join the elder's member set and its slot leaves the forest. The
// closed Flare record is still reported.
//
// Neighbors are read with core.Graph.NeighborIDs, so the sweep is meant for
// undirected graphs.
//
// Errors (sentinel):
//
//   - ErrGraphNil           nil graph.
//   - ErrMissingFiltration  a vertex has no filtration value.
//   - ErrBadFiltration      NaN, infinite or non-numeric value, or unset Filtration.
//   - ErrBadThreshold       negative or NaN prune threshold.
//   - ErrInvariant          matched by every *InvariantError; indicates a bug.
package flaretree
