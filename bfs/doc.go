// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links, and visit order, plus connected-component labelling.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - BFSResult carries Order (visit sequence), Depth (hops from start) and
//     Parent (predecessor in the BFS tree).
//   - WithOnVisit observes every vertex with its depth and may abort with an error.
//   - WithFilterNeighbor prunes individual neighbor steps.
//   - ConnectedComponents partitions a graph into deterministic, sorted groups.
//
// Edge weights are ignored. Centrality measures and component splits of
// Mapper graphs are defined over hop distance, so weighted graphs are accepted.
//
// Determinism
//
//	core.NeighborIDs returns neighbors sorted lexicographically and BFS enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - BFS:                 Time O(V + E), Memory O(V)
//   - ConnectedComponents: Time O(V log V + E), Memory O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails for any vertex.
//   - ErrNoPath               from PathTo for unreached targets.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
