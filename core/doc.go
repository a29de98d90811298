// Package core provides a thread-safe in-memory Graph used as the substrate for
// Mapper-graph analyses.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Every vertex carries a Metadata map. Mapper nodes keep their member sets there
// (see Members, HasMember and DefaultMembershipKey); analyses write their
// per-node results back through SetAttr.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E)
//
//	// Edge lifecycle
//	AddEdge(from,to string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error   // O(1)
//	HasEdge(from,to string) bool      // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d)
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	EdgesBetween(from,to string) []*Edge     // O(k·log k)
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//	Degree(id string) (int, error)
//
//	// Metadata
//	Attr(id,key string) (interface{}, bool)
//	SetAttr(id,key string, value interface{}) error
//	Members(id,key string) ([]string, error)
//	HasMember(id,key,entity string) bool
//
//	// Views
//	InducedSubgraph(g, keep map[string]bool) *Graph
//	InducedSubgraphOf(g, ids []string) *Graph
//
// Determinism: all enumerations are sorted (vertex IDs lexicographically, edges
// by ID), so analyses built on core produce identical output for identical input.
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrBadMembership.
package core
