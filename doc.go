// Package flarelath finds flares in Mapper graphs: branches and islands of the
// graph that stand out from its core, either for a single entity (flareness)
// or for the whole graph under a centrality filtration (flare trees).
//
// What is inside:
//
//	• Core primitives: thread-safe graph, vertices with membership metadata
//	• Traversal: BFS, connected components
//	• Shortest paths: multi-source Dijkstra with pluggable edge costs
//	• Centrality: harmonic, closeness, betweenness
//	• Flareness: core/shell split, per-entity signatures, classification
//	• Flare trees: persistence sweep with birth, death and pruning
//
// Packages:
//
//	core/       — Graph, Vertex, Edge types, induced subgraphs, membership sets
//	builder/    — deterministic fixtures (Path, Star, Cycle, Complete) + member tagging
//	bfs/        — breadth-first search and ConnectedComponents
//	dijkstra/   — MultiSource, Weigher, ValidateWeights
//	centrality/ — Harmonic, Closeness, Betweenness, lookup by name
//	coreshell/  — Split a vertex subset into core and shell
//	flareness/  — Flareness, Classify, AnalyzeAll
//	flaretree/  — Forest, Filtration, Detect, Annotate
//	trace/      — Recorder events, charmbracelet logging, OpenTelemetry spans
//	config/     — YAML settings validated with go-playground/validator
//	loader/     — YAML graph documents into core.Graph
//	cmd/flarelath — command-line front end
//
// Quick ASCII example:
//
//	  1   2
//	   \ /
//	3 ─ C ─ 4
//
// Under harmonic centrality every leaf is born as its own flare; the hub
// merges them, so Detect reports four flares, one still alive.
//
//	go get github.com/katalvlaran/flarelath
package flarelath
