// Package builder provides deterministic, functional-options constructors for
// core.Graph fixtures: small topologies (Path, Star, Cycle, Complete, Edges)
// plus membership constructors (Tag, TagAll, Members) that turn them into
// Mapper-style graphs whose vertices carry entity sets.
//
// Components:
//
//   - BuildGraph / Apply: create (or extend) a graph and run constructors in order.
//   - BuilderOption: WithIDScheme, WithSymbNumb, WithPaddedIDs, WithSeed, WithRand,
//     WithWeightFn, WithConstantWeight, WithUniformWeight, WithMembershipKey.
//   - IDFn: DefaultIDFn ("0","1",…), SymbolNumberIDFn ("n0","n1",…), PaddedIDFn ("00","01",…).
//   - WeightFn: DefaultWeightFn, ConstantWeightFn, UniformWeightFn (weighted graphs only).
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graph.
//   - Option constructors panic on meaningless arguments; Constructors return
//     sentinel errors wrapped with the method name (ErrTooFewVertices,
//     ErrConstructFailed, ErrUnknownVertex, ErrEmptyEntity).
package builder
