// Package typeresolve defines the class-loading collaborator used by the
// mapping compiler: a Resolver turns a type name into a Handle that knows
// its supertype chain.
//
// Implementations:
//   - Registry: thread-safe in-memory registry, optionally seeded with the
//     JVM throwable hierarchy and loaded from YAML registry files
//   - GraphResolver: Go types from an analyze.TypeGraph, where embedding
//     models inheritance
//   - Chain: tries several resolvers in order
package typeresolve
