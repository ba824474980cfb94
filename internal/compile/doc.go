// Package compile turns a specification tree into the compiled mapping model.
//
// Compilation is a pure, single-threaded pass:
//  1. the global configuration is compiled once (variables first),
//  2. every class-pair mapping is compiled in declaration order,
//  3. within a mapping, entries compile in declaration order and each field
//     pair is assigned exactly one access strategy.
//
// The first error aborts the whole compilation unit. Type names are loaded
// through a typeresolve.Resolver; hints are kept as text and loaded later by
// the engine.
package compile
