// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory graph of the exported named types of a set of packages, so
// that mapping files can name Go types as classes.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind (struct/interface/alias) and embedded types
//   - TypeGraph: all types plus an Ancestors walk over embedding
package analyze
