// Package model defines the compiled mapping model handed to the runtime
// copy engine: a Configuration of resolved global defaults and an ordered
// list of ClassMaps, each holding strategy-tagged FieldMaps.
//
// The model is immutable once produced. Direction and Relationship values
// on a ClassMap and every boolean on a Configuration are always concrete;
// FieldMap-level values may be Inherit, meaning the ClassMap value applies.
package model
