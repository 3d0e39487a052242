// Package catalog defines the immutable input of the application: an ordered
// sequence of stocks, each classified into exactly one industry and sector.
//
// The catalog is a plain value. It is built once, either from the compiled-in
// Default table or by one of the file loaders, and passed explicitly to the
// graph builder. Nothing in this package holds process-wide mutable state.
package catalog
