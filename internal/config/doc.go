// Package config defines the format-agnostic Loader interface for reading
// stock catalogs from files, along with a dispatcher that routes each file
// to the loader registered for its extension.
//
// The `catalog.Catalog` is the single source of truth for the `builder`
// package. Concrete implementations of the interface, such as for HCL or
// YAML, are provided in separate packages.
package config
