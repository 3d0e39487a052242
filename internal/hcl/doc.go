// Package hcl provides the HCL implementation of the config.Loader
// interface. It parses `stock` blocks from .hcl files and evaluates their
// attributes against a context that exposes the GICS sector names.
package hcl
