// internal/nodeid/doc.go

/*
Package nodeid provides a structured, type-safe representation for node
identifiers in the hierarchy graph, based on the canonical format
`kind/name`.

A node is identified by its kind (sector, industry or stock) together with
its display label, e.g. `industry/Semiconductors` or `stock/NVDA`. Interning
labels into namespaced keys keeps same-kind labels merging into a single hub
while preventing a stock symbol from silently merging with an industry or
sector of the same name.

This package enforces the identifier schema and centralizes all formatting
and parsing logic.
*/
package nodeid
