// Package graph provides the typed, undirected hierarchy graph built from a
// catalog: sector, industry and stock nodes joined by stock↔industry and
// industry↔sector edges.
//
// # Architecture
//
// Graph is a thin facade over a gonum simple.UndirectedGraph. Node identity
// is a namespaced nodeid.Key; the facade interns each key into the int64 id
// gonum works with and records insertion order, so that iteration (and with
// it layout and rendering) is deterministic.
//
//	┌─────────────────────────────┐
//	│        Graph facade         │
//	│ (keys, insertion order)     │
//	└──────────────┬──────────────┘
//	               │
//	               ▼
//	  ┌──────────────────────────┐
//	  │ simple.UndirectedGraph   │
//	  │ (adjacency, algorithms)  │
//	  └──────────────────────────┘
//
// # Lifecycle
//
//  1. **Creation:** New returns an empty graph.
//  2. **Population:** the builder adds nodes and edges. Both operations are
//     idempotent, matching the semantics of common graph libraries.
//  3. **Read-only use:** partitioning, layout and rendering only query.
//  4. **Disposal:** the graph is discarded when the process exits.
//
// # Thread-Safety
//
// A Graph is not safe for concurrent mutation. Once populated it may be
// read from multiple goroutines.
package graph
