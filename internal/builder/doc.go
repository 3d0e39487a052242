// Package builder transforms a catalog into the typed hierarchy graph.
//
// # How It Works
//
// For each catalog entry, in order:
//  1. **Intern:** the sector, industry and symbol labels become namespaced
//     nodeid keys, so a ticker can never merge with an industry or sector
//     that happens to share its text.
//  2. **Nodes:** sector, industry and stock nodes are ensured to exist.
//  3. **Links:** industry↔sector and stock↔industry edges are ensured.
//
// Both steps are idempotent. Entries sharing an industry or sector label
// therefore aggregate into a single hub node, and building the same catalog
// into the same graph twice leaves the graph unchanged.
//
// Example:
//
//	NVDA → Semiconductors → Information Technology
//	AMD  → Semiconductors → Information Technology
//
// produces four nodes (two stocks, one industry, one sector) and three edges.
package builder
