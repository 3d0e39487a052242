// Package layout assigns 2D coordinates to the nodes of a hierarchy graph.
//
// A layout is any Func: the renderer only consumes the resulting Positions,
// so a different deterministic algorithm can be injected without touching
// the rest of the pipeline. Two implementations are provided: Spring, a
// seeded force-directed layout that produces the clustered "bubble-planet"
// look, and Circular, which places nodes evenly on the unit circle.
//
// Every Func must be deterministic: the same graph with the same Params
// yields identical positions.
package layout
