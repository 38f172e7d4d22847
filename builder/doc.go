// SPDX-License-Identifier: MIT
//
// Package builder assembles core.Grid instances wired for the orthogonal
// direction.Set: every cell gets exactly one outgoing edge per direction
// (East, South, West, North, in that order), pointing at a real neighbour
// or at core.Sentinel where no neighbour exists.
//
// Three topologies are provided: Grid2D (bounded rows x cols), Path (a
// 1-dimensional chain, sentinel on every North/South edge), and Torus
// (rows x cols wrapping on both axes, no sentinel edges at all). All three
// share the same functional-option configuration and the same Constructor
// composition model, so additional topologies can be added without
// touching the public API.
package builder
