// Package wfcgraph is a constraint-propagation Wave Function Collapse (WFC)
// engine: it assigns one tile per cell of a user-defined adjacency graph such
// that every pair of adjacent cells exposes compatible edge labels.
//
// 🚀 What is wfcgraph?
//
//	A deterministic, single-threaded solver built from four collaborating
//	subsystems, each its own package:
//
//	  • core      — direction-aware graph substrate: cells, directed edges,
//	                boundary sentinel; neighbour order encodes direction.
//	  • direction — turns "position in a neighbour list" back into "compass
//	                direction", and knows each direction's opposite.
//	  • tile      — an ordered tile catalogue with a pluggable edge-match rule.
//	  • wfc       — the collapse/propagation loop and its entropy-ordered
//	                frontier, plus layered conflict-repair with bounded
//	                local backtracking.
//
// ✨ Why wfcgraph?
//
//   - Deterministic — same graph, catalogue and seed ⇒ byte-identical output.
//   - Pluggable     — edge-compatibility and tile population are injected by
//     the caller, not hard-coded.
//   - Honest about scope — no renderer, no bundled tile sets, no global
//     optimality guarantee, no concurrent collapse.
//
// Under the hood:
//
//	core/      — Grid, Cell, directed edges, sentinel handling
//	direction/ — Direction, Set, the canonical Orthogonal 4-direction set
//	tile/      — Catalogue, Tile, MatchFunc, Judge
//	wfc/       — Manager, Config, Step/Run, repair engine
//	builder/   — deterministic Grid2D/Path/Torus constructors over core+direction
//
// Quick ASCII example (Orthogonal, 2x2):
//
//	    (0,0)───(0,1)
//	      │        │
//	    (1,0)───(1,1)
//
//	four cells, edges in canonical East/South/West/North creation order,
//	boundary edges pointing at the shared sentinel where a neighbour is absent.
package wfcgraph
