// SPDX-License-Identifier: MIT
//
// Package direction supplies the capability that turns "position within a
// core.Grid neighbour list" back into "a named direction", and identifies
// each direction's opposite for bidirectional propagation.
//
// core.Grid derives adjacency direction purely from edge-creation order: a
// builder creates a cell's outgoing edges in a fixed canonical order, and
// Grid.Neighbours returns them reversed. A Set packages that canonical
// order (and the opposite relation) as a small, application-suppliable
// capability rather than a hard-coded enum, so non-orthogonal topologies
// (hex grids, arbitrary-degree graphs) can supply their own.
//
// Orthogonal is the reference 4-direction implementation: East, South,
// West, North in creation order (index(East)=3, index(North)=0), chosen so
// that Grid.Neighbours's creation-order reversal lines up directly with
// ascending Index() order.
package direction
