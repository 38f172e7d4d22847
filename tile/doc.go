// SPDX-License-Identifier: MIT
//
// Package tile stores an ordered tile catalogue and evaluates whether a
// candidate tile is compatible with the current candidate sets of a cell's
// neighbours.
//
// A Tile carries a positive weight and a per-direction edge label, aligned
// index-for-index with a direction.Set so compatibility is a direct index
// access rather than a lookup through a mapping table.
//
// The match predicate (which edge labels are considered compatible) is a
// first-class injection point (MatchFunc), not hard-coded equality — the
// reference predicate Equality is provided, but applications may supply any
// pure, symmetric relation (e.g. socket matching).
package tile
