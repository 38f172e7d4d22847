// SPDX-License-Identifier: MIT
//
// Package wfc drives the collapse/propagation loop and the layered
// conflict-repair engine on top of a core.Grid and a tile.Catalogue.
//
// Manager owns the per-cell WFC state table (status, candidates, entropy,
// tiebreak), the RNG, and the entropy-ordered frontier. A single Manager
// drives one solve: Step advances exactly one collapse-plus-propagation (or
// one repair attempt), Run loops Step until a terminal result.
//
// Unlike core.Grid, Manager is NOT safe for concurrent use. Collapse is
// single-threaded cooperative by design: there is no internal locking
// here, and callers must not invoke Manager methods from more than one
// goroutine at a time.
//
// Conflict repair (repair.go) is local and layered: it is distinct from
// the main collapse loop, which never backtracks spontaneously. Repair
// recruits widening rings of neighbours around existing conflicts and
// performs a bounded depth-first search over candidate assignments,
// snapshotting and restoring state on every failed branch.
package wfc
