// SPDX-License-Identifier: MIT
//
// catalogue.go — Catalogue storage and the Judge compatibility predicate.
//
// Determinism:
//   - Tile IDs are issued in insertion order starting at 0.
//   - IDs() returns ascending tile-ID order (used by wfc for stable
//     weighted sampling and stable DFS candidate order).
//
// Complexity:
//   - Add/Get/Count: O(1).
//   - Judge: O(|D| * max neighbour-candidate-set size), no mapping table —
//     edge-label index i is compared directly against opposite-index
//     oppIdx[i] on each neighbour candidate.
package tile

import (
	"fmt"

	"github.com/katalvlaran/wfcgraph/direction"
)

// ID identifies a tile within a Catalogue, issued in insertion order.
type ID int

// EdgeLabel is an opaque, application-defined value compared by MatchFunc.
type EdgeLabel interface{}

// MatchFunc is a pure, symmetric relation on edge labels: match(a,b) must
// equal match(b,a) for all a, b. Equality is the reference implementation.
type MatchFunc func(a, b EdgeLabel) bool

// Equality is the reference MatchFunc: two labels match iff they compare
// equal with ==. Only usable when EdgeLabel values are comparable.
func Equality(a, b EdgeLabel) bool { return a == b }

// Tile is an assignment option: a positive weight and one edge label per
// direction, aligned index-for-index with the Catalogue's direction.Set.
type Tile struct {
	ID     ID
	Weight float64
	Edges  []EdgeLabel
}

// Catalogue is an ordered collection of tiles sharing a direction.Set and a
// MatchFunc.
type Catalogue struct {
	dirs    direction.Set
	match   MatchFunc
	tiles   []Tile
	oppIdx  []int // oppIdx[i] = opposite direction's Index(), or -1 if none
}

// New returns an empty Catalogue bound to dirs and match. match must be a
// pure, symmetric relation (see MatchFunc); dirs must not be nil.
func New(dirs direction.Set, match MatchFunc) *Catalogue {
	all := dirs.All()
	oppIdx := make([]int, len(all))
	for _, d := range all {
		if opp, ok := d.Opposite(); ok {
			oppIdx[d.Index()] = opp.Index()
		} else {
			oppIdx[d.Index()] = -1
		}
	}

	return &Catalogue{dirs: dirs, match: match, oppIdx: oppIdx}
}

// Dirs returns the direction.Set this catalogue is bound to.
func (c *Catalogue) Dirs() direction.Set { return c.dirs }

// Add appends a tile with the given per-direction edges and weight.
// len(edges) must equal the bound direction.Set's length and weight must be
// positive; tile IDs are issued in insertion order starting at 0.
// Complexity: O(1) (after the O(|D|) shape check).
func (c *Catalogue) Add(edges []EdgeLabel, weight float64) (ID, error) {
	if len(edges) != c.dirs.Len() {
		return 0, fmt.Errorf("tile.Add: got %d edges, want %d: %w", len(edges), c.dirs.Len(), ErrBadEdgeCount)
	}
	if weight <= 0 {
		return 0, fmt.Errorf("tile.Add: weight %v: %w", weight, ErrNonPositiveWeight)
	}

	id := ID(len(c.tiles))
	cp := make([]EdgeLabel, len(edges))
	copy(cp, edges)
	c.tiles = append(c.tiles, Tile{ID: id, Weight: weight, Edges: cp})

	return id, nil
}

// Get returns the tile for id.
// Complexity: O(1).
func (c *Catalogue) Get(id ID) (Tile, error) {
	if int(id) < 0 || int(id) >= len(c.tiles) {
		return Tile{}, fmt.Errorf("tile.Get(%d): %w", id, ErrTileNotFound)
	}

	return c.tiles[id], nil
}

// Count returns the number of tiles in the catalogue.
func (c *Catalogue) Count() int { return len(c.tiles) }

// IDs returns every tile ID in ascending (insertion) order.
func (c *Catalogue) IDs() []ID {
	ids := make([]ID, len(c.tiles))
	for i := range c.tiles {
		ids[i] = ID(i)
	}

	return ids
}

// Judge reports whether candidate is compatible with neighbourCandidates:
// for every direction i where neighbourCandidates[i] is non-empty, at least
// one tile t in that set must satisfy
// match(candidate.Edges[i], t.Edges[opposite(i)]). Directions with an empty
// neighbour-candidate set (sentinel neighbour, or a Conflict neighbour
// whose own candidates are empty) are skipped. neighbourCandidates
// must have one slice per direction, indexed by direction.Index().
// Complexity: O(|D| * max neighbour-set size).
func (c *Catalogue) Judge(neighbourCandidates [][]ID, candidate ID) (bool, error) {
	if len(neighbourCandidates) != c.dirs.Len() {
		return false, fmt.Errorf("tile.Judge: got %d direction slots, want %d: %w", len(neighbourCandidates), c.dirs.Len(), ErrBadNeighbourShape)
	}
	cand, err := c.Get(candidate)
	if err != nil {
		return false, err
	}

	for i, neighbourSet := range neighbourCandidates {
		if len(neighbourSet) == 0 {
			continue
		}
		oi := c.oppIdx[i]
		if oi < 0 {
			// No opposite direction: nothing can constrain this side.
			continue
		}
		myLabel := cand.Edges[i]
		ok := false
		for _, nid := range neighbourSet {
			nt, err := c.Get(nid)
			if err != nil {
				return false, err
			}
			if c.match(myLabel, nt.Edges[oi]) {
				ok = true
				break
			}
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// Validate checks that every stored tile has the correct edge count and a
// positive weight. Construction through Add already enforces this per
// tile; Validate is for catalogues assembled by other means (or mutated
// test fixtures) before handing them to wfc.
func (c *Catalogue) Validate() error {
	for _, t := range c.tiles {
		if len(t.Edges) != c.dirs.Len() {
			return fmt.Errorf("tile.Validate: tile %d has %d edges, want %d: %w", t.ID, len(t.Edges), c.dirs.Len(), ErrBadEdgeCount)
		}
		if t.Weight <= 0 {
			return fmt.Errorf("tile.Validate: tile %d weight %v: %w", t.ID, t.Weight, ErrNonPositiveWeight)
		}
	}

	return nil
}
