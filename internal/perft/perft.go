// Package perft implements the standard move-generation benchmark:
// walk the legal move tree to a fixed depth and count leaf nodes,
// which should match well-known reference values for standard test
// positions (spec.md §4.9, https://www.chessprogramming.org/Perft_Results).
package perft

import (
	"github.com/corvid-chess/corvid/internal/attacks"
	"github.com/corvid-chess/corvid/internal/movegen"
	"github.com/corvid-chess/corvid/internal/position"
	"github.com/corvid-chess/corvid/internal/zobrist"
)

// Count returns the number of leaf nodes reachable from p in exactly
// depth plies of legal play.
func Count(tables *attacks.Tables, keys *zobrist.Keys, p position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	legal := movegen.Generate(tables, keys, p)
	if depth == 1 {
		return uint64(legal.Len())
	}
	var nodes uint64
	for i := 0; i < legal.Len(); i++ {
		next := p.MakeMove(keys, legal.Get(i))
		nodes += Count(tables, keys, next, depth-1)
	}
	return nodes
}

// Divide is Count's debugging sibling: it returns the per-root-move
// breakdown of leaf-node counts, so a discrepancy against a reference
// perft value can be narrowed down to a single subtree.
func Divide(tables *attacks.Tables, keys *zobrist.Keys, p position.Position, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth == 0 {
		return out
	}
	legal := movegen.Generate(tables, keys, p)
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		next := p.MakeMove(keys, m)
		out[m.UCI()] = Count(tables, keys, next, depth-1)
	}
	return out
}
