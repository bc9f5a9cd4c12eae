package search

import (
	"github.com/corvid-chess/corvid/internal/move"
	"github.com/corvid-chess/corvid/internal/square"
)

// searchInfo carries the mutable state threaded through one
// iterative-deepening run: node count, the triangular PV table, the
// killer-move and history heuristics, and the follow-PV flag that
// keeps move ordering aligned with the previous iteration's principal
// variation.
type searchInfo struct {
	maxPly int

	nodes uint64

	// pvTable is a triangular table: pvTable[ply] holds the continuation
	// found from that ply onward. pvLength[ply] is how many of those
	// entries are valid.
	pvTable  [][]move.Ply
	pvLength []int

	// prevPV is the principal variation found by the previous
	// iterative-deepening iteration, consulted to keep move ordering
	// aligned with it (the "follow PV" heuristic).
	prevPV   []move.Ply
	followPV bool
	scorePV  bool

	// killers[ply] holds up to two quiet moves that caused a beta
	// cutoff at that ply in a sibling branch.
	killers [][2]move.Ply

	// history is indexed by [piece][target square], per spec.md §4.7 —
	// deliberately not by [from][to].
	history [square.NumPieces][64]int32
}

func newSearchInfo(maxPly int) *searchInfo {
	pv := make([][]move.Ply, maxPly)
	for i := range pv {
		pv[i] = make([]move.Ply, maxPly)
	}
	return &searchInfo{
		maxPly:   maxPly,
		pvTable:  pv,
		pvLength: make([]int, maxPly),
		killers:  make([][2]move.Ply, maxPly),
	}
}

func (si *searchInfo) recordPV(ply int, m move.Ply) {
	si.pvTable[ply][ply] = m
	for next := ply + 1; next < si.pvLength[ply+1]; next++ {
		si.pvTable[ply][next] = si.pvTable[ply+1][next]
	}
	si.pvLength[ply] = si.pvLength[ply+1]
}

func (si *searchInfo) recordKiller(ply int, m move.Ply) {
	if si.killers[ply][0] == m {
		return
	}
	si.killers[ply][1] = si.killers[ply][0]
	si.killers[ply][0] = m
}

func (si *searchInfo) isKiller(ply int, m move.Ply) bool {
	return si.killers[ply][0] == m || si.killers[ply][1] == m
}

func (si *searchInfo) recordHistory(m move.Ply, depth int) {
	si.history[m.Piece()][m.Target()] += int32(depth * depth)
}

func (si *searchInfo) principalVariation() []move.Ply {
	n := si.pvLength[0]
	pv := make([]move.Ply, n)
	copy(pv, si.pvTable[0][:n])
	return pv
}

// beginIteration resets the per-node follow-PV bookkeeping before a
// new iterative-deepening pass, keeping the PV found so far as the
// ordering hint for the next (deeper) pass.
func (si *searchInfo) beginIteration() {
	si.prevPV = si.principalVariation()
	si.followPV = len(si.prevPV) > 0
	si.scorePV = false
}

// enablePVScoring marks the PV move as highest priority at this node,
// if it is present in the current move list, and otherwise drops out
// of follow-PV mode for the rest of this branch.
func (si *searchInfo) enablePVScoring(moves move.List, ply int) {
	si.followPV = false
	if ply >= len(si.prevPV) {
		return
	}
	want := si.prevPV[ply]
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i) == want {
			si.scorePV = true
			si.followPV = true
			return
		}
	}
}
