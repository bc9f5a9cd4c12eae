package search

import "github.com/corvid-chess/corvid/internal/move"

// Move ordering priorities, highest first: the previous iteration's
// PV move, then captures (by MVV-LVA), then non-capturing promotions,
// then the two killer moves recorded at this ply, then the history
// heuristic score. The fixed bands are kept well clear of their
// neighbors so MVV-LVA ordering never crosses bands; history scores
// accumulate without a cap, so over a long search a history score can
// reach the killer or higher bands.
const (
	pvBonus       = int32(1) << 24
	captureBase   = int32(1) << 20
	promotionBase = int32(1) << 18
	killerBonus1  = int32(1) << 16
	killerBonus2  = int32(1) << 15
)

func (s *Search) orderMoves(si *searchInfo, moves *move.List, ply int) {
	moves.Sort(func(m move.Ply) int32 {
		return s.moveScore(si, m, ply)
	})
}

func (s *Search) moveScore(si *searchInfo, m move.Ply, ply int) int32 {
	if si.scorePV && ply < len(si.prevPV) && si.prevPV[ply] == m {
		return pvBonus
	}
	if m.IsCapture() {
		return captureBase + move.MVVLVA(m)
	}
	if _, ok := m.Promotion(); ok {
		return promotionBase
	}
	if si.isKiller(ply, m) {
		if si.killers[ply][0] == m {
			return killerBonus1
		}
		return killerBonus2
	}
	return si.history[m.Piece()][m.Target()]
}
