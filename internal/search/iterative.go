package search

import (
	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/history"
	"github.com/corvid-chess/corvid/internal/move"
)

// iterativeDeepening searches start one ply deeper at a time up to
// maxDepth, reporting an Info after each completed iteration and a
// BestMove once the search stops (by exhausting maxDepth, running out
// of time, or receiving a Stop). A partially-searched iteration that
// was aborted mid-flight is discarded and the previous iteration's
// best move is reported instead, per the usual iterative-deepening
// contract. The first iteration is the exception: if it is aborted,
// its partial PV is still reported in an Info, and if that PV is
// empty the BestMove carries the zero Ply (rendered "a1a1").
func (s *Search) iterativeDeepening(start board.Board, hist *history.BoardHistory, maxDepth int) {
	rootMoves := s.generate(start.Position)
	if rootMoves.Len() == 0 {
		s.log.Debugf("no legal moves at root")
		s.messages <- InfoString{Text: "no legal moves"}
		return
	}

	si := newSearchInfo(s.cfg.MaxPly)

	var best move.Ply
	var haveBest bool

	for depth := 1; depth <= maxDepth; depth++ {
		si.beginIteration()

		t0 := now()
		score := s.negamax(start, hist, si, depth, 0, -infinity, infinity)

		if s.aborted && haveBest {
			break
		}

		pv := si.principalVariation()
		if len(pv) > 0 {
			best = pv[0]
			haveBest = true
		}

		info := Info{
			Depth: depth,
			Score: score,
			Nodes: si.nodes,
			Time:  now().Sub(t0),
			PV:    pv,
		}
		if moves, ok := isMateScore(score); ok {
			info.Mate = moves
		}
		s.log.Debugf("%s", info)
		s.messages <- info

		if s.aborted {
			break
		}
		if _, ok := isMateScore(score); ok {
			break
		}
	}

	if haveBest {
		s.log.Debugf("bestmove %s", best.UCI())
	}
	s.messages <- BestMove{Move: best}
}
