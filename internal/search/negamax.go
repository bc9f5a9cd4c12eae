package search

import (
	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/history"
	"github.com/corvid-chess/corvid/internal/move"
)

// infinity bounds the score range; mateValue is kept well below it so
// mate-in-N scores are distinguishable from ordinary large
// evaluations while leaving headroom for alpha-beta windows.
const (
	infinity  int32 = 1 << 20
	mateValue int32 = infinity - 1000
)

// mateScore returns the score reported for being checkmated ply plies
// from the current search root: closer mates score more negative, so
// a side choosing between forced mates prefers the fastest one.
func mateScore(ply int) int32 {
	return int32(ply) - mateValue
}

// isMateScore reports whether score represents a forced mate, and if
// so how many moves away, counting the mating side's moves as a UCI
// "score mate N" does (negative if the side to move is being mated).
func isMateScore(score int32) (movesToMate int, ok bool) {
	const window = int32(1 << 10)
	switch {
	case score >= mateValue-window:
		return int((mateValue - score + 1) / 2), true
	case score <= -mateValue+window:
		return -int((mateValue + score + 1) / 2), true
	default:
		return 0, false
	}
}

func (s *Search) checkTimeAndStop(si *searchInfo) {
	if s.aborted || si.nodes%s.cfg.TimeCheckInterval != 0 {
		return
	}
	if s.stop.Load() || (!s.deadline.IsZero() && now().After(s.deadline)) {
		s.aborted = true
	}
}

func (s *Search) negamax(b board.Board, hist *history.BoardHistory, si *searchInfo, depth, ply int, alpha, beta int32) int32 {
	si.pvLength[ply] = ply
	si.nodes++
	s.checkTimeAndStop(si)
	if s.aborted {
		return 0
	}

	if ply > 0 {
		if hist.IsFiftyMoveDraw() || hist.IsThreefoldRepetition() {
			return 0
		}
		// Mate-distance pruning: a mate found deeper than the current
		// window cannot improve on a shallower one already bracketed.
		alpha = max32(alpha, mateScore(ply))
		beta = min32(beta, -mateScore(ply+1))
		if alpha >= beta {
			return alpha
		}
	}

	inCheck := b.InCheck(s.tables)
	if inCheck {
		depth++ // check extension: never resolve a check with a flat evaluation
	}

	if depth <= 0 {
		return s.quiescence(b, si, s.cfg.MaxQuiescenceDepth, alpha, beta)
	}

	legal := s.generate(b.Position)
	if legal.Len() == 0 {
		if inCheck {
			return mateScore(ply)
		}
		return 0
	}

	if si.followPV {
		si.enablePVScoring(legal, ply)
	}
	s.orderMoves(si, &legal, ply)

	bestScore := -infinity

	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		next := s.makeMove(b, m)
		hist.Push(next.Hash, next.HalfmoveClock)
		score := -s.negamax(next, hist, si, depth-1, ply+1, -beta, -alpha)
		hist.Pop()

		if s.aborted {
			return 0
		}

		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
			si.recordPV(ply, m)
			if m.IsQuiet() {
				si.recordHistory(m, depth)
			}
		}
		if alpha >= beta {
			if m.IsQuiet() {
				si.recordKiller(ply, m)
			}
			break
		}
	}
	return bestScore
}

func (s *Search) quiescence(b board.Board, si *searchInfo, qdepth int, alpha, beta int32) int32 {
	si.nodes++
	s.checkTimeAndStop(si)
	if s.aborted {
		return 0
	}

	standPat := s.evaluate(b.Position)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if qdepth <= 0 {
		return alpha
	}

	legal := s.generate(b.Position)
	captures := legal.Captures()
	captures.Sort(move.MVVLVA)

	for i := 0; i < captures.Len(); i++ {
		m := captures.Get(i)
		next := s.makeMove(b, m)
		score := -s.quiescence(next, si, qdepth-1, -beta, -alpha)
		if s.aborted {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
