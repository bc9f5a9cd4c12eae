// Package history tracks the Zobrist hashes visited along the current
// line of play so the search and the driver can detect draws by
// threefold repetition and the fifty-move rule, per spec.md §4.8.
package history

// maxEntries bounds how many plies of history are retained. A single
// game, let alone a single search line, never approaches this; it
// exists so BoardHistory has a fixed-size backing array like the rest
// of the engine's hot-path data structures.
const maxEntries = 1000

// BoardHistory is an append-only record of (hash, halfmove clock)
// pairs for each position reached so far. Its zero value is ready to
// use.
type BoardHistory struct {
	hashes [maxEntries]uint64
	clocks [maxEntries]int
	n      int
}

// Push records a position's hash and the halfmove clock in force at
// that position. Panics on overflowing maxEntries, which would
// indicate a runaway search or driver loop rather than a real game.
func (h *BoardHistory) Push(hash uint64, halfmoveClock int) {
	if h.n >= maxEntries {
		panic("history: board history overflow")
	}
	h.hashes[h.n] = hash
	h.clocks[h.n] = halfmoveClock
	h.n++
}

// Pop removes the most recently pushed entry, mirroring a search's
// unmake-move step. Calling Pop on an empty history is a programmer
// error and panics.
func (h *BoardHistory) Pop() {
	if h.n == 0 {
		panic("history: pop from empty board history")
	}
	h.n--
}

// Len reports how many positions have been recorded.
func (h *BoardHistory) Len() int { return h.n }

// IsFiftyMoveDraw reports whether the most recently pushed position's
// halfmove clock has reached 100 (fifty full moves without a capture
// or pawn move), per spec.md §4.8.
func (h *BoardHistory) IsFiftyMoveDraw() bool {
	if h.n == 0 {
		return false
	}
	return h.clocks[h.n-1] >= 100
}

// IsThreefoldRepetition reports whether the most recently pushed
// position has occurred three times. Only positions reachable within
// the current halfmove clock are examined, since a capture or pawn
// move makes earlier positions unreachable by repetition.
func (h *BoardHistory) IsThreefoldRepetition() bool {
	if h.n == 0 {
		return false
	}
	current := h.hashes[h.n-1]
	clock := h.clocks[h.n-1]

	count := 0
	for i := h.n - 1; i >= 0 && h.n-1-i <= clock; i-- {
		if h.hashes[i] == current {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}
