package move

import (
	"sort"

	"github.com/corvid-chess/corvid/internal/square"
)

// MaxMoves bounds the size of a move list. 218 is the largest known
// number of legal moves in any reachable chess position, so a
// fixed-capacity array avoids all dynamic allocation during search.
const MaxMoves = 218

// List is a bounded, fixed-capacity sequence of encoded moves.
// Its zero value is an empty list ready to use.
type List struct {
	moves [MaxMoves]Ply
	n     int
}

// Push appends m to the list. Overflowing MaxMoves is a programmer
// error (it cannot happen for a legal position) and panics rather than
// silently truncating.
func (l *List) Push(m Ply) {
	if l.n >= MaxMoves {
		panic("move: move list overflow")
	}
	l.moves[l.n] = m
	l.n++
}

// Get returns the i'th move in the list.
func (l *List) Get(i int) Ply { return l.moves[i] }

// Len returns the number of moves currently in the list.
func (l *List) Len() int { return l.n }

// IsEmpty reports whether the list has no moves.
func (l *List) IsEmpty() bool { return l.n == 0 }

// Reset empties the list for reuse, avoiding a fresh allocation.
func (l *List) Reset() { l.n = 0 }

// Captures returns a new list containing only the moves of l that
// capture a piece.
func (l *List) Captures() List {
	var out List
	for i := 0; i < l.n; i++ {
		if l.moves[i].IsCapture() {
			out.Push(l.moves[i])
		}
	}
	return out
}

// pieceValue gives the canonical centipawn value used for MVV-LVA
// ordering. The king is never a capture target in a legal position but
// is included for completeness of the table.
var pieceValue = [square.NumPieces]int32{
	square.Pawn:   100,
	square.Knight: 320,
	square.Bishop: 330,
	square.Rook:   500,
	square.Queen:  900,
	square.King:   20000,
}

// MVVLVA returns the most-valuable-victim/least-valuable-attacker
// intrinsic score of a capturing move. Non-captures score 0.
func MVVLVA(m Ply) int32 {
	victim, ok := m.Captured()
	if !ok {
		return 0
	}
	return pieceValue[victim]*10 - pieceValue[m.Piece()]
}

// Score combines a move's intrinsic MVV-LVA value with a caller
// supplied heuristic bonus (killer/history/PV, see search.moveScore).
type Score func(m Ply) int32

// Sort orders the list from highest to lowest score, in place.
func (l *List) Sort(score Score) {
	s := l.moves[:l.n]
	sort.SliceStable(s, func(i, j int) bool {
		return score(s[i]) > score(s[j])
	})
}
