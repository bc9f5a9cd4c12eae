// Package eval provides the static evaluation function that
// cmd/corvid-search and the search tests pass to search.New;
// internal/search itself has no built-in fallback evaluator. spec.md
// treats position evaluation as an external concern the search
// component merely calls through an injected function; this package
// is one concrete, swappable implementation of that function, not a
// component spec.md names explicitly.
package eval

import (
	"github.com/corvid-chess/corvid/internal/bitboard"
	"github.com/corvid-chess/corvid/internal/position"
	"github.com/corvid-chess/corvid/internal/square"
)

// pieceValue gives each piece type's material weight in centipawns.
var pieceValue = [square.NumPieces]int32{
	square.Pawn:   100,
	square.Knight: 320,
	square.Bishop: 330,
	square.Rook:   500,
	square.Queen:  900,
	square.King:   0,
}

// mobilityWeight scales how much a legal-move-count proxy for
// mobility contributes, in centipawns per reachable square.
const mobilityWeight = 2

// Material scores a position from the perspective of the side to
// move: positive means the side to move is ahead. It sums piece
// values and a cheap pseudo-mobility term (the popcount of each
// knight's reach, which double-counts squares but is far cheaper
// than full legal move generation); other pieces add no mobility.
func Material(p position.Position) int32 {
	var score [2]int32
	for c := square.White; c <= square.Black; c++ {
		for piece := square.Pawn; piece < square.NumPieces; piece++ {
			score[c] += pieceValue[piece] * int32(p.Pieces[c][piece].Count())
		}
		score[c] += mobilityWeight * int32(mobility(p, c))
	}

	us := score[p.ActiveColor]
	them := score[p.ActiveColor.Other()]
	return us - them
}

// mobility approximates how many squares a color's knights reach,
// excluding squares held by allied pieces but ignoring pins and
// checks: a cheap tiebreaker, not move generation.
func mobility(p position.Position, c square.Color) int {
	allies := p.Occupancy(c)
	total := 0
	for knights := p.Pieces[c][square.Knight]; !knights.Empty(); {
		total += (knightReach(knights.PopLSB()) &^ allies).Count()
	}
	return total
}

func knightReach(sq square.Square) bitboard.Board {
	const notAFile = ^bitboard.Board(0x0101010101010101)
	const notHFile = ^bitboard.Board(0x8080808080808080)
	const notABFile = ^bitboard.Board(0x0303030303030303)
	const notGHFile = ^bitboard.Board(0xC0C0C0C0C0C0C0C0)
	b := bitboard.Of(sq)
	return (b & notAFile >> 17) |
		(b & notHFile >> 15) |
		(b & notABFile >> 10) |
		(b & notGHFile >> 6) |
		(b & notABFile << 6) |
		(b & notGHFile << 10) |
		(b & notAFile << 15) |
		(b & notHFile << 17)
}
