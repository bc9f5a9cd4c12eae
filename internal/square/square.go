// Package square defines the small, stable enumerations the rest of the
// engine is built on: files, ranks, squares, colors, pieces and castling
// rights. None of these types carry behavior beyond index/display
// conversions, by design.
package square

import "fmt"

// Square is an integer in [0,63]. Square 0 is a1, square 63 is h8.
type Square int

// NoSquare marks the absence of an en passant target.
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File is a column index in [0,7], a..h.
type File int

// Rank is a row index in [0,7], 1..8.
type Rank int

// File returns the file index of sq (a=0..h=7).
func (sq Square) File() File { return File(int(sq) % 8) }

// Rank returns the rank index of sq (rank 1=0..rank 8=7).
func (sq Square) Rank() Rank { return Rank(int(sq) / 8) }

// FromFileRank builds a square from a file and rank index.
func FromFileRank(f File, r Rank) Square { return Square(int(r)*8 + int(f)) }

var fileNames = "abcdefgh"

// String renders a square in algebraic form, e.g. "e4".
func (sq Square) String() string {
	if sq < A1 || sq > H8 {
		return "-"
	}
	return fmt.Sprintf("%c%d", fileNames[sq.File()], sq.Rank()+1)
}

// ParseSquare parses an algebraic square string such as "e4".
// Reports ok=false for anything that is not a valid square.
func ParseSquare(s string) (sq Square, ok bool) {
	if len(s) != 2 {
		return 0, false
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return 0, false
	}
	return FromFileRank(File(f-'a'), Rank(r-'1')), true
}

// Color identifies the side to move or the owner of a piece.
type Color int

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece identifies a piece type, independent of color.
type Piece int

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieces = 6
)

// CastlingRights is the per-color castling state.
type CastlingRights int

const (
	NoRights CastlingRights = iota
	KingSide
	QueenSide
	Both
)

// Has reports whether the right to castle to the given side is present.
func (r CastlingRights) Has(side CastlingRights) bool {
	switch side {
	case KingSide:
		return r == KingSide || r == Both
	case QueenSide:
		return r == QueenSide || r == Both
	default:
		return false
	}
}

// Without returns r with the given side's right revoked.
func (r CastlingRights) Without(side CastlingRights) CastlingRights {
	has := func(x CastlingRights) bool { return r == x || r == Both }
	k, q := has(KingSide), has(QueenSide)
	switch side {
	case KingSide:
		k = false
	case QueenSide:
		q = false
	}
	switch {
	case k && q:
		return Both
	case k:
		return KingSide
	case q:
		return QueenSide
	default:
		return NoRights
	}
}
