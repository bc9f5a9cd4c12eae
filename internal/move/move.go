// Package move defines the encoded move representation ("Ply" in
// spec.md's terminology) and the bounded move list used by both move
// generation and search.
package move

import (
	"fmt"

	"github.com/corvid-chess/corvid/internal/square"
)

// none is the null-tag sentinel used for the captured/promotion piece
// sub-fields of the packed encoding (4 bits each, piece values are
// 0..5, so 15 is free to mean "absent").
const none = 15

// Ply is a single encoded move: source, target, moving piece, optional
// captured piece and optional promotion piece. Packed into a 32-bit
// integer (6+6+3+4+4 bits, with 9 spare) so a move list can hold raw
// integers rather than pointers or larger structs.
type Ply uint32

const (
	sourceShift = 0
	targetShift = 6
	pieceShift  = 12
	capShift    = 15
	promoShift  = 19

	sourceMask = 0x3F
	targetMask = 0x3F
	pieceMask  = 0x7
	capMask    = 0xF
	promoMask  = 0xF
)

// New encodes a non-capture, non-promotion move.
func New(source, target square.Square, piece square.Piece) Ply {
	return Encode(source, target, piece, -1, -1)
}

// NewCapture encodes a capturing move.
func NewCapture(source, target square.Square, piece, captured square.Piece) Ply {
	return Encode(source, target, piece, int(captured), -1)
}

// NewPromotion encodes a promotion move, with an optional capture.
func NewPromotion(source, target square.Square, piece, captured, promotion square.Piece) Ply {
	return Encode(source, target, piece, int(captured), int(promotion))
}

// Encode packs a move. Pass -1 for captured/promotion to mean "none".
func Encode(source, target square.Square, piece square.Piece, captured, promotion int) Ply {
	cap := none
	if captured >= 0 {
		cap = captured
	}
	promo := none
	if promotion >= 0 {
		promo = promotion
	}
	return Ply(uint32(source)<<sourceShift |
		uint32(target)<<targetShift |
		uint32(piece)<<pieceShift |
		uint32(cap)<<capShift |
		uint32(promo)<<promoShift)
}

// Source returns the move's origin square.
func (p Ply) Source() square.Square { return square.Square((uint32(p) >> sourceShift) & sourceMask) }

// Target returns the move's destination square.
func (p Ply) Target() square.Square { return square.Square((uint32(p) >> targetShift) & targetMask) }

// Piece returns the moving piece's type.
func (p Ply) Piece() square.Piece { return square.Piece((uint32(p) >> pieceShift) & pieceMask) }

// Captured returns the captured piece's type and whether a capture
// took place.
func (p Ply) Captured() (square.Piece, bool) {
	v := (uint32(p) >> capShift) & capMask
	if v == none {
		return 0, false
	}
	return square.Piece(v), true
}

// Promotion returns the promotion piece's type and whether this move
// is a promotion.
func (p Ply) Promotion() (square.Piece, bool) {
	v := (uint32(p) >> promoShift) & promoMask
	if v == none {
		return 0, false
	}
	return square.Piece(v), true
}

// IsCapture reports whether the move captures a piece (including en
// passant).
func (p Ply) IsCapture() bool {
	_, ok := p.Captured()
	return ok
}

// IsQuiet reports whether the move is neither a capture nor a
// promotion — the class of moves eligible for killer/history ordering.
func (p Ply) IsQuiet() bool {
	_, capture := p.Captured()
	_, promo := p.Promotion()
	return !capture && !promo
}

var promoSuffix = [square.NumPieces]byte{0, 'n', 'b', 'r', 'q', 0}

// UCI renders the move in UCI long-algebraic form:
// <source><target>[promotion], e.g. "e7e8q", "g1f3".
func (p Ply) UCI() string {
	s := p.Source().String() + p.Target().String()
	if promo, ok := p.Promotion(); ok {
		if c := promoSuffix[promo]; c != 0 {
			s += string(c)
		}
	}
	return s
}

func (p Ply) String() string {
	return fmt.Sprintf("%s (%v)", p.UCI(), p.Piece())
}
