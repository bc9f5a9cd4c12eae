// Package bitboard implements the 64-bit set-of-squares value type that
// the rest of the engine builds on.
package bitboard

import (
	"math/bits"

	"github.com/corvid-chess/corvid/internal/square"
)

// Board is a 64-bit set of squares. Bit i is set iff square i is a member.
type Board uint64

// Of returns the singleton bitboard containing only sq.
func Of(sq square.Square) Board { return Board(1) << uint(sq) }

// Set returns b with sq added.
func (b Board) Set(sq square.Square) Board { return b | Of(sq) }

// Clear returns b with sq removed.
func (b Board) Clear(sq square.Square) Board { return b &^ Of(sq) }

// Has reports whether sq is a member of b.
func (b Board) Has(sq square.Square) bool { return b&Of(sq) != 0 }

// Count returns the population count (number of set bits).
func (b Board) Count() int { return bits.OnesCount64(uint64(b)) }

// Empty reports whether b has no set bits.
func (b Board) Empty() bool { return b == 0 }

// PopLSB clears and returns the square of the least significant set bit.
// Calling PopLSB on an empty board is a programmer error and returns -1.
func (b *Board) PopLSB() square.Square {
	if *b == 0 {
		return -1
	}
	sq := square.Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// LSB returns the square of the least significant set bit without
// modifying b. Returns -1 if b is empty.
func (b Board) LSB() square.Square {
	if b == 0 {
		return -1
	}
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// Squares returns the set bits as squares in ascending index order.
func (b Board) Squares() []square.Square {
	out := make([]square.Square, 0, b.Count())
	for t := b; t != 0; {
		out = append(out, t.PopLSB())
	}
	return out
}
