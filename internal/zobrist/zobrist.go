// Package zobrist implements Zobrist hashing of position state: random
// keys are XORed together for every occupied square, the side to move,
// castling rights and the en passant file, so equal positions hash
// equal and the hash can be maintained incrementally across MakeMove.
package zobrist

import (
	"math/rand/v2"

	"github.com/corvid-chess/corvid/internal/square"
)

// Keys holds the process-wide random table used to compute and
// incrementally update position hashes. Construct once via NewKeys and
// share read-only, mirroring the Tables pattern in internal/attacks.
type Keys struct {
	piece    [2][square.NumPieces][64]uint64
	file     [8]uint64
	castling [2][4]uint64 // indexed by color, then square.CastlingRights
	sideKey  uint64
}

// NewKeys builds a fresh table of pseudo-random keys. Call once at
// startup; two independently constructed Keys values are NOT
// interchangeable, since their random tables differ.
func NewKeys() *Keys {
	k := &Keys{}
	for c := square.White; c <= square.Black; c++ {
		for p := square.Pawn; p < square.NumPieces; p++ {
			for sq := square.A1; sq <= square.H8; sq++ {
				k.piece[c][p][sq] = rand.Uint64()
			}
		}
		for side := 0; side < 4; side++ {
			k.castling[c][side] = rand.Uint64()
		}
	}
	for f := 0; f < 8; f++ {
		k.file[f] = rand.Uint64()
	}
	k.sideKey = rand.Uint64()
	return k
}

// PieceKey returns the key for a piece of the given color and type
// standing on sq.
func (k *Keys) PieceKey(c square.Color, p square.Piece, sq square.Square) uint64 {
	return k.piece[c][p][sq]
}

// EnPassantKey returns the key for the en passant target's file.
func (k *Keys) EnPassantKey(sq square.Square) uint64 {
	return k.file[sq.File()]
}

// CastlingKey returns the key for one color's castling-rights state.
func (k *Keys) CastlingKey(c square.Color, rights square.CastlingRights) uint64 {
	return k.castling[c][rights]
}

// SideToMoveKey returns the key XORed in whenever Black is to move.
func (k *Keys) SideToMoveKey() uint64 {
	return k.sideKey
}
