// Package position implements the bitboard position representation
// described in spec.md §3/§4.3: piece placement as 2×6 bitboards, side
// to move, per-color castling rights, an optional en passant target,
// and an incrementally maintained Zobrist hash.
package position

import (
	"github.com/corvid-chess/corvid/internal/attacks"
	"github.com/corvid-chess/corvid/internal/bitboard"
	"github.com/corvid-chess/corvid/internal/move"
	"github.com/corvid-chess/corvid/internal/square"
	"github.com/corvid-chess/corvid/internal/zobrist"
)

// Position is an immutable value: MakeMove returns a new Position
// rather than mutating the receiver.
type Position struct {
	Pieces         [2][square.NumPieces]bitboard.Board
	ActiveColor    square.Color
	CastlingRights [2]square.CastlingRights
	EnPassant      square.Square // square.NoSquare if not set
	Hash           uint64
}

// New returns the position with no pieces placed, White to move, no
// castling rights and no en passant target. Most callers want a FEN
// parse instead (see internal/board); this is primarily useful for
// tests that build positions piece by piece.
func New() Position {
	return Position{EnPassant: square.NoSquare}
}

// GetPiece returns the piece (and its color) standing on sq, if any.
func (p Position) GetPiece(sq square.Square) (pc square.Piece, c square.Color, ok bool) {
	for color := square.White; color <= square.Black; color++ {
		for piece := square.Pawn; piece < square.NumPieces; piece++ {
			if p.Pieces[color][piece].Has(sq) {
				return piece, color, true
			}
		}
	}
	return 0, 0, false
}

// Occupancy returns the union of all of one color's piece bitboards.
func (p Position) Occupancy(c square.Color) bitboard.Board {
	var b bitboard.Board
	for piece := square.Pawn; piece < square.NumPieces; piece++ {
		b |= p.Pieces[c][piece]
	}
	return b
}

// Occupancies returns the union of both colors' piece bitboards.
func (p Position) Occupancies() bitboard.Board {
	return p.Occupancy(square.White) | p.Occupancy(square.Black)
}

// IsSquareAttackedBy reports whether sq is attacked by any piece of
// color by. Implements spec.md §4.3: an imaginary piece of each type is
// placed on sq and its attack set intersected with the enemy's
// same-type bitboard.
func (p Position) IsSquareAttackedBy(tables *attacks.Tables, sq square.Square, by square.Color) bool {
	occ := p.Occupancies()

	// Pawns: attack pattern depends on color, so the lookup is indexed
	// by the *opposite* color of the attacker, standing at sq.
	if tables.PawnAttacks(sq, by.Other())&p.Pieces[by][square.Pawn] != 0 {
		return true
	}
	if tables.KnightAttacks(sq)&p.Pieces[by][square.Knight] != 0 {
		return true
	}
	if tables.KingAttacks(sq)&p.Pieces[by][square.King] != 0 {
		return true
	}
	bishopsQueens := p.Pieces[by][square.Bishop] | p.Pieces[by][square.Queen]
	if attacks.BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.Pieces[by][square.Rook] | p.Pieces[by][square.Queen]
	if attacks.RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// IsLegal reports whether the side that just moved (the color opposite
// ActiveColor) is not in check. This is the legality test the
// generate-then-filter move generation pipeline relies on (spec.md
// §4.3/§4.5): a candidate move is legal iff the resulting position is
// legal.
func (p Position) IsLegal(tables *attacks.Tables) bool {
	justMoved := p.ActiveColor.Other()
	kingSq := p.Pieces[justMoved][square.King].LSB()
	if kingSq < 0 {
		// No king on the board is an invariant violation elsewhere; here
		// it simply cannot be "in check".
		return true
	}
	return !p.IsSquareAttackedBy(tables, kingSq, p.ActiveColor)
}

// InCheck reports whether the side to move is currently in check.
func (p Position) InCheck(tables *attacks.Tables) bool {
	kingSq := p.Pieces[p.ActiveColor][square.King].LSB()
	if kingSq < 0 {
		return false
	}
	return p.IsSquareAttackedBy(tables, kingSq, p.ActiveColor.Other())
}

// MakeMove returns the position resulting from applying m. It is the
// caller's responsibility to ensure m is at least pseudo-legal;
// MakeMove performs no legality check itself (that is IsLegal's job,
// per the generate-then-filter pipeline in spec.md §4.5).
func (p Position) MakeMove(keys *zobrist.Keys, m move.Ply) Position {
	np := p

	us := p.ActiveColor
	them := us.Other()
	source := m.Source()
	target := m.Target()
	piece := m.Piece()

	oldEnPassant := p.EnPassant
	isCastle := piece == square.King && abs(int(target)-int(source)) == 2
	isEnPassant := piece == square.Pawn && oldEnPassant != square.NoSquare && target == oldEnPassant

	// 1. Clear any captured piece.
	if captured, ok := m.Captured(); ok {
		capSq := target
		if isEnPassant {
			capSq = square.FromFileRank(target.File(), source.Rank())
		}
		np.removePiece(keys, them, captured, capSq)
	}

	// 2. Move the piece (promoted piece if applicable).
	np.removePiece(keys, us, piece, source)
	placed := piece
	if promo, ok := m.Promotion(); ok {
		placed = promo
	}
	np.placePiece(keys, us, placed, target)

	// 3. Castling also relocates the rook.
	if isCastle {
		rookFrom, rookTo := castlingRookSquares(target)
		np.removePiece(keys, us, square.Rook, rookFrom)
		np.placePiece(keys, us, square.Rook, rookTo)
	}

	// 4. Update castling rights.
	np.updateCastlingRights(keys, us, piece, source)
	if captured, ok := m.Captured(); ok && captured == square.Rook && !isEnPassant {
		np.revokeRightsIfRookSquare(keys, them, target)
	}

	// 5. Update en passant target.
	if oldEnPassant != square.NoSquare {
		np.Hash ^= keys.EnPassantKey(oldEnPassant)
	}
	np.EnPassant = square.NoSquare
	if piece == square.Pawn {
		diff := int(target) - int(source)
		if diff == 16 {
			np.EnPassant = source + 8
		} else if diff == -16 {
			np.EnPassant = source - 8
		}
	}
	if np.EnPassant != square.NoSquare {
		np.Hash ^= keys.EnPassantKey(np.EnPassant)
	}

	// 6. Toggle side to move.
	np.ActiveColor = them
	np.Hash ^= keys.SideToMoveKey()

	return np
}

func castlingRookSquares(kingTarget square.Square) (from, to square.Square) {
	switch kingTarget {
	case square.G1:
		return square.H1, square.F1
	case square.C1:
		return square.A1, square.D1
	case square.G8:
		return square.H8, square.F8
	case square.C8:
		return square.A8, square.D8
	default:
		panic("position: invalid castling king target square")
	}
}

func (p *Position) updateCastlingRights(keys *zobrist.Keys, c square.Color, piece square.Piece, source square.Square) {
	switch piece {
	case square.King:
		p.setCastlingRights(keys, c, square.NoRights)
	case square.Rook:
		p.revokeRightsIfRookSquare(keys, c, source)
	}
}

func (p *Position) revokeRightsIfRookSquare(keys *zobrist.Keys, c square.Color, sq square.Square) {
	var kingSide, queenSide square.Square
	if c == square.White {
		kingSide, queenSide = square.H1, square.A1
	} else {
		kingSide, queenSide = square.H8, square.A8
	}
	switch sq {
	case kingSide:
		p.setCastlingRights(keys, c, p.CastlingRights[c].Without(square.KingSide))
	case queenSide:
		p.setCastlingRights(keys, c, p.CastlingRights[c].Without(square.QueenSide))
	}
}

func (p *Position) setCastlingRights(keys *zobrist.Keys, c square.Color, rights square.CastlingRights) {
	if p.CastlingRights[c] == rights {
		return
	}
	p.Hash ^= keys.CastlingKey(c, p.CastlingRights[c])
	p.CastlingRights[c] = rights
	p.Hash ^= keys.CastlingKey(c, rights)
}

func (p *Position) placePiece(keys *zobrist.Keys, c square.Color, piece square.Piece, sq square.Square) {
	p.Pieces[c][piece] = p.Pieces[c][piece].Set(sq)
	p.Hash ^= keys.PieceKey(c, piece, sq)
}

func (p *Position) removePiece(keys *zobrist.Keys, c square.Color, piece square.Piece, sq square.Square) {
	p.Pieces[c][piece] = p.Pieces[c][piece].Clear(sq)
	p.Hash ^= keys.PieceKey(c, piece, sq)
}

// ComputeHash recomputes the Zobrist hash of p from scratch. Used by
// tests to verify the incremental hash maintained by MakeMove matches
// a full recompute (spec.md §8 invariant).
func (p Position) ComputeHash(keys *zobrist.Keys) uint64 {
	var h uint64
	for c := square.White; c <= square.Black; c++ {
		for piece := square.Pawn; piece < square.NumPieces; piece++ {
			for bb := p.Pieces[c][piece]; !bb.Empty(); {
				h ^= keys.PieceKey(c, piece, bb.PopLSB())
			}
		}
		h ^= keys.CastlingKey(c, p.CastlingRights[c])
	}
	if p.EnPassant != square.NoSquare {
		h ^= keys.EnPassantKey(p.EnPassant)
	}
	if p.ActiveColor == square.Black {
		h ^= keys.SideToMoveKey()
	}
	return h
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
