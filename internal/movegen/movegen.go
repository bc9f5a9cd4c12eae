// Package movegen generates legal moves from a position using the
// generate-then-filter pipeline described in spec.md §4.5: pseudo-legal
// candidates are produced per piece type, then each is applied with
// Position.MakeMove and kept only if Position.IsLegal reports the
// resulting position leaves the mover's king safe.
package movegen

import (
	"errors"

	"github.com/corvid-chess/corvid/internal/attacks"
	"github.com/corvid-chess/corvid/internal/bitboard"
	"github.com/corvid-chess/corvid/internal/corvidlog"
	"github.com/corvid-chess/corvid/internal/move"
	"github.com/corvid-chess/corvid/internal/position"
	"github.com/corvid-chess/corvid/internal/square"
	"github.com/corvid-chess/corvid/internal/zobrist"
)

var log = corvidlog.Get("movegen")

// ErrInvalidUCIMove is returned by ParseUCIMove when a move string does
// not correspond to any legal move in the given position.
var ErrInvalidUCIMove = errors.New("movegen: move is not legal in this position")

// Generate returns every legal move available to the side to move in p.
func Generate(tables *attacks.Tables, keys *zobrist.Keys, p position.Position) move.List {
	var pseudo move.List
	genPawnMoves(tables, p, &pseudo)
	genKnightMoves(tables, p, &pseudo)
	genSliderMoves(p, &pseudo, square.Bishop)
	genSliderMoves(p, &pseudo, square.Rook)
	genSliderMoves(p, &pseudo, square.Queen)
	genKingMoves(tables, p, &pseudo)

	var legal move.List
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		next := p.MakeMove(keys, m)
		if next.IsLegal(tables) {
			legal.Push(m)
		}
	}
	return legal
}

// ParseUCIMove resolves a UCI long-algebraic move string (e.g. "e2e4",
// "e7e8q") against the legal moves available in p. Returns
// ErrInvalidUCIMove if no legal move matches.
func ParseUCIMove(tables *attacks.Tables, keys *zobrist.Keys, p position.Position, uci string) (move.Ply, error) {
	legal := Generate(tables, keys, p)
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i).UCI() == uci {
			return legal.Get(i), nil
		}
	}
	log.Warningf("move %q not found among %d legal moves", uci, legal.Len())
	return 0, ErrInvalidUCIMove
}

func genPawnMoves(tables *attacks.Tables, p position.Position, l *move.List) {
	us := p.ActiveColor
	them := us.Other()
	occ := p.Occupancies()
	enemies := p.Occupancy(them)

	dir, startRank, promoRank := 8, square.Rank(1), square.Rank(7)
	if us == square.Black {
		dir, startRank, promoRank = -8, square.Rank(6), square.Rank(0)
	}

	var epTarget bitboard.Board
	if p.EnPassant != square.NoSquare {
		epTarget = bitboard.Of(p.EnPassant)
	}

	for pawns := p.Pieces[us][square.Pawn]; !pawns.Empty(); {
		from := pawns.PopLSB()
		fwd := square.Square(int(from) + dir)

		if fwd >= square.A1 && fwd <= square.H8 && !occ.Has(fwd) {
			pushPawnMove(l, from, fwd, promoRank)
			if from.Rank() == startRank {
				dbl := square.Square(int(from) + 2*dir)
				if !occ.Has(dbl) {
					l.Push(move.New(from, dbl, square.Pawn))
				}
			}
		}

		targets := tables.PawnAttacks(from, us) & (enemies | epTarget)
		for targets != 0 {
			to := targets.PopLSB()
			captured := square.Pawn // en passant always captures a pawn
			if pc, _, ok := p.GetPiece(to); ok {
				captured = pc
			}
			if to.Rank() == promoRank {
				for _, promo := range []square.Piece{square.Knight, square.Bishop, square.Rook, square.Queen} {
					l.Push(move.NewPromotion(from, to, square.Pawn, captured, promo))
				}
			} else {
				l.Push(move.NewCapture(from, to, square.Pawn, captured))
			}
		}
	}
}

func pushPawnMove(l *move.List, from, to square.Square, promoRank square.Rank) {
	if to.Rank() == promoRank {
		for _, promo := range []square.Piece{square.Knight, square.Bishop, square.Rook, square.Queen} {
			l.Push(move.NewPromotion(from, to, square.Pawn, -1, promo))
		}
		return
	}
	l.Push(move.New(from, to, square.Pawn))
}

func genKnightMoves(tables *attacks.Tables, p position.Position, l *move.List) {
	us := p.ActiveColor
	allies := p.Occupancy(us)
	for knights := p.Pieces[us][square.Knight]; !knights.Empty(); {
		from := knights.PopLSB()
		dests := tables.KnightAttacks(from) &^ allies
		pushQuietsAndCaptures(p, l, from, square.Knight, dests)
	}
}

func genSliderMoves(p position.Position, l *move.List, piece square.Piece) {
	us := p.ActiveColor
	allies := p.Occupancy(us)
	occ := p.Occupancies()
	for pieces := p.Pieces[us][piece]; !pieces.Empty(); {
		from := pieces.PopLSB()
		var dests bitboard.Board
		switch piece {
		case square.Bishop:
			dests = attacks.BishopAttacks(from, occ)
		case square.Rook:
			dests = attacks.RookAttacks(from, occ)
		case square.Queen:
			dests = attacks.QueenAttacks(from, occ)
		}
		dests &^= allies
		pushQuietsAndCaptures(p, l, from, piece, dests)
	}
}

func pushQuietsAndCaptures(p position.Position, l *move.List, from square.Square, piece square.Piece, dests bitboard.Board) {
	for dests != 0 {
		to := dests.PopLSB()
		if captured, _, ok := p.GetPiece(to); ok {
			l.Push(move.NewCapture(from, to, piece, captured))
		} else {
			l.Push(move.New(from, to, piece))
		}
	}
}

func genKingMoves(tables *attacks.Tables, p position.Position, l *move.List) {
	us := p.ActiveColor
	them := us.Other()
	allies := p.Occupancy(us)
	occ := p.Occupancies()

	kingSq := p.Pieces[us][square.King].LSB()
	if kingSq < 0 {
		return
	}
	dests := tables.KingAttacks(kingSq) &^ allies
	pushQuietsAndCaptures(p, l, kingSq, square.King, dests)

	if p.IsSquareAttackedBy(tables, kingSq, them) {
		return
	}

	var homeRank square.Rank
	var kingStart, kingSideTarget, queenSideTarget square.Square
	if us == square.White {
		homeRank, kingStart, kingSideTarget, queenSideTarget = 0, square.E1, square.G1, square.C1
	} else {
		homeRank, kingStart, kingSideTarget, queenSideTarget = 7, square.E8, square.G8, square.C8
	}
	if kingSq != kingStart {
		return
	}

	rights := p.CastlingRights[us]
	if rights.Has(square.KingSide) {
		f, g, h := square.FromFileRank(5, homeRank), square.FromFileRank(6, homeRank), square.FromFileRank(7, homeRank)
		if !occ.Has(f) && !occ.Has(g) && p.Pieces[us][square.Rook].Has(h) &&
			!p.IsSquareAttackedBy(tables, f, them) && !p.IsSquareAttackedBy(tables, g, them) {
			l.Push(move.New(kingStart, kingSideTarget, square.King))
		}
	}
	if rights.Has(square.QueenSide) {
		b, c, d, a := square.FromFileRank(1, homeRank), square.FromFileRank(2, homeRank), square.FromFileRank(3, homeRank), square.FromFileRank(0, homeRank)
		if !occ.Has(b) && !occ.Has(c) && !occ.Has(d) && p.Pieces[us][square.Rook].Has(a) &&
			!p.IsSquareAttackedBy(tables, c, them) && !p.IsSquareAttackedBy(tables, d, them) {
			l.Push(move.New(kingStart, queenSideTarget, square.King))
		}
	}
}
