package position

import (
	"testing"

	"github.com/corvid-chess/corvid/internal/attacks"
	"github.com/corvid-chess/corvid/internal/move"
	"github.com/corvid-chess/corvid/internal/square"
	"github.com/corvid-chess/corvid/internal/zobrist"
)

func startingPosition() (Position, *attacks.Tables, *zobrist.Keys) {
	tables := attacks.NewTables()
	keys := zobrist.NewKeys()
	p := New()
	place := func(c square.Color, pc square.Piece, squares ...square.Square) {
		for _, sq := range squares {
			p.Pieces[c][pc] = p.Pieces[c][pc].Set(sq)
		}
	}
	place(square.White, square.Pawn, square.A2, square.B2, square.C2, square.D2, square.E2, square.F2, square.G2, square.H2)
	place(square.White, square.Rook, square.A1, square.H1)
	place(square.White, square.Knight, square.B1, square.G1)
	place(square.White, square.Bishop, square.C1, square.F1)
	place(square.White, square.Queen, square.D1)
	place(square.White, square.King, square.E1)
	place(square.Black, square.Pawn, square.A7, square.B7, square.C7, square.D7, square.E7, square.F7, square.G7, square.H7)
	place(square.Black, square.Rook, square.A8, square.H8)
	place(square.Black, square.Knight, square.B8, square.G8)
	place(square.Black, square.Bishop, square.C8, square.F8)
	place(square.Black, square.Queen, square.D8)
	place(square.Black, square.King, square.E8)
	p.CastlingRights[square.White] = square.Both
	p.CastlingRights[square.Black] = square.Both
	p.EnPassant = square.NoSquare
	p.Hash = p.ComputeHash(keys)
	return p, tables, keys
}

func TestIncrementalHashMatchesRecompute(t *testing.T) {
	p, _, keys := startingPosition()
	m := move.New(square.E2, square.E4, square.Pawn)
	next := p.MakeMove(keys, m)
	if next.Hash != next.ComputeHash(keys) {
		t.Fatalf("incremental hash %x != recomputed hash %x", next.Hash, next.ComputeHash(keys))
	}
}

func TestDoublePushSetsEnPassant(t *testing.T) {
	p, _, keys := startingPosition()
	next := p.MakeMove(keys, move.New(square.E2, square.E4, square.Pawn))
	if next.EnPassant != square.E3 {
		t.Fatalf("EnPassant = %v, want e3", next.EnPassant)
	}
}

func TestEnPassantCapture(t *testing.T) {
	p, _, keys := startingPosition()
	p = p.MakeMove(keys, move.New(square.E2, square.E4, square.Pawn))
	p = p.MakeMove(keys, move.New(square.A7, square.A6, square.Pawn))
	p = p.MakeMove(keys, move.New(square.E4, square.E5, square.Pawn))
	p = p.MakeMove(keys, move.New(square.D7, square.D5, square.Pawn))
	if p.EnPassant != square.D6 {
		t.Fatalf("EnPassant = %v, want d6", p.EnPassant)
	}
	capture := move.NewCapture(square.E5, square.D6, square.Pawn, square.Pawn)
	after := p.MakeMove(keys, capture)
	if after.Pieces[square.Black][square.Pawn].Has(square.D5) {
		t.Fatal("captured en passant pawn should be removed from d5")
	}
	if !after.Pieces[square.White][square.Pawn].Has(square.D6) {
		t.Fatal("capturing pawn should now stand on d6")
	}
	if after.Hash != after.ComputeHash(keys) {
		t.Fatal("hash mismatch after en passant capture")
	}
}

func TestKingMoveRevokesBothCastlingRights(t *testing.T) {
	p, _, keys := startingPosition()
	// The king steps onto e2 from the starting position without the
	// pawn there being cleared: MakeMove performs no legality or
	// occupancy check, and only castling rights and the hash are
	// examined here.
	next := p.MakeMove(keys, move.New(square.E1, square.E2, square.King))
	if next.CastlingRights[square.White] != square.NoRights {
		t.Fatalf("castling rights = %v, want NoRights after king move", next.CastlingRights[square.White])
	}
	if next.Hash != next.ComputeHash(keys) {
		t.Fatal("hash mismatch after king move")
	}
}

func TestRookMoveRevokesOneSide(t *testing.T) {
	p, _, keys := startingPosition()
	next := p.MakeMove(keys, move.New(square.A1, square.A2, square.Rook))
	if next.CastlingRights[square.White] != square.KingSide {
		t.Fatalf("castling rights = %v, want KingSide", next.CastlingRights[square.White])
	}
}

func TestCastlingRelocatesRook(t *testing.T) {
	p, _, keys := startingPosition()
	// Clear the squares between the white king and the h1 rook, and the
	// knight/bishop in the way, to build a castle-legal scratch position.
	p.Pieces[square.White][square.Knight] = p.Pieces[square.White][square.Knight].Clear(square.G1)
	p.Pieces[square.White][square.Bishop] = p.Pieces[square.White][square.Bishop].Clear(square.F1)
	p.Hash = p.ComputeHash(keys)

	castle := move.New(square.E1, square.G1, square.King)
	next := p.MakeMove(keys, castle)
	if !next.Pieces[square.White][square.Rook].Has(square.F1) {
		t.Fatal("rook should have relocated to f1")
	}
	if next.Pieces[square.White][square.Rook].Has(square.H1) {
		t.Fatal("rook should no longer be on h1")
	}
	if next.CastlingRights[square.White] != square.NoRights {
		t.Fatal("castling should revoke both white rights")
	}
	if next.Hash != next.ComputeHash(keys) {
		t.Fatal("hash mismatch after castling")
	}
}

func TestPromotion(t *testing.T) {
	p := New()
	p.Pieces[square.White][square.Pawn] = p.Pieces[square.White][square.Pawn].Set(square.E7)
	p.Pieces[square.White][square.King] = p.Pieces[square.White][square.King].Set(square.A1)
	p.Pieces[square.Black][square.King] = p.Pieces[square.Black][square.King].Set(square.A8)
	keys := zobrist.NewKeys()
	p.Hash = p.ComputeHash(keys)

	promo := move.NewPromotion(square.E7, square.E8, square.Pawn, -1, square.Queen)
	next := p.MakeMove(keys, promo)
	if next.Pieces[square.White][square.Pawn].Has(square.E8) {
		t.Fatal("promoted square should not hold a pawn")
	}
	if !next.Pieces[square.White][square.Queen].Has(square.E8) {
		t.Fatal("promoted square should hold a queen")
	}
}

func TestIsSquareAttackedByKnight(t *testing.T) {
	p := New()
	tables := attacks.NewTables()
	p.Pieces[square.White][square.Knight] = p.Pieces[square.White][square.Knight].Set(square.G1)
	if !p.IsSquareAttackedBy(tables, square.F3, square.White) {
		t.Fatal("f3 should be attacked by the knight on g1")
	}
	if p.IsSquareAttackedBy(tables, square.F4, square.White) {
		t.Fatal("f4 should not be attacked by the knight on g1")
	}
}

func TestIsLegalAfterLeavingKingInCheck(t *testing.T) {
	p := New()
	tables := attacks.NewTables()
	keys := zobrist.NewKeys()
	p.Pieces[square.White][square.King] = p.Pieces[square.White][square.King].Set(square.E1)
	p.Pieces[square.Black][square.Rook] = p.Pieces[square.Black][square.Rook].Set(square.E8)
	p.Pieces[square.Black][square.King] = p.Pieces[square.Black][square.King].Set(square.A8)
	p.Pieces[square.White][square.Knight] = p.Pieces[square.White][square.Knight].Set(square.B1)
	p.ActiveColor = square.White
	p.Hash = p.ComputeHash(keys)

	// moving the knight does nothing to block the check along the e-file.
	next := p.MakeMove(keys, move.New(square.B1, square.C3, square.Knight))
	if next.IsLegal(tables) {
		t.Fatal("leaving the king in check should be illegal")
	}

	// moving the king off the e-file resolves it.
	p2 := p.MakeMove(keys, move.New(square.E1, square.D1, square.King))
	if !p2.IsLegal(tables) {
		t.Fatal("moving the king out of check should be legal")
	}
}
