package board

import (
	"errors"
	"testing"

	"github.com/corvid-chess/corvid/internal/square"
	"github.com/corvid-chess/corvid/internal/zobrist"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestParseFENStartingPosition(t *testing.T) {
	keys := zobrist.NewKeys()
	b, err := ParseFEN(keys, startFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if b.ActiveColor != square.White {
		t.Error("active color should be white")
	}
	if b.CastlingRights[square.White] != square.Both || b.CastlingRights[square.Black] != square.Both {
		t.Error("both sides should have full castling rights")
	}
	if b.EnPassant != square.NoSquare {
		t.Error("starting position has no en passant target")
	}
	if b.HalfmoveClock != 0 || b.FullmoveCounter != 1 {
		t.Errorf("counters = %d,%d want 0,1", b.HalfmoveClock, b.FullmoveCounter)
	}
	pc, c, ok := b.GetPiece(square.E1)
	if !ok || pc != square.King || c != square.White {
		t.Error("e1 should hold the white king")
	}
}

func TestParseFENRoundTrip(t *testing.T) {
	keys := zobrist.NewKeys()
	b, err := ParseFEN(keys, startFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := b.String(); got != startFEN {
		t.Errorf("round trip = %q, want %q", got, startFEN)
	}
}

func TestParseFENPadsMissingFields(t *testing.T) {
	keys := zobrist.NewKeys()
	b, err := ParseFEN(keys, "8/8/8/8/8/8/8/4K2k w - -")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if b.HalfmoveClock != 0 || b.FullmoveCounter != 1 {
		t.Errorf("padded counters = %d,%d want 0,1", b.HalfmoveClock, b.FullmoveCounter)
	}
}

func TestParseFENRejectsGarbage(t *testing.T) {
	keys := zobrist.NewKeys()
	cases := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPX/RNBQKBNR w KQkq - 0 1",
	}
	for _, fen := range cases {
		if _, err := ParseFEN(keys, fen); err == nil || !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q) = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

// Non-canonical castling spellings are semantically equivalent to an
// accepted spelling (same rights, letters reordered or repeated) but
// must still be rejected: only the 16 literal spellings are valid FEN.
func TestParseFENRejectsNonCanonicalCastling(t *testing.T) {
	keys := zobrist.NewKeys()
	cases := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w qk - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KK - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w qkKQ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w kqKQ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w x - 0 1",
	}
	for _, fen := range cases {
		if _, err := ParseFEN(keys, fen); err == nil || !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q) = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestParseFENAcceptsAllSixteenCastlingSpellings(t *testing.T) {
	keys := zobrist.NewKeys()
	spellings := []string{
		"-", "q", "k", "kq", "Q", "Qq", "Qk", "Qkq",
		"K", "Kq", "Kk", "Kkq", "KQ", "KQq", "KQk", "KQkq",
	}
	for _, field := range spellings {
		fen := "4k3/8/8/8/8/8/8/4K3 w " + field + " - 0 1"
		if _, err := ParseFEN(keys, fen); err != nil {
			t.Errorf("ParseFEN with castling field %q: %v", field, err)
		}
	}
}

func TestParseFENEnPassantSquare(t *testing.T) {
	keys := zobrist.NewKeys()
	b, err := ParseFEN(keys, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if b.EnPassant != square.D6 {
		t.Errorf("EnPassant = %v, want d6", b.EnPassant)
	}
}

func TestParseFENHashMatchesRecompute(t *testing.T) {
	keys := zobrist.NewKeys()
	b, err := ParseFEN(keys, startFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if b.Hash != b.ComputeHash(keys) {
		t.Fatal("hash mismatch right after parsing")
	}
}
