package square

import "testing"

func TestFileRank(t *testing.T) {
	cases := []struct {
		sq   Square
		file File
		rank Rank
	}{
		{A1, 0, 0},
		{H1, 7, 0},
		{A8, 0, 7},
		{H8, 7, 7},
		{E4, 4, 3},
	}
	for _, c := range cases {
		if got := c.sq.File(); got != c.file {
			t.Errorf("%v.File() = %d, want %d", c.sq, got, c.file)
		}
		if got := c.sq.Rank(); got != c.rank {
			t.Errorf("%v.Rank() = %d, want %d", c.sq, got, c.rank)
		}
		if got := FromFileRank(c.file, c.rank); got != c.sq {
			t.Errorf("FromFileRank(%d,%d) = %v, want %v", c.file, c.rank, got, c.sq)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		s := sq.String()
		got, ok := ParseSquare(s)
		if !ok {
			t.Fatalf("ParseSquare(%q) failed for square %v", s, sq)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %v, want %v", s, got, sq)
		}
	}
}

func TestParseSquareRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "a", "a0", "i1", "a9", "zz"} {
		if _, ok := ParseSquare(s); ok {
			t.Errorf("ParseSquare(%q) unexpectedly succeeded", s)
		}
	}
}

func TestColorOther(t *testing.T) {
	if White.Other() != Black || Black.Other() != White {
		t.Fatal("Other() is not an involution")
	}
}

func TestCastlingRights(t *testing.T) {
	r := Both
	if !r.Has(KingSide) || !r.Has(QueenSide) {
		t.Fatal("Both should have both rights")
	}
	r = r.Without(KingSide)
	if r != QueenSide {
		t.Fatalf("Both.Without(KingSide) = %v, want QueenSide", r)
	}
	r = r.Without(QueenSide)
	if r != NoRights {
		t.Fatalf("QueenSide.Without(QueenSide) = %v, want NoRights", r)
	}
}
