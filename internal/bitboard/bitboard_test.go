package bitboard

import (
	"reflect"
	"testing"

	"github.com/corvid-chess/corvid/internal/square"
)

func TestSetClearHas(t *testing.T) {
	var b Board
	b = b.Set(square.E4)
	if !b.Has(square.E4) {
		t.Fatal("expected E4 to be set")
	}
	if b.Has(square.E5) {
		t.Fatal("E5 should not be set")
	}
	b = b.Clear(square.E4)
	if b.Has(square.E4) {
		t.Fatal("E4 should have been cleared")
	}
	if !b.Empty() {
		t.Fatal("expected empty board")
	}
}

func TestCount(t *testing.T) {
	var b Board
	b = b.Set(square.A1).Set(square.H8).Set(square.E4)
	if got := b.Count(); got != 3 {
		t.Fatalf("Count() = %d, want 3", got)
	}
}

func TestPopLSBOrder(t *testing.T) {
	b := Board(0).Set(square.H8).Set(square.A1).Set(square.E4)
	var got []square.Square
	for !b.Empty() {
		got = append(got, b.PopLSB())
	}
	want := []square.Square{square.A1, square.E4, square.H8}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PopLSB order = %v, want %v", got, want)
	}
}

func TestSquaresAscending(t *testing.T) {
	b := Board(0).Set(square.D4).Set(square.A1).Set(square.H1)
	got := b.Squares()
	// ascending by index: A1(0) < H1(7) < D4(27)
	want := []square.Square{square.A1, square.H1, square.D4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Squares() = %v, want %v", got, want)
	}
}

func TestPopLSBEmpty(t *testing.T) {
	var b Board
	if sq := b.PopLSB(); sq != -1 {
		t.Fatalf("PopLSB() on empty board = %v, want -1", sq)
	}
}
