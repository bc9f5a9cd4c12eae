package history

import "testing"

func TestFiftyMoveDraw(t *testing.T) {
	var h BoardHistory
	h.Push(1, 0)
	h.Push(2, 1)
	h.Push(3, 100)
	if !h.IsFiftyMoveDraw() {
		t.Fatal("halfmove clock of 100 should be a fifty-move draw")
	}
}

func TestNoFiftyMoveDrawBelowThreshold(t *testing.T) {
	var h BoardHistory
	h.Push(1, 99)
	if h.IsFiftyMoveDraw() {
		t.Fatal("halfmove clock of 99 should not yet be a draw")
	}
}

func TestThreefoldRepetition(t *testing.T) {
	var h BoardHistory
	h.Push(42, 0)
	h.Push(99, 1)
	h.Push(42, 2)
	h.Push(99, 3)
	h.Push(42, 4)
	if !h.IsThreefoldRepetition() {
		t.Fatal("hash 42 occurred three times within the halfmove clock window")
	}
}

func TestThreefoldRepetitionResetByCapture(t *testing.T) {
	var h BoardHistory
	h.Push(42, 0)
	h.Push(99, 1)
	h.Push(42, 0) // clock reset to 0: a capture or pawn move occurred
	h.Push(99, 1)
	h.Push(42, 0)
	if h.IsThreefoldRepetition() {
		t.Fatal("a reset halfmove clock should prevent counting repetitions across it")
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	var h BoardHistory
	h.Push(1, 0)
	h.Push(2, 1)
	h.Pop()
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
}

func TestPopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic popping an empty history")
		}
	}()
	var h BoardHistory
	h.Pop()
}
