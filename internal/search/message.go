package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/corvid-chess/corvid/internal/move"
)

// Message is something Search sends back to its driver over the
// message channel: an Info progress report, a final BestMove, an
// InfoString note or a PerftResult. Closed for the same reason
// Command is.
type Message interface {
	isMessage()
}

// Info reports the outcome of one completed iterative-deepening
// iteration.
type Info struct {
	Depth int
	Score int32
	// Mate, when non-zero, overrides Score as a "mate in N moves"
	// report (negative means the side to move is being mated).
	Mate  int
	Nodes uint64
	Time  time.Duration
	PV    []move.Ply
}

// BestMove is the final answer to a SearchTime/SearchDepth command.
type BestMove struct {
	Move move.Ply
}

// InfoString is a free-text progress note, e.g. reporting that the
// root position has no legal moves to search.
type InfoString struct {
	Text string
}

// PerftResult answers a Perft command.
type PerftResult struct {
	Depth int
	Nodes uint64
	Time  time.Duration
}

func (Info) isMessage()        {}
func (BestMove) isMessage()    {}
func (PerftResult) isMessage() {}
func (InfoString) isMessage()  {}

func (i InfoString) String() string {
	return "info string " + i.Text
}

// String renders an Info the way a UCI "info" line would, without
// depending on (or implementing) the surrounding UCI protocol.
func (i Info) String() string {
	var pv strings.Builder
	for n, m := range i.PV {
		if n > 0 {
			pv.WriteByte(' ')
		}
		pv.WriteString(m.UCI())
	}
	if i.Mate != 0 {
		return fmt.Sprintf("info depth %d score mate %d nodes %d time %d pv %s",
			i.Depth, i.Mate, i.Nodes, i.Time.Milliseconds(), pv.String())
	}
	return fmt.Sprintf("info depth %d score cp %d nodes %d time %d pv %s",
		i.Depth, i.Score, i.Nodes, i.Time.Milliseconds(), pv.String())
}

func (b BestMove) String() string {
	return "bestmove " + b.Move.UCI()
}
