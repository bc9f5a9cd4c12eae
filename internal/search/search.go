// Package search implements iterative-deepening negamax with
// alpha-beta pruning, a triangular PV table, killer and history move
// ordering, and quiescence search, per spec.md §4.7. A Search owns a
// single-producer/single-consumer pair of channels: a driver sends
// Command values in, and reads Message values out (spec.md §6).
package search

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/corvid-chess/corvid/internal/attacks"
	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/config"
	"github.com/corvid-chess/corvid/internal/corvidlog"
	"github.com/corvid-chess/corvid/internal/history"
	"github.com/corvid-chess/corvid/internal/move"
	"github.com/corvid-chess/corvid/internal/movegen"
	"github.com/corvid-chess/corvid/internal/perft"
	"github.com/corvid-chess/corvid/internal/position"
	"github.com/corvid-chess/corvid/internal/square"
	"github.com/corvid-chess/corvid/internal/zobrist"
	"github.com/op/go-logging"
)

// now is time.Now, indirected so tests can observe deadline handling
// without sleeping.
var now = time.Now

// Evaluator scores a position from the perspective of the side to
// move; positive means that side is ahead. internal/eval.Material is
// the default, swappable implementation.
type Evaluator func(position.Position) int32

// Search runs one engine "thread": a command channel in, a message
// channel out, and the negamax machinery in between. The zero value
// is not usable; construct with New.
type Search struct {
	tables *attacks.Tables
	keys   *zobrist.Keys
	cfg    config.Engine
	eval   Evaluator

	commands chan Command
	messages chan Message

	stop     atomic.Bool
	aborted  bool
	deadline time.Time

	log *logging.Logger
}

// New constructs a Search. tables and keys must come from
// attacks.NewTables and zobrist.NewKeys respectively.
func New(tables *attacks.Tables, keys *zobrist.Keys, cfg config.Engine, evaluator Evaluator) *Search {
	return &Search{
		tables:   tables,
		keys:     keys,
		cfg:      cfg,
		eval:     evaluator,
		commands: make(chan Command),
		messages: make(chan Message),
		log:      corvidlog.Get("search"),
	}
}

// Commands returns the send-only command channel a driver uses to
// control this Search.
func (s *Search) Commands() chan<- Command { return s.commands }

// Messages returns the receive-only channel a driver reads Info,
// BestMove and PerftResult values from.
func (s *Search) Messages() <-chan Message { return s.messages }

// Run services commands against start until the driver closes the
// command channel. SearchTime, SearchDepth and Perft each run to
// completion (or cancellation) on their own goroutine; Run keeps
// reading commands while they run so a Stop is never stuck behind a
// long search, per spec.md §6's cooperative-cancellation requirement.
func (s *Search) Run(start board.Board, hist *history.BoardHistory) {
	var wg sync.WaitGroup
	for cmd := range s.commands {
		switch c := cmd.(type) {
		case Stop:
			s.stop.Store(true)
		case SearchTime:
			wg.Wait()
			s.resetForNewSearch()
			budget := c.Duration
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.deadline = now().Add(budget)
				s.iterativeDeepening(start, hist, s.cfg.MaxDepth)
			}()
		case SearchDepth:
			wg.Wait()
			s.resetForNewSearch()
			depth := c.Depth
			if depth <= 0 || depth > s.cfg.MaxDepth {
				depth = s.cfg.MaxDepth
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.deadline = now().Add(s.cfg.DefaultMoveTime)
				s.iterativeDeepening(start, hist, depth)
			}()
		case Perft:
			wg.Wait()
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.runPerft(start, c.Depth)
			}()
		}
	}
	wg.Wait()
}

func (s *Search) resetForNewSearch() {
	s.stop.Store(false)
	s.aborted = false
	s.deadline = time.Time{}
}

func (s *Search) generate(pos position.Position) move.List {
	return movegen.Generate(s.tables, s.keys, pos)
}

func (s *Search) evaluate(pos position.Position) int32 {
	return s.eval(pos)
}

// makeMove returns the board resulting from playing m against b, with
// the halfmove clock and fullmove counter updated per spec.md §4.8:
// the clock resets on a capture or pawn move and otherwise increments;
// the fullmove counter advances after Black moves.
func (s *Search) makeMove(b board.Board, m move.Ply) board.Board {
	next := b
	next.Position = b.MakeMove(s.keys, m)

	if m.IsCapture() || m.Piece() == square.Pawn {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = b.HalfmoveClock + 1
	}

	next.FullmoveCounter = b.FullmoveCounter
	if b.ActiveColor == square.Black {
		next.FullmoveCounter++
	}

	return next
}

func (s *Search) runPerft(start board.Board, depth int) {
	t0 := now()
	nodes := perft.Count(s.tables, s.keys, start.Position, depth)
	s.messages <- PerftResult{Depth: depth, Nodes: nodes, Time: now().Sub(t0)}
}
