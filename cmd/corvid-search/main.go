// corvid-search is a minimal driver for internal/search: it sets up a
// Search over the starting position, sends it a SearchDepth command,
// and prints every Info and the final BestMove as they arrive on the
// message channel. It does not speak UCI over stdin/stdout (out of
// scope per SPEC_FULL.md); it exists to exercise the Command/Message
// channel pair end to end.
package main

import (
	"flag"
	"log"

	"github.com/corvid-chess/corvid/internal/attacks"
	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/config"
	"github.com/corvid-chess/corvid/internal/eval"
	"github.com/corvid-chess/corvid/internal/history"
	"github.com/corvid-chess/corvid/internal/search"
	"github.com/corvid-chess/corvid/internal/zobrist"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	depth := flag.Int("depth", 6, "fixed search depth")
	fen := flag.String("fen", startFEN, "FEN of the position to search from")
	flag.Parse()

	tables := attacks.NewTables()
	keys := zobrist.NewKeys()
	cfg := config.Default()

	b, err := board.ParseFEN(keys, *fen)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	s := search.New(tables, keys, cfg, eval.Material)

	hist := &history.BoardHistory{}
	hist.Push(b.Position.Hash, b.HalfmoveClock)

	go s.Run(b, hist)

	s.Commands() <- search.SearchDepth{Depth: *depth}

	for msg := range s.Messages() {
		switch m := msg.(type) {
		case search.Info:
			log.Print(m.String())
		case search.BestMove:
			log.Print(m.String())
			close(s.Commands())
			return
		case search.InfoString:
			log.Print(m.String())
			close(s.Commands())
			return
		}
	}
}
