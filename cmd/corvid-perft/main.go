// corvid-perft walks the legal move tree from a FEN position to a
// fixed depth and counts leaf nodes, for validating move generation
// against the well-known perft reference values.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/corvid-chess/corvid/internal/attacks"
	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/perft"
	"github.com/corvid-chess/corvid/internal/zobrist"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	depth := flag.Int("depth", 5, "perft depth")
	fen := flag.String("fen", startFEN, "FEN of the position to search from")
	divide := flag.Bool("divide", false, "print a per-root-move node count breakdown")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	memprofile := flag.String("memprofile", "", "file to write a heap profile to")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	tables := attacks.NewTables()
	keys := zobrist.NewKeys()

	b, err := board.ParseFEN(keys, *fen)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	start := time.Now()

	if *divide {
		counts := perft.Divide(tables, keys, b.Position, *depth)
		var total uint64
		for uci, n := range counts {
			log.Printf("%s: %d", uci, n)
			total += n
		}
		log.Printf("total: %d", total)
	} else {
		nodes := perft.Count(tables, keys, b.Position, *depth)
		log.Printf("nodes: %d", nodes)
	}

	log.Printf("elapsed: %s", time.Since(start))

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}
