package search

import "time"

// Command is something a driver sends to a running Search over its
// command channel. Per spec.md §6 there are exactly four kinds; this
// is a closed interface rather than a tagged union: its unexported
// method keeps other packages from adding Command kinds. Type switches
// over it are not checked for exhaustiveness, so an unhandled kind is
// silently ignored.
type Command interface {
	isCommand()
}

// SearchTime asks the engine to search until Duration elapses (or a
// Stop arrives, or the search exhausts config.Engine.MaxDepth).
type SearchTime struct {
	Duration time.Duration
}

// SearchDepth asks the engine to search to a fixed depth, with no time
// budget beyond config.Engine.DefaultMoveTime as a safety net.
type SearchDepth struct {
	Depth int
}

// Perft asks the engine to run the perft node-count benchmark to the
// given depth instead of a real search.
type Perft struct {
	Depth int
}

// Stop asks any in-flight search to return its best move immediately.
type Stop struct{}

func (SearchTime) isCommand()  {}
func (SearchDepth) isCommand() {}
func (Perft) isCommand()       {}
func (Stop) isCommand()        {}
