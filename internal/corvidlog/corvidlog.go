// Package corvidlog wires up github.com/op/go-logging for the
// engine's subsystems. Each package that wants to log gets its own
// named logger (e.g. "search", "movegen"), matching the per-module
// logger pattern FrankyGo follows.
package corvidlog

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:-7.7s} %{module}: %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// Get returns the named logger for a subsystem, e.g. Get("search").
func Get(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}

// SetLevel adjusts the minimum level logged for a given module, or for
// every module if module is "".
func SetLevel(level logging.Level, module string) {
	logging.SetLevel(level, module)
}
