// Package sample composes the calculator helpers into the program's exit status.
package sample

import (
	"log/slog"

	"github.com/mkelk/toybox/internal/calculator"
)

// Result holds the intermediate values behind the exit status.
type Result struct {
	Difference int
	Truncated  int
	Status     int
}

// Evaluate computes Subtract(4, 5) + Func(3.4, 5.8).
func Evaluate() Result {
	r := calculator.Subtract(4, 5)
	s := calculator.Func(3.4, 5.8)
	return Result{Difference: r, Truncated: s, Status: r + s}
}

// Main returns the exit status. args are accepted for symmetry with a
// process entry point and are not read.
func Main(args []string) int {
	return Evaluate().Status
}

// Trace logs the intermediate values at debug level and returns the status.
func Trace(logger *slog.Logger) int {
	res := Evaluate()
	logger.Debug("evaluated",
		"difference", res.Difference,
		"truncated", res.Truncated,
		"status", res.Status,
	)
	return res.Status
}
