// Package coin decides the opening serve with a virtual coin toss.
package coin

import (
	"math/rand/v2"

	"github.com/roach88/rallyref/internal/match"
)

// Face is a side of the coin.
type Face string

const (
	Heads Face = "H"
	Tails Face = "T"
)

// String returns "Heads" or "Tails".
func (f Face) String() string {
	if f == Heads {
		return "Heads"
	}
	return "Tails"
}

// Other returns the opposite face.
func (f Face) Other() Face {
	if f == Heads {
		return Tails
	}
	return Heads
}

// Source yields random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Default returns a Source backed by the process-wide generator.
func Default() Source {
	return globalSource{}
}

// Flip tosses the coin once.
func Flip(src Source) Face {
	if src.IntN(2) == 0 {
		return Heads
	}
	return Tails
}

// Toss flips the coin for caller, who called call. The team that wins the
// toss serves first. It returns the serving team and the face that landed.
func Toss(src Source, caller match.TeamID, call Face) (match.TeamID, Face) {
	landed := Flip(src)
	if landed == call {
		return caller, landed
	}
	return caller.Other(), landed
}
