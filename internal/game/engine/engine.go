// Package engine drives a single Snakes-and-Ladders game from the start
// square to the finish.
package engine

import (
	"github.com/leonmatthews/ladders/internal/game/board"
	"github.com/leonmatthews/ladders/internal/game/dice"
)

// Move records one turn: the face rolled and the square occupied afterwards.
// On an overshoot the square is unchanged from the previous turn.
type Move struct {
	Roll   int `json:"roll"`
	Square int `json:"square"`
}

// Play runs one game and returns the number of turns taken to land exactly
// on the finish square.
//
// Rules: a roll that would carry past the finish is void (the turn is
// wasted); landing exactly on the finish ends the game immediately. The
// finish square is never a jump source, so no resolution applies there.
//
// Precondition: b and src must be non-nil.
// Postcondition: return value >= 1; the player's position never left
// [0, b.Finish()].
func Play(b *board.Board, src dice.Source) int {
	finish := b.Finish()
	place := 0
	turns := 0
	for {
		turns++
		landed := place + src.Roll()
		if landed > finish {
			// Overshoot: stay where you are.
			continue
		}
		place = b.Resolve(landed)
		if place == finish {
			return turns
		}
	}
}

// PlayTrace runs one game and returns the full move history. Slower than
// Play (it allocates); used for verbose traces and shortest/longest-game
// tracking, never for throughput measurement.
//
// Postcondition: the last move's Square == b.Finish(); len(result) equals
// the turn count Play would have reported for the same roll sequence.
func PlayTrace(b *board.Board, src dice.Source) []Move {
	finish := b.Finish()
	place := 0
	var moves []Move
	for {
		roll := src.Roll()
		landed := place + roll
		if landed <= finish {
			place = b.Resolve(landed)
		}
		moves = append(moves, Move{Roll: roll, Square: place})
		if place == finish {
			return moves
		}
	}
}
