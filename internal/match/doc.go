// Package match implements the rally-point scoring engine for a single
// doubles pickleball match.
//
// The engine owns every rule that changes the score: point registration,
// serve retention and side-out, server rotation, game and match completion,
// and a bounded undo history. Everything else in rallyref (TUI, CLI,
// preset store, export) reads State and calls Engine operations.
//
// # State Model
//
// State holds only value types. Assigning a State copies it completely, so a
// snapshot pushed onto History can never alias the live state. Keep it that
// way: adding a slice, map, or pointer field to State, Team, or Player breaks
// undo isolation.
//
// # Slots
//
// Team.Players is ordered by court position, not identity:
//   - slot 0: right-court occupant
//   - slot 1: left-court occupant
//
// A hold (serving team wins the rally) swaps the slots. A side-out moves the
// serve and leaves both teams' slots untouched.
//
// # Server Position
//
// Which slot serves follows the serving team's own score parity: even score
// serves from slot 0 (right), odd from slot 1 (left). See ServerSlot.
//
// # Concurrency
//
// Engine is not safe for concurrent use. It is owned by exactly one session
// and every operation runs to completion synchronously.
package match
