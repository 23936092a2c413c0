// Package store provides SQLite-backed storage for team presets.
//
// Only presets are durable. Match state and undo history live in memory for
// the length of a match and are never written here.
//
// # Ordering
//
// Presets carry a seq INTEGER assigned at insert time (MAX(seq)+1). Every
// listing uses ORDER BY seq ASC, id ASC so the order the user added teams in
// is the order they are shown in.
//
// # Batches
//
// InsertPresets writes a whole batch in one transaction. If any row fails the
// batch is rolled back and nothing is committed.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
//   - a single open connection
package store
