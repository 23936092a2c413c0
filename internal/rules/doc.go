// Package rules loads named scoring rule profiles written in CUE.
//
// Every profile is unified with the #Settings schema embedded in this
// package, so a profile file can only set known fields and best_of is
// limited to 1, 3 or 5. A minimal profile file:
//
//	profile: league: {
//		win_at:     15
//		win_by_two: false
//	}
//
// Built-in profiles are always available. Profiles loaded from a file
// replace built-ins of the same name.
package rules
