// Package preset manages saved team presets: batch import from free text,
// recovery of presets exported by the browser app, fuzzy lookup by name, and
// the Catalog service that ties them to a Repository.
//
// Batch import format is one team per line, fields separated by comma, pipe
// or tab:
//
//	Eagles, Mike, John
//	Hawks	Sarah	Jane
//
// A line with fewer than three fields rejects the whole batch.
package preset
