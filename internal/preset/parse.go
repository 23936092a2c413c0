package preset

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FormatError reports a batch line that does not have three fields.
type FormatError struct {
	Line int
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: format error, use: Team, Player 1, Player 2 (got %q)", e.Line, e.Text)
}

// ParseBatch parses batch import text. Blank lines are skipped and fields
// beyond the third are ignored. On any malformed line it returns a
// *FormatError and no drafts.
func ParseBatch(text string) ([]Draft, error) {
	var drafts []Draft
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := splitFields(line)
		if len(parts) < 3 {
			return nil, &FormatError{Line: i + 1, Text: strings.TrimSpace(line)}
		}
		drafts = append(drafts, Draft{
			Name:    clean(parts[0]),
			Player1: clean(parts[1]),
			Player2: clean(parts[2]),
		})
	}
	return drafts, nil
}

// splitFields splits on comma, pipe or tab, keeping empty fields.
func splitFields(line string) []string {
	var parts []string
	start := 0
	for i, r := range line {
		if r == ',' || r == '|' || r == '\t' {
			parts = append(parts, line[start:i])
			start = i + 1
		}
	}
	return append(parts, line[start:])
}

// clean trims whitespace and normalizes to NFC so visually identical names
// compare equal.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
