package rules

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/rallyref/internal/match"
)

//go:embed schema.cue
var schemaCUE string

//go:embed builtin.cue
var builtinCUE string

// Profile is a named rule set.
type Profile struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Settings    match.Settings `json:"settings"`
}

// ProfileError reports an invalid profile source.
type ProfileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *ProfileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// profileDoc mirrors #Settings for decoding.
type profileDoc struct {
	Description string `json:"description"`
	WinAt       int    `json:"win_at"`
	WinByTwo    bool   `json:"win_by_two"`
	BestOf      int    `json:"best_of"`
}

// Builtin returns the built-in profiles sorted by name.
func Builtin() ([]Profile, error) {
	return compile(builtinCUE, "builtin.cue")
}

// LoadFile returns the built-in profiles merged with those defined in the
// CUE file at path. File profiles win on name collisions.
func LoadFile(path string) ([]Profile, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return builtin, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	user, err := compile(string(src), path)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]Profile, len(builtin)+len(user))
	for _, p := range builtin {
		byName[p.Name] = p
	}
	for _, p := range user {
		byName[p.Name] = p
	}
	return sortedProfiles(byName), nil
}

// Lookup finds a profile by name.
func Lookup(profiles []Profile, name string) (Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// compile unifies src with the schema and decodes every profile.
func compile(src, filename string) ([]Profile, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v := ctx.CompileString(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v = schema.Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	profilesVal := v.LookupPath(cue.ParsePath("profile"))
	if !profilesVal.Exists() {
		return nil, nil
	}

	iter, err := profilesVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	byName := make(map[string]Profile)
	for iter.Next() {
		name := iter.Label()
		var doc profileDoc
		if err := iter.Value().Decode(&doc); err != nil {
			return nil, formatCUEError(err)
		}
		p := Profile{
			Name:        name,
			Description: doc.Description,
			Settings: match.Settings{
				WinAt:    doc.WinAt,
				WinByTwo: doc.WinByTwo,
				BestOf:   doc.BestOf,
			},
		}
		if err := p.Settings.Validate(); err != nil {
			return nil, &ProfileError{Field: "profile." + name, Message: err.Error(), Pos: iter.Value().Pos()}
		}
		byName[name] = p
	}
	return sortedProfiles(byName), nil
}

func sortedProfiles(byName map[string]Profile) []Profile {
	out := make([]Profile, 0, len(byName))
	for _, p := range byName {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// formatCUEError keeps the first CUE error and its position.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	positions := errors.Positions(first)
	if len(positions) > 0 {
		return &ProfileError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}
	return &ProfileError{Field: "cue", Message: first.Error()}
}
