package preset

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Repository stores presets. Implemented by store.Store.
type Repository interface {
	ListPresets(ctx context.Context) ([]Preset, error)
	InsertPresets(ctx context.Context, presets []Preset) error
	DeletePreset(ctx context.Context, id string) (bool, error)
	ClearPresets(ctx context.Context) (int64, error)
}

// IDGenerator produces preset IDs.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 IDs.
type UUIDv7Generator struct{}

// Generate returns a hyphenated UUIDv7.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Catalog is the preset service used by the CLI.
type Catalog struct {
	repo   Repository
	ids    IDGenerator
	logger *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithIDGenerator overrides the default UUIDv7 IDs.
func WithIDGenerator(g IDGenerator) CatalogOption {
	return func(c *Catalog) {
		c.ids = g
	}
}

// WithLogger sets the catalog logger.
func WithLogger(l *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		c.logger = l
	}
}

// NewCatalog creates a Catalog over repo.
func NewCatalog(repo Repository, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		repo:   repo,
		ids:    UUIDv7Generator{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns every preset in insertion order.
func (c *Catalog) List(ctx context.Context) ([]Preset, error) {
	return c.repo.ListPresets(ctx)
}

// Add stores one preset.
func (c *Catalog) Add(ctx context.Context, d Draft) (Preset, error) {
	d = Draft{Name: clean(d.Name), Player1: clean(d.Player1), Player2: clean(d.Player2)}
	if d.Name == "" {
		return Preset{}, fmt.Errorf("add preset: name is required")
	}
	added, err := c.insert(ctx, []Draft{d})
	if err != nil {
		return Preset{}, err
	}
	return added[0], nil
}

// Import parses batch text and stores every line, or none if any line is
// malformed.
func (c *Catalog) Import(ctx context.Context, text string) ([]Preset, error) {
	drafts, err := ParseBatch(text)
	if err != nil {
		return nil, err
	}
	return c.insert(ctx, drafts)
}

// ImportLegacy stores presets recovered from a browser app export. IDs are
// reassigned so they cannot collide with existing rows.
func (c *Catalog) ImportLegacy(ctx context.Context, data []byte) ([]Preset, error) {
	legacy := DecodeLegacy(data, c.logger)
	drafts := make([]Draft, 0, len(legacy))
	for _, p := range legacy {
		drafts = append(drafts, Draft{Name: p.Name, Player1: p.Player1, Player2: p.Player2})
	}
	return c.insert(ctx, drafts)
}

// Delete removes one preset. It reports whether the preset existed.
func (c *Catalog) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := c.repo.DeletePreset(ctx, id)
	if err != nil {
		return false, err
	}
	c.logger.Info("preset deleted", "id", id, "removed", removed)
	return removed, nil
}

// Clear removes every preset.
func (c *Catalog) Clear(ctx context.Context) (int64, error) {
	n, err := c.repo.ClearPresets(ctx)
	if err != nil {
		return 0, err
	}
	c.logger.Info("presets cleared", "count", n)
	return n, nil
}

// Find looks a preset up by approximate name.
func (c *Catalog) Find(ctx context.Context, query string) (Preset, bool, error) {
	presets, err := c.repo.ListPresets(ctx)
	if err != nil {
		return Preset{}, false, err
	}
	p, ok := Find(presets, query)
	return p, ok, nil
}

func (c *Catalog) insert(ctx context.Context, drafts []Draft) ([]Preset, error) {
	presets := make([]Preset, 0, len(drafts))
	for _, d := range drafts {
		presets = append(presets, Preset{
			ID:      c.ids.Generate(),
			Name:    d.Name,
			Player1: d.Player1,
			Player2: d.Player2,
		})
	}
	if len(presets) == 0 {
		return presets, nil
	}
	if err := c.repo.InsertPresets(ctx, presets); err != nil {
		return nil, fmt.Errorf("store presets: %w", err)
	}
	c.logger.Info("presets added", "count", len(presets))
	return presets, nil
}
