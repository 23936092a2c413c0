package preset

import (
	"encoding/json"
	"log/slog"
)

// legacyPreset is the browser app's stored record.
type legacyPreset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	P1   string `json:"p1"`
	P2   string `json:"p2"`
}

// DecodeLegacy reads a JSON preset list exported by the browser app. Data
// that cannot be decoded is logged and treated as no presets.
func DecodeLegacy(data []byte, logger *slog.Logger) []Preset {
	if logger == nil {
		logger = slog.Default()
	}

	var records []legacyPreset
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("failed to load saved teams", "error", err)
		return nil
	}

	presets := make([]Preset, 0, len(records))
	for _, r := range records {
		presets = append(presets, Preset{
			ID:      r.ID,
			Name:    clean(r.Name),
			Player1: clean(r.P1),
			Player2: clean(r.P2),
		})
	}
	return presets
}
