package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hjson/hjson-go"
	"go.uber.org/zap"

	"github.com/lucasb/go-bsdf/pkg/core"
	"github.com/lucasb/go-bsdf/pkg/logger"
	"github.com/lucasb/go-bsdf/pkg/material"
)

// MaterialEntry is one named material in a table file
type MaterialEntry struct {
	Kind    string    `json:"kind"`
	Color   []float64 `json:"color"`
	Texture string    `json:"texture"`
	EtaI    float64   `json:"eta-i"`
	EtaT    float64   `json:"eta-t"`
	Mix     *MixEntry `json:"mix"`
}

// MixEntry blends two other entries of the same table by name
type MixEntry struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Ratio float64 `json:"ratio"`
}

// LoadMaterialTable reads an hjson material table and builds the named BSDFs.
// Unlike the kind factory, a malformed file is an input error, not a panic.
func LoadMaterialTable(path string) (map[string]material.BSDF, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read material table: %w", err)
	}

	// hjson has no struct decoding; round-trip through json for typed entries
	var raw map[string]interface{}
	if err := hjson.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse material table: %w", err)
	}
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize material table: %w", err)
	}
	var entries map[string]MaterialEntry
	if err := json.Unmarshal(jsonBytes, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode material table: %w", err)
	}

	table := make(map[string]material.BSDF, len(entries))

	// First pass: simple materials
	for name, entry := range entries {
		if entry.Mix != nil {
			continue
		}
		bsdf, err := buildSimple(entry)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		table[name] = bsdf
	}

	// Remaining passes: mixes, which may reference other mixes
	pending := make(map[string]MaterialEntry)
	for name, entry := range entries {
		if entry.Mix != nil {
			pending[name] = entry
		}
	}
	for len(pending) > 0 {
		progressed := false
		for name, entry := range pending {
			a, okA := table[entry.Mix.A]
			b, okB := table[entry.Mix.B]
			if !okA || !okB {
				continue
			}
			table[name] = material.NewMix(a, b, entry.Mix.Ratio)
			delete(pending, name)
			progressed = true
		}
		if !progressed {
			for name, entry := range pending {
				return nil, fmt.Errorf("material %q: mix references unknown or cyclic materials %q, %q",
					name, entry.Mix.A, entry.Mix.B)
			}
		}
	}

	logger.Log.Info("loaded material table",
		zap.String("file", path),
		zap.Int("materials", len(table)))

	return table, nil
}

func buildSimple(entry MaterialEntry) (material.BSDF, error) {
	kind, ok := material.KindFromName(entry.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown material kind %q", entry.Kind)
	}
	if kind == material.KindMix {
		return nil, fmt.Errorf("kind %q requires a mix block", entry.Kind)
	}

	albedo, err := buildColorSource(entry)
	if err != nil {
		return nil, err
	}

	if kind == material.KindGlass {
		etaI, etaT := entry.EtaI, entry.EtaT
		if etaI == 0 {
			etaI = 1.0
		}
		if etaT == 0 {
			etaT = 1.5
		}
		if etaI <= 0 || etaT <= 0 {
			return nil, fmt.Errorf("refractive indices must be positive, got %g, %g", etaI, etaT)
		}
		return material.NewGlass(albedo, etaI, etaT), nil
	}

	return material.NewBSDF(kind, albedo), nil
}

func buildColorSource(entry MaterialEntry) (material.ColorSource, error) {
	if entry.Texture != "" {
		return NewImageTextureFromFile(entry.Texture)
	}
	if entry.Color == nil {
		return material.NewSolidColor(core.NewVec3(1, 1, 1)), nil
	}
	if len(entry.Color) != 3 {
		return nil, fmt.Errorf("color must have 3 components, got %d", len(entry.Color))
	}
	return material.NewSolidColor(core.NewVec3(entry.Color[0], entry.Color[1], entry.Color[2])), nil
}
