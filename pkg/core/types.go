package core

import "sort"

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Preset is a named board configuration.
type Preset struct {
	Name  string
	Size  Size
	Mines int
}

var presets = map[string]Preset{}

// RegisterPreset adds a board preset under the provided name.
func RegisterPreset(name string, p Preset) {
	if name == "" {
		return
	}
	p.Name = name
	presets[name] = p
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// Presets exposes the registered presets ordered by board area.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		ai, aj := out[i].Size.W*out[i].Size.H, out[j].Size.W*out[j].Size.H
		if ai != aj {
			return ai < aj
		}
		return out[i].Name < out[j].Name
	})
	return out
}
