package config

import "sort"

var Presets = map[string]*Scenario{
	"head_on": {
		Name:  "head_on",
		Body1: BodyConfig{X: 5, Y: 0, Radius: 2.5, VX: 5, VY: 5},
		Body2: BodyConfig{X: 0, Y: 0, Radius: 2.5, VX: -5, VY: 5},
		Sweep: SweepConfig{Start: 8, End: 0, Samples: 200},
	},
	"miss": {
		Name:  "miss",
		Body1: BodyConfig{X: 5, Y: 0, Radius: 2.5, VX: 5, VY: 5},
		Body2: BodyConfig{X: -5, Y: 0, Radius: 2.5, VX: -5, VY: 5},
		Sweep: SweepConfig{Start: 12, End: 4, Samples: 100},
	},
	"diagonal": {
		Name:  "diagonal",
		Body1: BodyConfig{X: 10, Y: 10, Radius: 2.5, VX: 5, VY: 5},
		Body2: BodyConfig{X: 5, Y: 5, Radius: 2.5, VX: -5, VY: 5},
		Sweep: SweepConfig{Start: 8, End: 0, Samples: 200, Direction: 0.7853981633974483},
	},
	"tangent": {
		Name:  "tangent",
		Body1: BodyConfig{X: 0, Y: 3, Radius: 1, VY: -2},
		Body2: BodyConfig{X: 0, Y: 0, Radius: 2, VY: 1},
		Sweep: SweepConfig{Start: 5, End: 0, Samples: 100, Direction: 1.5707963267948966},
	},
	"heavy": {
		Name:  "heavy",
		Body1: BodyConfig{X: 3, Y: 0, Radius: 1, VX: -4},
		Body2: BodyConfig{X: 0, Y: 0, Radius: 3, VX: 0.5, VAngular: 2},
		Sweep: SweepConfig{Start: 6, End: 0, Samples: 150},
		Arena: &ArenaConfig{X: 0, Y: 0, Height: 10, Width: 16},
	},
	"coincident": {
		Name:  "coincident",
		Body1: BodyConfig{X: 1, Y: 1, Radius: 2, VX: 1},
		Body2: BodyConfig{X: 1, Y: 1, Radius: 2, VX: -1},
		Sweep: SweepConfig{Start: 1, End: 0, Samples: 20},
	},
	"contained": {
		Name:  "contained",
		Body1: BodyConfig{X: 1, Y: 0, Radius: 1, VX: 1},
		Body2: BodyConfig{X: 0, Y: 0, Radius: 5},
		Sweep: SweepConfig{Start: 8, End: 0, Samples: 160},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Scenario {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
