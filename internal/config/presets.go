package config

import (
	"math"
	"sort"
)

// Presets are built-in scenario lists for the demo command.
var Presets = map[string][]Scenario{
	"sample": {
		{Variant: "basic", Operation: "add", Value1: 10, Value2: 20},
		{Variant: "basic", Operation: "multiply", Value1: 5, Value2: 6},
		{Variant: "basic", Operation: "divide", Value1: 15, Value2: 3},
		{Variant: "scientific", Operation: "sin", Value1: math.Pi / 2},
		{Variant: "scientific", Operation: "cos", Value1: 0},
		{Variant: "scientific", Operation: "tan", Value1: math.Pi / 4},
	},
	"edge": {
		{Variant: "basic", Operation: "divide", Value1: 1, Value2: 0},
		{Variant: "basic", Operation: "divide", Value1: 0, Value2: 0},
		{Variant: "basic", Operation: "power", Value1: -8, Value2: 1.0 / 3.0},
		{Variant: "basic", Operation: "power", Value1: 2, Value2: -2},
		{Variant: "basic", Operation: "sin", Value1: 1},
		{Variant: "scientific", Operation: "unknown_op", Value1: 1, Value2: 2},
	},
}

// GetPreset returns a copy of the named scenario list, or nil.
func GetPreset(name string) []Scenario {
	scenarios, ok := Presets[name]
	if !ok {
		return nil
	}
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
