package calculator

import (
	"fmt"
	"sort"
)

const (
	VariantBasic      = "basic"
	VariantScientific = "scientific"
)

var variants = map[string]func() *Calculator{
	VariantBasic:      NewBasic,
	VariantScientific: NewScientific,
}

// Variant builds the calculator registered under name.
func Variant(name string) (*Calculator, error) {
	fn, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownVariant, name, Variants())
	}
	return fn(), nil
}

// Variants lists the registered variant names, sorted.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
