package calculator

import (
	"github.com/san-kum/opcalc/internal/ops"
	"github.com/san-kum/opcalc/internal/registry"
)

// Calculator executes operations by name against a bound registry.
type Calculator struct {
	reg *registry.Registry
}

// New binds a calculator to reg. A nil reg panics.
func New(reg *registry.Registry) *Calculator {
	if reg == nil {
		panic("calculator: nil registry")
	}
	return &Calculator{reg: reg}
}

// NewBasic returns a calculator with the five arithmetic operations.
func NewBasic() *Calculator {
	return New(registry.Basic(ops.Basic{}))
}

// NewScientific returns a calculator with the arithmetic and trigonometric
// operations.
func NewScientific() *Calculator {
	return New(registry.Scientific(ops.NewScientific(ops.Basic{})))
}

// Execute looks up name and applies it to in. Single-operand operations use
// in.Value1 and ignore in.Value2. An unknown or empty name returns an
// *OperationNotSupportedError listing every bound operation.
func (c *Calculator) Execute(name string, in ops.Operands) (float64, error) {
	op, ok := c.reg.Lookup(name)
	if !ok {
		return 0, &OperationNotSupportedError{
			Operation: name,
			Supported: c.reg.Names(),
		}
	}
	return op(in.Value1, in.Value2), nil
}

// Operations returns the bound operation names in registration order.
func (c *Calculator) Operations() []string {
	return c.reg.Names()
}

// Supports reports whether name is bound to the calculator.
func (c *Calculator) Supports(name string) bool {
	return c.reg.Has(name)
}
