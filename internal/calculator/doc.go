// Package calculator dispatches named operations to a bound registry.
//
// A [Calculator] is a thin wrapper over a [registry.Registry]; the two
// shipped variants differ only in which registry they are built with:
//
//   - [NewBasic]: add, subtract, multiply, power, divide
//   - [NewScientific]: the basic set plus sin, cos, tan
//
// # Example
//
//	calc := calculator.NewScientific()
//	v, err := calc.Execute("sin", ops.Operands{Value1: math.Pi / 2})
//	if errors.Is(err, calculator.ErrOperationNotSupported) {
//		// unknown name
//	}
//
// # Thread Safety
//
// Calculators hold no mutable state and may be shared between goroutines.
package calculator
