package ops

import "math"

// Basic implements BasicOperations with plain float64 arithmetic.
type Basic struct{}

func (Basic) Add(a, b float64) float64 {
	return a + b
}

func (Basic) Subtract(a, b float64) float64 {
	return a - b
}

func (Basic) Multiply(a, b float64) float64 {
	return a * b
}

// Power returns a**b with math.Pow semantics, including fractional and
// negative exponents.
func (Basic) Power(a, b float64) float64 {
	return math.Pow(a, b)
}

// Divide returns a/b. A zero divisor yields ±Inf, or NaN for 0/0.
func (Basic) Divide(a, b float64) float64 {
	return a / b
}
