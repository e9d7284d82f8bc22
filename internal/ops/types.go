package ops

// Operands is the pair of values passed to every operation. Single-operand
// operations read Value1 and ignore Value2.
type Operands struct {
	Value1 float64 `yaml:"value1" json:"value1"`
	Value2 float64 `yaml:"value2" json:"value2"`
}

// Operation is the uniform signature every registered operation is called
// through.
type Operation func(a, b float64) float64

// Unary is a single-operand function such as sin.
type Unary func(x float64) float64

// Operation adapts u to the two-operand signature. The second operand is
// discarded.
func (u Unary) Operation() Operation {
	return func(a, _ float64) float64 {
		return u(a)
	}
}

type BasicOperations interface {
	Add(a, b float64) float64
	Subtract(a, b float64) float64
	Multiply(a, b float64) float64
	Power(a, b float64) float64
	Divide(a, b float64) float64
}

type ScientificOperations interface {
	BasicOperations
	Sin(x float64) float64
	Cos(x float64) float64
	Tan(x float64) float64
}
