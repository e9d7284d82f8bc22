package ops

import "math"

// Scientific implements ScientificOperations. Arithmetic is delegated to the
// BasicOperations it was built with; angles are in radians.
type Scientific struct {
	basic BasicOperations
}

// NewScientific returns a Scientific provider backed by basic. A nil basic
// falls back to Basic.
func NewScientific(basic BasicOperations) *Scientific {
	if basic == nil {
		basic = Basic{}
	}
	return &Scientific{basic: basic}
}

func (s *Scientific) Add(a, b float64) float64 {
	return s.basic.Add(a, b)
}

func (s *Scientific) Subtract(a, b float64) float64 {
	return s.basic.Subtract(a, b)
}

func (s *Scientific) Multiply(a, b float64) float64 {
	return s.basic.Multiply(a, b)
}

func (s *Scientific) Power(a, b float64) float64 {
	return s.basic.Power(a, b)
}

func (s *Scientific) Divide(a, b float64) float64 {
	return s.basic.Divide(a, b)
}

func (s *Scientific) Sin(x float64) float64 {
	return math.Sin(x)
}

func (s *Scientific) Cos(x float64) float64 {
	return math.Cos(x)
}

func (s *Scientific) Tan(x float64) float64 {
	return math.Tan(x)
}
