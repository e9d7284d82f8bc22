// Package sweep evaluates a single calculator operation over an evenly
// spaced range of first operands.
package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/opcalc/internal/ops"
)

var ErrInvalidRange = errors.New("sweep: invalid range")

// Executor is satisfied by *calculator.Calculator.
type Executor interface {
	Execute(name string, in ops.Operands) (float64, error)
}

type Sweep struct {
	Operation string
	From      float64
	To        float64
	Steps     int
	// Value2 is held fixed for every point.
	Value2 float64
}

type Point struct {
	X float64
	Y float64
}

type Result struct {
	Operation string
	Points    []Point
	Min       float64
	Max       float64
	// NonFinite counts points whose value is NaN or ±Inf. They are kept in
	// Points but excluded from Min and Max.
	NonFinite int
}

// Ys returns the result values in point order.
func (r *Result) Ys() []float64 {
	ys := make([]float64, len(r.Points))
	for i, p := range r.Points {
		ys[i] = p.Y
	}
	return ys
}

func (s Sweep) Validate() error {
	if s.Steps < 2 {
		return fmt.Errorf("%w: need at least 2 steps, got %d", ErrInvalidRange, s.Steps)
	}
	if math.IsNaN(s.From) || math.IsNaN(s.To) || math.IsInf(s.From, 0) || math.IsInf(s.To, 0) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidRange)
	}
	if s.From >= s.To {
		return fmt.Errorf("%w: from %g must be below to %g", ErrInvalidRange, s.From, s.To)
	}
	return nil
}

// Run evaluates s.Operation at Steps points from From to To inclusive. The
// first execution error aborts the sweep.
func (s Sweep) Run(exec Executor) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Operation: s.Operation,
		Points:    make([]Point, 0, s.Steps),
		Min:       math.Inf(1),
		Max:       math.Inf(-1),
	}

	// interpolate rather than accumulate a step: To-From overflows for
	// bounds near ±MaxFloat64
	for i := 0; i < s.Steps; i++ {
		t := float64(i) / float64(s.Steps-1)
		x := s.From*(1-t) + s.To*t
		if i == s.Steps-1 {
			x = s.To
		}

		y, err := exec.Execute(s.Operation, ops.Operands{Value1: x, Value2: s.Value2})
		if err != nil {
			return nil, err
		}

		res.Points = append(res.Points, Point{X: x, Y: y})
		if math.IsNaN(y) || math.IsInf(y, 0) {
			res.NonFinite++
			continue
		}
		res.Min = math.Min(res.Min, y)
		res.Max = math.Max(res.Max, y)
	}

	return res, nil
}
