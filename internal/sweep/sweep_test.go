package sweep

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/opcalc/internal/calculator"
)

func TestSweepEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		s        Sweep
		expected []float64
	}{
		{
			name:     "unit grid",
			s:        Sweep{Operation: "add", From: 0, To: 10, Steps: 11},
			expected: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			name:     "negative range",
			s:        Sweep{Operation: "add", From: -4, To: 4, Steps: 5},
			expected: []float64{-4, -2, 0, 2, 4},
		},
		{
			name:     "full float64 range",
			s:        Sweep{Operation: "add", From: -math.MaxFloat64, To: math.MaxFloat64, Steps: 3},
			expected: []float64{-math.MaxFloat64, 0, math.MaxFloat64},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.s.Run(calculator.NewBasic())
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}

			if len(res.Points) != len(tt.expected) {
				t.Fatalf("expected %d points, got %d", len(tt.expected), len(res.Points))
			}
			for i, want := range tt.expected {
				if math.Abs(res.Points[i].X-want) > 1e-9 {
					t.Errorf("point %d: expected x %v, got %v", i, want, res.Points[i].X)
				}
			}
			if res.Points[0].X != tt.s.From || res.Points[len(res.Points)-1].X != tt.s.To {
				t.Errorf("expected exact endpoints %v and %v", tt.s.From, tt.s.To)
			}
			if res.NonFinite != 0 {
				t.Errorf("expected no non-finite points, got %d", res.NonFinite)
			}
		})
	}
}

func TestSweepMinMax(t *testing.T) {
	s := Sweep{Operation: "multiply", From: 0, To: 10, Steps: 11, Value2: 2}

	res, err := s.Run(calculator.NewBasic())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if res.Points[5].Y != 10 {
		t.Errorf("expected 5*2=10, got %v", res.Points[5].Y)
	}
	if res.Min != 0 || res.Max != 20 {
		t.Errorf("expected range [0, 20], got [%v, %v]", res.Min, res.Max)
	}
}

func TestSweepTrig(t *testing.T) {
	s := Sweep{Operation: "sin", From: 0, To: 2 * math.Pi, Steps: 101}

	res, err := s.Run(calculator.NewScientific())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if math.Abs(res.Max-1) > 1e-3 {
		t.Errorf("expected max ~1, got %v", res.Max)
	}
	if math.Abs(res.Min+1) > 1e-3 {
		t.Errorf("expected min ~-1, got %v", res.Min)
	}
	if len(res.Ys()) != 101 {
		t.Errorf("expected 101 values, got %d", len(res.Ys()))
	}
}

func TestSweepNonFinite(t *testing.T) {
	s := Sweep{Operation: "divide", From: -1, To: 1, Steps: 3, Value2: 0}

	res, err := s.Run(calculator.NewBasic())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// -1/0, 0/0, 1/0
	if res.NonFinite != 3 {
		t.Errorf("expected 3 non-finite points, got %d", res.NonFinite)
	}
}

func TestSweepUnsupportedOperation(t *testing.T) {
	s := Sweep{Operation: "tan", From: 0, To: 1, Steps: 2}

	_, err := s.Run(calculator.NewBasic())
	if !errors.Is(err, calculator.ErrOperationNotSupported) {
		t.Errorf("expected ErrOperationNotSupported, got %v", err)
	}
}

func TestSweepValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Sweep
	}{
		{"too few steps", Sweep{From: 0, To: 1, Steps: 1}},
		{"inverted range", Sweep{From: 1, To: 0, Steps: 10}},
		{"empty range", Sweep{From: 1, To: 1, Steps: 10}},
		{"nan bound", Sweep{From: math.NaN(), To: 1, Steps: 10}},
		{"inf bound", Sweep{From: 0, To: math.Inf(1), Steps: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.s.Validate(); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("expected ErrInvalidRange, got %v", err)
			}
		})
	}
}
