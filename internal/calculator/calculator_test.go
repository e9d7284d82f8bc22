package calculator_test

import (
	"errors"
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/opcalc/internal/calculator"
	"github.com/san-kum/opcalc/internal/ops"
	"github.com/san-kum/opcalc/internal/registry"
)

var basicNames = []string{"add", "subtract", "multiply", "power", "divide"}
var scientificNames = []string{"add", "subtract", "multiply", "power", "divide", "sin", "cos", "tan"}

var _ = Describe("Calculator", func() {
	Describe("basic variant", func() {
		var calc *calculator.Calculator

		BeforeEach(func() {
			calc = calculator.NewBasic()
		})

		It("binds exactly the arithmetic operations", func() {
			Expect(calc.Operations()).To(Equal(basicNames))
		})

		DescribeTable("executes arithmetic",
			func(name string, v1, v2, expected float64) {
				got, err := calc.Execute(name, ops.Operands{Value1: v1, Value2: v2})
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(expected))
			},
			Entry("add", "add", 10.0, 20.0, 30.0),
			Entry("subtract", "subtract", 10.0, 4.0, 6.0),
			Entry("multiply", "multiply", 5.0, 6.0, 30.0),
			Entry("power", "power", 2.0, 8.0, 256.0),
			Entry("divide", "divide", 15.0, 3.0, 5.0),
		)

		It("returns +Inf when dividing by zero", func() {
			got, err := calc.Execute("divide", ops.Operands{Value1: 1, Value2: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(math.IsInf(got, 1)).To(BeTrue())
		})

		It("returns NaN for a negative base with a fractional exponent", func() {
			got, err := calc.Execute("power", ops.Operands{Value1: -8, Value2: 1.0 / 3.0})
			Expect(err).NotTo(HaveOccurred())
			Expect(math.IsNaN(got)).To(BeTrue())
		})

		It("rejects trigonometric operations", func() {
			_, err := calc.Execute("sin", ops.Operands{Value1: 1})
			Expect(err).To(MatchError(calculator.ErrOperationNotSupported))
		})
	})

	Describe("scientific variant", func() {
		var calc *calculator.Calculator

		BeforeEach(func() {
			calc = calculator.NewScientific()
		})

		It("binds the arithmetic and trigonometric operations", func() {
			Expect(calc.Operations()).To(Equal(scientificNames))
		})

		DescribeTable("executes trigonometry within tolerance",
			func(name string, x, expected float64) {
				got, err := calc.Execute(name, ops.Operands{Value1: x, Value2: 0})
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(BeNumerically("~", expected, 1e-12))
			},
			Entry("sin pi/2", "sin", math.Pi/2, 1.0),
			Entry("cos 0", "cos", 0.0, 1.0),
			Entry("tan pi/4", "tan", math.Pi/4, 1.0),
		)

		It("ignores the second operand of single-operand operations", func() {
			a, err := calc.Execute("cos", ops.Operands{Value1: 0.3, Value2: 0})
			Expect(err).NotTo(HaveOccurred())
			b, err := calc.Execute("cos", ops.Operands{Value1: 0.3, Value2: 42})
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		})

		It("still executes basic operations", func() {
			Expect(calc.Execute("add", ops.Operands{Value1: 10, Value2: 20})).To(Equal(30.0))
		})
	})

	Describe("unsupported operations", func() {
		It("lists the attempted name and every bound operation", func() {
			calc := calculator.NewScientific()

			_, err := calc.Execute("unknown_op", ops.Operands{Value1: 1, Value2: 2})
			Expect(err).To(HaveOccurred())

			var notSupported *calculator.OperationNotSupportedError
			Expect(errors.As(err, &notSupported)).To(BeTrue())
			Expect(notSupported.Operation).To(Equal("unknown_op"))
			Expect(notSupported.Supported).To(Equal(scientificNames))

			Expect(err.Error()).To(Equal(`operation "unknown_op" not supported, choose a valid operation [add, subtract, multiply, power, divide, sin, cos, tan]`))
		})

		It("treats the empty name as unsupported", func() {
			_, err := calculator.NewBasic().Execute("", ops.Operands{})
			Expect(errors.Is(err, calculator.ErrOperationNotSupported)).To(BeTrue())
		})

		It("is case sensitive", func() {
			_, err := calculator.NewBasic().Execute("ADD", ops.Operands{Value1: 1, Value2: 2})
			Expect(err).To(MatchError(calculator.ErrOperationNotSupported))
		})

		It("lists only the names bound to this instance", func() {
			_, err := calculator.NewBasic().Execute("tan", ops.Operands{})
			var notSupported *calculator.OperationNotSupportedError
			Expect(errors.As(err, &notSupported)).To(BeTrue())
			Expect(notSupported.Supported).To(Equal(basicNames))
		})
	})

	Describe("custom registries", func() {
		It("dispatches to whatever registry it is bound to", func() {
			reg := registry.New(registry.Entry{Name: "hypot", Op: math.Hypot})
			calc := calculator.New(reg)

			Expect(calc.Execute("hypot", ops.Operands{Value1: 3, Value2: 4})).To(Equal(5.0))
			Expect(calc.Supports("add")).To(BeFalse())
		})

		It("refuses a nil registry", func() {
			Expect(func() { calculator.New(nil) }).To(PanicWith("calculator: nil registry"))
		})
	})

	Describe("determinism", func() {
		It("returns the same result on repeated calls", func() {
			calc := calculator.NewScientific()
			in := ops.Operands{Value1: 1.234, Value2: 5.678}

			for _, name := range calc.Operations() {
				first, err := calc.Execute(name, in)
				Expect(err).NotTo(HaveOccurred())
				for i := 0; i < 5; i++ {
					Expect(calc.Execute(name, in)).To(Equal(first))
				}
			}
		})

		It("is safe to call from many goroutines", func() {
			calc := calculator.NewScientific()

			var wg sync.WaitGroup
			results := make([]float64, 64)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					defer GinkgoRecover()
					v, err := calc.Execute("multiply", ops.Operands{Value1: float64(i), Value2: 2})
					Expect(err).NotTo(HaveOccurred())
					results[i] = v
				}(i)
			}
			wg.Wait()

			for i, v := range results {
				Expect(v).To(Equal(float64(2 * i)))
			}
		})
	})

	Describe("variants", func() {
		It("lists basic and scientific", func() {
			Expect(calculator.Variants()).To(Equal([]string{"basic", "scientific"}))
		})

		It("builds a calculator by name", func() {
			calc, err := calculator.Variant("scientific")
			Expect(err).NotTo(HaveOccurred())
			Expect(calc.Operations()).To(HaveLen(8))
		})

		It("rejects unknown names", func() {
			_, err := calculator.Variant("graphing")
			Expect(err).To(MatchError(calculator.ErrUnknownVariant))
			Expect(err.Error()).To(ContainSubstring("graphing"))
		})
	})
})
