// Package ops provides the arithmetic and trigonometric operations a
// calculator dispatches to.
//
// Operations are grouped into two capability sets:
//
//   - [BasicOperations]: add, subtract, multiply, power, divide
//   - [ScientificOperations]: the basic set plus sin, cos, tan
//
// [Basic] implements the first set directly. [Scientific] implements the
// second and delegates the basic half to a [BasicOperations] it holds.
//
// # Numeric Semantics
//
// Every function is pure and accepts any float64. Degenerate inputs are not
// errors: division by zero yields ±Inf or NaN and an invalid power such as
// (-8)^(1/3) yields NaN, following IEEE-754.
package ops
