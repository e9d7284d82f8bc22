// Package viz renders calculator output for the terminal.
//
//   - [Styles]: lipgloss styles derived from a [Theme]
//   - [Plot]: asciigraph rendering of a sweep
//   - [REPL]: Bubble Tea read-eval-print loop over a calculator
//
// # REPL Input
//
//	add 10 20    - run an operation (second operand defaults to 0)
//	ops          - list bound operations
//	clear        - clear the scrollback
//	q, ctrl+c    - quit
package viz
