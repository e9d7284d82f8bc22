package main

import (
	"fmt"
	"io"

	"github.com/san-kum/opcalc/internal/calculator"
	"github.com/san-kum/opcalc/internal/viz"
)

const listWidth = 32

// writeOperations lists the operations of each named variant, with a
// separator between variants.
func writeOperations(w io.Writer, variants []string, styles viz.Styles) error {
	for i, name := range variants {
		calc, err := calculator.Variant(name)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w, styles.Separator(listWidth))
		}
		fmt.Fprint(w, styles.OperationList(name, calc.Operations()))
	}
	return nil
}
