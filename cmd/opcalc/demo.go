package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/san-kum/opcalc/internal/calculator"
	"github.com/san-kum/opcalc/internal/config"
	"github.com/san-kum/opcalc/internal/viz"
)

// runScenarios executes every scenario in cfg and writes one line per result.
// Unsupported operations are printed and counted; they do not stop the run.
func runScenarios(w io.Writer, cfg *config.Config, styles viz.Styles) (int, error) {
	calcs := make(map[string]*calculator.Calculator)
	failures := 0

	for _, sc := range cfg.Scenarios {
		name := cfg.ScenarioVariant(sc)
		calc, ok := calcs[name]
		if !ok {
			var err error
			calc, err = calculator.Variant(name)
			if err != nil {
				return failures, err
			}
			calcs[name] = calc
		}

		in := sc.Operands()
		v, err := calc.Execute(sc.Operation, in)
		if err != nil {
			failures++
			slog.Debug("scenario failed", "variant", name, "operation", sc.Operation, "err", err)
			fmt.Fprintln(w, styles.Failure(name, err))
			continue
		}
		fmt.Fprintln(w, styles.Result(name, sc.Operation, in, v))
	}

	return failures, nil
}
