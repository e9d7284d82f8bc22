package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/opcalc/internal/ops"
	"github.com/san-kum/opcalc/internal/sweep"
)

// FormatValue prints v in the shortest form that round-trips, with NaN and
// ±Inf spelled out.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (s Styles) value(v float64) string {
	if isFinite(v) {
		return s.Value.Render(FormatValue(v))
	}
	return s.Special.Render(FormatValue(v))
}

// Result renders one successful execution, e.g. "basic  add(10, 20) = 30".
func (s Styles) Result(variant, operation string, in ops.Operands, v float64) string {
	call := fmt.Sprintf("%s(%s, %s)", operation, FormatValue(in.Value1), FormatValue(in.Value2))
	return fmt.Sprintf("%s  %s = %s", s.Label.Render(fmt.Sprintf("%-10s", variant)), call, s.value(v))
}

func (s Styles) Failure(variant string, err error) string {
	return fmt.Sprintf("%s  %s", s.Label.Render(fmt.Sprintf("%-10s", variant)), s.Error.Render(err.Error()))
}

func (s Styles) OperationList(variant string, names []string) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(variant))
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(s.Value.Render(name))
		b.WriteString("\n")
	}
	return b.String()
}

// Plot renders a sweep result as an ASCII graph followed by a range summary.
// Non-finite points are left as gaps.
func (s Styles) Plot(res *sweep.Result, width, height int) string {
	if len(res.Points) == 0 || res.NonFinite == len(res.Points) {
		return s.Muted.Render(fmt.Sprintf("%s: no finite values to plot", res.Operation))
	}

	data := make([]float64, len(res.Points))
	for i, p := range res.Points {
		if isFinite(p.Y) {
			data[i] = p.Y
		} else {
			data[i] = math.NaN()
		}
	}

	first, last := res.Points[0].X, res.Points[len(res.Points)-1].X
	caption := fmt.Sprintf("%s over [%s, %s]", res.Operation, FormatValue(first), FormatValue(last))

	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)

	var b strings.Builder
	b.WriteString(graph)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s  %s %s  %s %d\n",
		s.Label.Render("min"), s.value(res.Min),
		s.Label.Render("max"), s.value(res.Max),
		s.Label.Render("points"), len(res.Points))
	if res.NonFinite > 0 {
		fmt.Fprintf(&b, "%s\n", s.Special.Render(fmt.Sprintf("%d non-finite points skipped", res.NonFinite)))
	}
	return b.String()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteRange(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	return lo, hi, ok
}
