package sweep

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// WriteCSV writes the result as "x,y" rows with a header. Non-finite values
// are written as NaN, +Inf or -Inf.
func (r *Result) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"x", r.Operation}); err != nil {
		return err
	}
	for _, p := range r.Points {
		row := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func (r *Result) ExportCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := r.WriteCSV(f); err != nil {
		return err
	}
	return f.Close()
}
