package bench

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
)

var summaryOrder = []string{"iterations", "final_x", "final_y", "final_f", "grad_norm", "time_ms"}

// Columns lists the metric keys present in records: the usual ones first,
// then the rest sorted.
func Columns(records []Record) []string {
	have := map[string]bool{}
	for _, r := range records {
		for k := range r.Metrics {
			have[k] = true
		}
	}
	var cols []string
	for _, k := range summaryOrder {
		if have[k] {
			cols = append(cols, k)
			delete(have, k)
		}
	}
	rest := make([]string, 0, len(have))
	for k := range have {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(cols, rest...)
}

// Summary writes records as an aligned table.
func Summary(w io.Writer, records []Record) error {
	cols := Columns(records)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "optimizer\tfunction\t%s\n", strings.Join(cols, "\t"))
	for _, r := range records {
		cells := make([]string, len(cols))
		for i, k := range cols {
			if v, ok := r.Value(k); ok {
				cells[i] = fmt.Sprintf("%.6g", v)
			} else {
				cells[i] = MissingLabel
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Optimizer, r.Function, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "bench: write summary")
	}
	return nil
}
