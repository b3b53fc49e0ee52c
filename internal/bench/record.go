package bench

import (
	"math"
	"strconv"

	"github.com/san-kum/trajviz/internal/landscape"
	"github.com/san-kum/trajviz/internal/trajectory"
)

// Record is one optimizer's row of benchmark results.
type Record struct {
	Optimizer string
	Function  string
	Metrics   map[string]float64
}

// Value returns a metric and whether the record has it.
func (r Record) Value(key string) (float64, bool) {
	v, ok := r.Metrics[key]
	return v, ok
}

// Metric names a results column and how to title its chart.
type Metric struct {
	Key   string
	Label string
}

var DefaultMetrics = []Metric{
	{Key: "iterations", Label: "Iterations to converge"},
	{Key: "time_ms", Label: "Time elapsed (ms)"},
}

var knownLabels = map[string]string{
	"iterations": "Iterations to converge",
	"time_ms":    "Time elapsed (ms)",
	"grad_norm":  "Final gradient norm",
	"final_x":    "Final x",
	"final_y":    "Final y",
	"final_f":    "Final value",
}

// MetricsFor builds Metrics from column keys, labelling the ones it knows.
func MetricsFor(keys []string) []Metric {
	out := make([]Metric, 0, len(keys))
	for _, k := range keys {
		label, ok := knownLabels[k]
		if !ok {
			label = k
		}
		out = append(out, Metric{Key: k, Label: label})
	}
	return out
}

// FormatValue prints v with three significant digits, 45.678 -> "45.7".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 3, 64)
}

// FromStore derives diagnostic records from trajectories: step count, final
// point, final value and the gradient norm there.
func FromStore(store *trajectory.Store, kind landscape.Kind) []Record {
	out := make([]Record, 0, store.Len())
	store.Each(func(t trajectory.Trajectory) {
		last := t.Last()
		gx, gy := kind.Gradient(last.X, last.Y)
		out = append(out, Record{
			Optimizer: t.Optimizer,
			Function:  store.Landscape(),
			Metrics: map[string]float64{
				"iterations": float64(t.Len() - 1),
				"final_x":    last.X,
				"final_y":    last.Y,
				"final_f":    kind.Eval(last.X, last.Y),
				"grad_norm":  math.Hypot(gx, gy),
			},
		})
	})
	return out
}
