// Package dataset reads the trajectory and results tables produced by the
// optimizer runs.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/trajviz/internal/bench"
	"github.com/san-kum/trajviz/internal/trajectory"
)

var (
	ErrMissingColumn = errors.New("dataset: missing column")
	ErrNoRows        = errors.New("dataset: no data rows")
	ErrParse         = errors.New("dataset: parse error")
)

// TrajectoryColumns must all appear in a trajectory table header.
var TrajectoryColumns = []string{"function", "optimizer", "x", "y"}

// header maps column names to their index.
type header map[string]int

func readHeader(r *csv.Reader, required ...string) (header, error) {
	names, err := r.Read()
	if err == io.EOF {
		return nil, ErrNoRows
	}
	if err != nil {
		return nil, errors.Wrap(err, "dataset: read header")
	}
	h := make(header, len(names))
	for i, n := range names {
		n = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(n, "\ufeff")))
		if _, dup := h[n]; !dup {
			h[n] = i
		}
	}
	for _, col := range required {
		if _, ok := h[col]; !ok {
			return nil, errors.WithHintf(errors.Wrapf(ErrMissingColumn, "%q", col),
				"header has: %s", strings.Join(names, ", "))
		}
	}
	return h, nil
}

func (h header) text(record []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (h header) float(record []string, col string, line int) (float64, error) {
	s := h.text(record, col)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "line %d: column %q: %q is not a number", line, col, s)
	}
	return v, nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

// ReadTrajectories reads rows of function, optimizer, x, y. Extra columns
// such as iteration are ignored and row order is kept.
func ReadTrajectories(r io.Reader) ([]trajectory.Row, error) {
	cr := newReader(r)
	h, err := readHeader(cr, TrajectoryColumns...)
	if err != nil {
		return nil, err
	}

	var rows []trajectory.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "dataset"), ErrParse)
		}
		line, _ := cr.FieldPos(0)
		if blank(record) {
			continue
		}
		x, err := h.float(record, "x", line)
		if err != nil {
			return nil, err
		}
		y, err := h.float(record, "y", line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, trajectory.Row{
			Function:  h.text(record, "function"),
			Optimizer: h.text(record, "optimizer"),
			X:         x,
			Y:         y,
		})
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}

// ReadResults reads one record per row. optimizer is required, function is
// kept as text and every other non-empty cell is parsed as a metric.
func ReadResults(r io.Reader) ([]bench.Record, error) {
	cr := newReader(r)
	h, err := readHeader(cr, "optimizer")
	if err != nil {
		return nil, err
	}

	var records []bench.Record
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "dataset"), ErrParse)
		}
		line, _ := cr.FieldPos(0)
		if blank(record) {
			continue
		}
		rec := bench.Record{
			Optimizer: h.text(record, "optimizer"),
			Function:  h.text(record, "function"),
			Metrics:   make(map[string]float64),
		}
		for col := range h {
			if col == "optimizer" || col == "function" || col == "" {
				continue
			}
			if h.text(record, col) == "" {
				continue
			}
			v, err := h.float(record, col, line)
			if err != nil {
				return nil, err
			}
			rec.Metrics[col] = v
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}
	return records, nil
}

// LoadTrajectories opens path and builds the trajectory store from it.
func LoadTrajectories(path string) (*trajectory.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open trajectories")
	}
	defer f.Close()

	rows, err := ReadTrajectories(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	store, err := trajectory.FromRows(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return store, nil
}

// LoadResults opens path and reads the benchmark records.
func LoadResults(path string) ([]bench.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open results")
	}
	defer f.Close()

	records, err := ReadResults(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return records, nil
}

func blank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
