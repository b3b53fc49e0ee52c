// Package trajectory holds the read-only per-optimizer point sequences the
// animation reveals.
package trajectory

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrNoRows indicates an empty trajectory table.
	ErrNoRows = errors.New("trajectory: no rows")

	// ErrMixedLandscapes indicates rows naming more than one landscape.
	ErrMixedLandscapes = errors.New("trajectory: rows reference more than one landscape")

	// ErrEmptyName indicates a row without an optimizer name.
	ErrEmptyName = errors.New("trajectory: empty optimizer name")
)

// Point is one recorded iterate.
type Point struct {
	X, Y float64
}

// Row is one line of the trajectory table.
type Row struct {
	Function  string
	Optimizer string
	X, Y      float64
}

// Trajectory is one optimizer's ordered path; index 0 is the initial guess.
type Trajectory struct {
	Optimizer string
	Points    []Point
}

func (t Trajectory) Len() int { return len(t.Points) }

// Start returns the initial guess.
func (t Trajectory) Start() Point { return t.Points[0] }

// Last returns the final recorded point.
func (t Trajectory) Last() Point { return t.Points[len(t.Points)-1] }

// Store is keyed by optimizer name and keeps first-appearance order.
type Store struct {
	landscape string
	order     []string
	byName    map[string]Trajectory
}

// FromRows groups rows by optimizer; row order within a group is the
// iteration order.
func FromRows(rows []Row) (*Store, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	s := &Store{
		landscape: rows[0].Function,
		byName:    make(map[string]Trajectory),
	}
	points := make(map[string][]Point)
	for i, r := range rows {
		if r.Optimizer == "" {
			return nil, errors.Wrapf(ErrEmptyName, "row %d", i)
		}
		if r.Function != s.landscape {
			return nil, errors.Wrapf(ErrMixedLandscapes, "row %d has %q, expected %q", i, r.Function, s.landscape)
		}
		if _, seen := points[r.Optimizer]; !seen {
			s.order = append(s.order, r.Optimizer)
		}
		points[r.Optimizer] = append(points[r.Optimizer], Point{X: r.X, Y: r.Y})
	}
	for name, pts := range points {
		s.byName[name] = Trajectory{Optimizer: name, Points: pts}
	}
	return s, nil
}

// New builds a store directly from trajectories, keeping their order.
// Trajectories without points are skipped.
func New(landscape string, trajectories ...Trajectory) *Store {
	s := &Store{landscape: landscape, byName: make(map[string]Trajectory)}
	for _, t := range trajectories {
		if len(t.Points) == 0 {
			continue
		}
		if _, dup := s.byName[t.Optimizer]; !dup {
			s.order = append(s.order, t.Optimizer)
		}
		s.byName[t.Optimizer] = t
	}
	return s
}

// Landscape returns the landscape name shared by every row.
func (s *Store) Landscape() string { return s.landscape }

// Len returns the number of optimizers.
func (s *Store) Len() int { return len(s.order) }

// Names returns optimizer names in first-appearance order.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Store) Get(name string) (Trajectory, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// Each visits trajectories in store order.
func (s *Store) Each(fn func(Trajectory)) {
	for _, name := range s.order {
		fn(s.byName[name])
	}
}

// MaxLen returns the length of the longest trajectory, 0 for an empty store.
func (s *Store) MaxLen() int {
	n := 0
	for _, t := range s.byName {
		if t.Len() > n {
			n = t.Len()
		}
	}
	return n
}

// Coords flattens every point of every trajectory into x and y slices.
func (s *Store) Coords() (xs, ys []float64) {
	s.Each(func(t Trajectory) {
		for _, p := range t.Points {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	})
	return xs, ys
}
