package landscape

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownLandscape is returned by Resolve for names outside the registry.
var ErrUnknownLandscape = errors.New("landscape: unknown landscape")

// Kind identifies one of the supported scalar fields.
type Kind int

const (
	Quadratic Kind = iota
	Rosenbrock
	Himmelblau
	Beale
)

var kinds = []Kind{Quadratic, Rosenbrock, Himmelblau, Beale}

// All returns every registered landscape in registry order.
func All() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Names returns the registry names in registry order.
func Names() []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// Resolve maps a name from the trajectory table onto a Kind.
func Resolve(name string) (Kind, error) {
	for _, k := range kinds {
		if k.String() == name {
			return k, nil
		}
	}
	err := errors.Wrapf(ErrUnknownLandscape, "resolve %q", name)
	return 0, errors.WithHintf(err, "supported landscapes: %s", strings.Join(Names(), ", "))
}

func (k Kind) String() string {
	switch k {
	case Quadratic:
		return "quadratic"
	case Rosenbrock:
		return "rosenbrock"
	case Himmelblau:
		return "himmelblau"
	case Beale:
		return "beale"
	}
	return "unknown"
}

// Eval computes f(x, y). Every variant is a sum of squares, so the result
// is never negative.
func (k Kind) Eval(x, y float64) float64 {
	switch k {
	case Quadratic:
		return x*x + y*y
	case Rosenbrock:
		a := 1 - x
		b := y - x*x
		return a*a + 100*b*b
	case Himmelblau:
		a := x*x + y - 11
		b := x + y*y - 7
		return a*a + b*b
	case Beale:
		a := 1.5 - x + x*y
		b := 2.25 - x + x*y*y
		c := 2.625 - x + x*y*y*y
		return a*a + b*b + c*c
	}
	return 0
}

// Gradient returns the analytic gradient of f at (x, y).
func (k Kind) Gradient(x, y float64) (gx, gy float64) {
	switch k {
	case Quadratic:
		return 2 * x, 2 * y
	case Rosenbrock:
		return -2*(1-x) - 400*x*(y-x*x), 200 * (y - x*x)
	case Himmelblau:
		a := x*x + y - 11
		b := x + y*y - 7
		return 4*x*a + 2*b, 2*a + 4*y*b
	case Beale:
		a := 1.5 - x + x*y
		b := 2.25 - x + x*y*y
		c := 2.625 - x + x*y*y*y
		gx = 2*a*(y-1) + 2*b*(y*y-1) + 2*c*(y*y*y-1)
		gy = 2*a*x + 4*b*x*y + 6*c*x*y*y
		return gx, gy
	}
	return 0, 0
}
