package landscape

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	for _, name := range []string{"quadratic", "rosenbrock", "himmelblau", "beale"} {
		k, err := Resolve(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, k.String())
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, err := Resolve("ackley")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLandscape))
	assert.Contains(t, err.Error(), `"ackley"`)
	assert.Contains(t, errors.FlattenHints(err), "rosenbrock")
}

func TestEval_KnownMinima(t *testing.T) {
	tests := []struct {
		kind Kind
		x, y float64
	}{
		{Quadratic, 0, 0},
		{Rosenbrock, 1, 1},
		{Himmelblau, 3, 2},
		{Himmelblau, -2.805118, 3.131312},
		{Beale, 3, 0.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, 0, tt.kind.Eval(tt.x, tt.y), 1e-6, "%s at (%v, %v)", tt.kind, tt.x, tt.y)
	}
}

func TestEval_Nonnegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, k := range All() {
		for i := 0; i < 2000; i++ {
			x := rng.Float64()*20 - 10
			y := rng.Float64()*20 - 10
			v := k.Eval(x, y)
			require.GreaterOrEqual(t, v, 0.0, "%s(%v, %v)", k, x, y)
			require.False(t, math.IsNaN(math.Log1p(v)))
		}
	}
}

// Compressed values keep the ordering of the raw field.
func TestLog1pPreservesOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, k := range All() {
		for i := 0; i < 2000; i++ {
			a := k.Eval(rng.Float64()*8-4, rng.Float64()*8-4)
			b := k.Eval(rng.Float64()*8-4, rng.Float64()*8-4)
			if a <= b {
				require.LessOrEqual(t, math.Log1p(a), math.Log1p(b))
			} else {
				require.Greater(t, math.Log1p(a), math.Log1p(b))
			}
		}
	}
}

func TestGradient_MatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	pts := [][2]float64{{0.3, -0.7}, {1.2, 0.4}, {-1.5, 2.0}}
	for _, k := range All() {
		for _, p := range pts {
			gx, gy := k.Gradient(p[0], p[1])
			nx := (k.Eval(p[0]+h, p[1]) - k.Eval(p[0]-h, p[1])) / (2 * h)
			ny := (k.Eval(p[0], p[1]+h) - k.Eval(p[0], p[1]-h)) / (2 * h)
			tol := 1e-4 * math.Max(1, math.Abs(nx)+math.Abs(ny))
			assert.InDelta(t, nx, gx, tol, "%s d/dx at %v", k, p)
			assert.InDelta(t, ny, gy, tol, "%s d/dy at %v", k, p)
		}
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"quadratic", "rosenbrock", "himmelblau", "beale"}, Names())
	assert.Equal(t, "unknown", Kind(42).String())
}
