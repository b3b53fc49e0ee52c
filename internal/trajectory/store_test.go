package trajectory

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows() []Row {
	return []Row{
		{"quadratic", "momentum", 2, 2},
		{"quadratic", "vanilla", 2, 2},
		{"quadratic", "momentum", 1.5, 1.4},
		{"quadratic", "vanilla", 1.9, 1.9},
		{"quadratic", "momentum", 0.7, 0.6},
	}
}

func TestFromRows_GroupsInOrder(t *testing.T) {
	s, err := FromRows(rows())
	require.NoError(t, err)

	assert.Equal(t, "quadratic", s.Landscape())
	assert.Equal(t, []string{"momentum", "vanilla"}, s.Names())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, s.MaxLen())

	m, ok := s.Get("momentum")
	require.True(t, ok)
	assert.Equal(t, []Point{{2, 2}, {1.5, 1.4}, {0.7, 0.6}}, m.Points)
	assert.Equal(t, Point{2, 2}, m.Start())
	assert.Equal(t, Point{0.7, 0.6}, m.Last())

	_, ok = s.Get("adam")
	assert.False(t, ok)
}

func TestFromRows_Errors(t *testing.T) {
	_, err := FromRows(nil)
	assert.True(t, errors.Is(err, ErrNoRows))

	mixed := append(rows(), Row{"beale", "vanilla", 0, 0})
	_, err = FromRows(mixed)
	assert.True(t, errors.Is(err, ErrMixedLandscapes))

	_, err = FromRows([]Row{{"quadratic", "", 0, 0}})
	assert.True(t, errors.Is(err, ErrEmptyName))
}

func TestNamesIsACopy(t *testing.T) {
	s, err := FromRows(rows())
	require.NoError(t, err)
	names := s.Names()
	names[0] = "mutated"
	assert.Equal(t, "momentum", s.Names()[0])
}

func TestNew_SkipsEmpty(t *testing.T) {
	s := New("beale",
		Trajectory{Optimizer: "a", Points: []Point{{0, 0}}},
		Trajectory{Optimizer: "b"},
	)
	assert.Equal(t, []string{"a"}, s.Names())
	assert.Equal(t, 1, s.MaxLen())
}

func TestCoords(t *testing.T) {
	s, err := FromRows(rows())
	require.NoError(t, err)
	xs, ys := s.Coords()
	assert.Equal(t, []float64{2, 1.5, 0.7, 2, 1.9}, xs)
	assert.Equal(t, []float64{2, 1.4, 0.6, 2, 1.9}, ys)
}
