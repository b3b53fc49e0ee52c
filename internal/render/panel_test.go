package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/trajviz/internal/anim"
	"github.com/san-kum/trajviz/internal/field"
	"github.com/san-kum/trajviz/internal/landscape"
	"github.com/san-kum/trajviz/internal/palette"
	"github.com/san-kum/trajviz/internal/theme"
	"github.com/san-kum/trajviz/internal/trajectory"
)

const (
	nameA = "vanilla gradient descent"
	nameB = "adam"
)

func fixture(t *testing.T, geo Geometry) *Context {
	t.Helper()
	store := trajectory.New("quadratic",
		trajectory.Trajectory{Optimizer: nameA, Points: []trajectory.Point{
			{X: 4, Y: 4}, {X: 3, Y: 3}, {X: 2, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 0},
		}},
		trajectory.Trajectory{Optimizer: nameB, Points: []trajectory.Point{
			{X: 4, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 4},
		}},
	)
	sample, err := field.New(store, landscape.Quadratic, 60, field.DefaultPad)
	require.NoError(t, err)
	return NewContext(theme.Light, palette.FromTheme(theme.Light, nil), sample, store, geo)
}

func small() Geometry {
	return Geometry{Width: 20, Height: 10, FillLevels: 40, OutlineLevels: 20}
}

func countRune(r *Raster, ch rune) int {
	return strings.Count(r.Text(), string(ch))
}

func TestGeometryDefaults(t *testing.T) {
	ctx := fixture(t, Geometry{})
	assert.Equal(t, DefaultGeometry(), ctx.Geo)
}

func TestProjectCorners(t *testing.T) {
	ctx := fixture(t, small())
	b := ctx.Sample.Bounds

	x, y := ctx.Project(trajectory.Point{X: b.XMin, Y: b.YMax})
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y = ctx.Project(trajectory.Point{X: b.XMax, Y: b.YMin})
	assert.Equal(t, 39, x)
	assert.Equal(t, 39, y)

	col, row := ctx.CellOf(trajectory.Point{X: b.XMax, Y: b.YMin})
	assert.Equal(t, 19, col)
	assert.Equal(t, 9, row)
}

func TestFieldRasterShading(t *testing.T) {
	ctx := fixture(t, small())
	b := ctx.Sample.Bounds

	low, lr := ctx.CellOf(trajectory.Point{X: 0, Y: 0})
	high, hr := ctx.CellOf(trajectory.Point{X: b.XMax, Y: b.YMax})
	lowBG := ctx.base.At(low, lr).BG
	highBG := ctx.base.At(high, hr).BG
	assert.NotEqual(t, lowBG, highBG)

	// Blues gets darker as the value grows.
	l1, _, _ := theme.Hex(lowBG).Lab()
	l2, _, _ := theme.Hex(highBG).Lab()
	assert.Greater(t, l1, l2)

	for row := 0; row < ctx.base.Height; row++ {
		for col := 0; col < ctx.base.Width; col++ {
			assert.NotEmpty(t, ctx.base.At(col, row).BG)
		}
	}
	assert.Positive(t, countRune(ctx.base, '·'))
}

func TestPanelRasterIdle(t *testing.T) {
	ctx := fixture(t, small())
	r := ctx.PanelRaster(nameA, anim.Update{}, false)

	assert.Equal(t, 1, countRune(r, StartMarker))
	assert.Zero(t, countRune(r, CurrentMarker))

	col, row, ok := ctx.StartCell(nameA)
	require.True(t, ok)
	start := r.At(col, row)
	assert.Equal(t, StartMarker, start.Ch)
	assert.Equal(t, theme.Light.Accent, start.FG)
	assert.Equal(t, ctx.base.At(col, row).BG, start.BG)
}

func TestPanelRasterRunning(t *testing.T) {
	ctx := fixture(t, small())
	st := anim.StateAt(ctx.Store, 2, false)
	u, ok := st.Update(nameA)
	require.True(t, ok)

	r := ctx.PanelRaster(nameA, u, true)
	color := theme.Light.Palette[nameA]

	col, row := ctx.CellOf(u.Current)
	cur := r.At(col, row)
	assert.Equal(t, CurrentMarker, cur.Ch)
	assert.Equal(t, color, cur.FG)
	assert.True(t, cur.Bold)

	scol, srow, _ := ctx.StartCell(nameA)
	assert.Equal(t, StartMarker, r.At(scol, srow).Ch)

	braille := 0
	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			c := r.At(col, row)
			if c.Ch >= brailleBase && c.Ch <= brailleBase+0xff {
				braille++
				assert.Equal(t, color, c.FG)
			}
		}
	}
	assert.Positive(t, braille)

	// The base raster is shared and must stay clean.
	assert.Zero(t, countRune(ctx.base, CurrentMarker))
}

func TestPanelRasterStartMarkerWinsAtFrameZero(t *testing.T) {
	ctx := fixture(t, small())
	u, _ := anim.StateAt(ctx.Store, 0, false).Update(nameA)
	r := ctx.PanelRaster(nameA, u, true)
	assert.Equal(t, 1, countRune(r, StartMarker))
	assert.Zero(t, countRune(r, CurrentMarker))
}

func TestPanelRasterFallbackColor(t *testing.T) {
	ctx := fixture(t, small())
	u, _ := anim.StateAt(ctx.Store, 2, false).Update(nameB)
	r := ctx.PanelRaster(nameB, u, true)
	col, row := ctx.CellOf(u.Current)
	assert.Equal(t, theme.Light.Fallback, r.At(col, row).FG)
}

func TestThemeSwitchKeepsContent(t *testing.T) {
	ctx := fixture(t, small())
	dark := ctx.WithTheme(theme.Dark, palette.FromTheme(theme.Dark, nil))
	u, _ := anim.StateAt(ctx.Store, 3, false).Update(nameA)

	light := ctx.PanelRaster(nameA, u, true)
	other := dark.PanelRaster(nameA, u, true)
	assert.Equal(t, light.Text(), other.Text())
	assert.NotEqual(t, light.At(0, 0).BG, other.At(0, 0).BG)
}

func TestPanelFrame(t *testing.T) {
	geo := small()
	geo.ShowCounter = true
	ctx := fixture(t, geo)
	u, _ := anim.StateAt(ctx.Store, 2, true).Update(nameA)

	out := ctx.Panel(nameA, u, true)
	assert.Contains(t, out, "vanilla gradient de…")
	assert.Contains(t, out, "iter: 2")
	assert.Equal(t, geo.Width+2, lipgloss.Width(out))
	assert.Equal(t, geo.Height+4, lipgloss.Height(out))

	idle := ctx.Panel(nameA, anim.Update{}, false)
	assert.NotContains(t, idle, "iter:")
	assert.Equal(t, lipgloss.Height(out), lipgloss.Height(idle))
}

func TestCounterPanel(t *testing.T) {
	ctx := fixture(t, small())
	out := ctx.Counter(anim.StateAt(ctx.Store, 4, true))

	assert.Contains(t, out, CounterTitle)
	assert.Contains(t, out, "vanilla gradient")
	assert.Contains(t, out, nameB)
	assert.Contains(t, out, "iter: 4")
	assert.Contains(t, out, "iter: 2")
	assert.Equal(t, small().Width+2, lipgloss.Width(out))
}

func TestBlank(t *testing.T) {
	ctx := fixture(t, small())
	b := ctx.Blank()
	assert.Equal(t, small().Width+2, lipgloss.Width(b))
	assert.Equal(t, small().Height+4, lipgloss.Height(b))
}

func TestTitle(t *testing.T) {
	ctx := fixture(t, small())
	assert.Contains(t, ctx.Title(), "quadratic")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
}
