package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colormap is an ordered list of hex stops, low to high.
type Colormap []string

// At interpolates the colormap at t in [0, 1] in Lab space.
func (m Colormap) At(t float64) colorful.Color {
	if len(m) == 0 {
		return colorful.Color{}
	}
	if len(m) == 1 || math.IsNaN(t) || t <= 0 {
		return hex(m[0])
	}
	if t >= 1 {
		return hex(m[len(m)-1])
	}
	pos := t * float64(len(m)-1)
	i := int(pos)
	return hex(m[i]).BlendLab(hex(m[i+1]), pos-float64(i)).Clamped()
}

// Level returns the color of band level out of levels, the way a filled
// contour colors everything between two thresholds alike.
func (m Colormap) Level(level, levels int) colorful.Color {
	if levels <= 1 {
		return m.At(0)
	}
	return m.At(float64(level) / float64(levels-1))
}

// Quantize maps t in [0, 1] onto one of levels bands.
func Quantize(t float64, levels int) int {
	if levels <= 1 || math.IsNaN(t) || t <= 0 {
		return 0
	}
	l := int(t * float64(levels))
	if l >= levels {
		return levels - 1
	}
	return l
}

// Over blends fg over bg with opacity alpha and returns a terminal color.
func Over(fg colorful.Color, bg lipgloss.Color, alpha float64) lipgloss.Color {
	return lipgloss.Color(hex(string(bg)).BlendRgb(fg, alpha).Clamped().Hex())
}

// Hex converts a lipgloss color to go-colorful, black when unparsable.
func Hex(c lipgloss.Color) colorful.Color {
	return hex(string(c))
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
