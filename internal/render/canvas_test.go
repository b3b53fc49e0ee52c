package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(1, 3)
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)

	ch, lit := c.Cell(0, 0)
	assert.True(t, lit)
	assert.Equal(t, rune(0x2800|0x1|0x80), ch)

	ch, lit = c.Cell(1, 0)
	assert.False(t, lit)
	assert.Equal(t, rune(0x2800), ch)

	_, lit = c.Cell(5, 5)
	assert.False(t, lit)
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)
	for col := 0; col < 4; col++ {
		ch, lit := c.Cell(col, 0)
		assert.True(t, lit)
		assert.Equal(t, rune(0x2800|0x1|0x8), ch)
	}
}

func TestCanvasPolyline(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Polyline([][2]int{{2, 2}})
	_, lit := c.Cell(1, 0)
	assert.True(t, lit)

	c = NewCanvas(3, 3)
	c.Polyline([][2]int{{0, 0}, {5, 0}, {5, 11}})
	_, lit = c.Cell(2, 2)
	assert.True(t, lit)
	_, lit = c.Cell(0, 2)
	assert.False(t, lit)
}
