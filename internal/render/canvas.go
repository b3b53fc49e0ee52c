package render

// Braille patterns carry 2x4 dots per cell:
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBase = 0x2800

var dotMask = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille dot matrix of Width x Height cells, addressed in
// sub-pixels: (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	dots          []rune
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{Width: w, Height: h, dots: make([]rune, w*h)}
}

// Set lights the sub-pixel (x, y). Out of range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.dots[row*c.Width+col] |= dotMask[y%4][x%2]
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Polyline joins consecutive sub-pixel points. A single point is a dot.
func (c *Canvas) Polyline(pts [][2]int) {
	if len(pts) == 1 {
		c.Set(pts[0][0], pts[0][1])
		return
	}
	for i := 1; i < len(pts); i++ {
		c.DrawLine(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1])
	}
}

// Cell returns the Braille rune at (col, row) and whether any dot is lit.
func (c *Canvas) Cell(col, row int) (rune, bool) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return brailleBase, false
	}
	d := c.dots[row*c.Width+col]
	return brailleBase + d, d != 0
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
