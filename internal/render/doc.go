// Package render draws trajectory panels in the terminal.
//
// A panel is a character raster: the sampled field becomes cell
// backgrounds, contour outlines become dots, and the revealed path is a
// Braille polyline with sub-cell resolution. A Context holds everything a
// session needs to draw and is rebuilt, not mutated, when the theme
// changes.
package render
