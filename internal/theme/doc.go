// Package theme holds the styling configurations shared by the animation
// and the benchmark charts: background and foreground colors, the field
// colormap and the default optimizer palette.
package theme
