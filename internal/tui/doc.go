// Package tui runs animation sessions: an interactive bubbletea program with
// restart and theme keys, and a plain ANSI player.
package tui
