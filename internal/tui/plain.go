package tui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/san-kum/trajviz/internal/anim"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// PlainRenderer plays a session with raw ANSI redraws, for terminals where
// the interactive program cannot run.
type PlainRenderer struct {
	w       io.Writer
	session *Session
	frames  int
}

func NewPlainRenderer(w io.Writer, s *Session) *PlainRenderer {
	return &PlainRenderer{w: w, session: s}
}

func (r *PlainRenderer) Start() { io.WriteString(r.w, hideCursor) }
func (r *PlainRenderer) Stop()  { io.WriteString(r.w, showCursor) }

// Draw repaints the screen with st.
func (r *PlainRenderer) Draw(st anim.State) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(r.session.Frame(st))
	b.WriteString("\n")
	io.WriteString(r.w, b.String())
	r.frames++
}

// Frames counts the states drawn so far.
func (r *PlainRenderer) Frames() int { return r.frames }

// Play runs a fresh clock to the end or until ctx is canceled.
func (r *PlainRenderer) Play(ctx context.Context, interval time.Duration) error {
	r.Start()
	defer r.Stop()
	return anim.Run(ctx, r.session.Clock(), interval, r.Draw)
}
