package anim

import (
	"fmt"

	"github.com/san-kum/trajviz/internal/trajectory"
)

// Reveal returns the last visible index of a trajectory of the given length
// at frame: min(frame, length-1), never negative.
func Reveal(frame, length int) int {
	if length <= 0 || frame <= 0 {
		return 0
	}
	if frame > length-1 {
		return length - 1
	}
	return frame
}

// CounterText formats the iteration counter shown for a reveal index.
func CounterText(reveal int) string {
	return fmt.Sprintf("iter: %d", reveal)
}

// Update is the per-trajectory payload of one tick.
type Update struct {
	Optimizer string
	Reveal    int
	// Path is points[0..Reveal]. It shares the store's backing array and
	// must not be modified.
	Path    []trajectory.Point
	Current trajectory.Point
	// Counter is empty unless the clock was built WithCounter(true).
	Counter string
}

// State is the immutable snapshot renderers consume for one frame.
type State struct {
	Frame   int
	Updates []Update
}

// Update looks up the entry for an optimizer.
func (s State) Update(name string) (Update, bool) {
	for _, u := range s.Updates {
		if u.Optimizer == name {
			return u, true
		}
	}
	return Update{}, false
}

// StateAt computes the snapshot of every trajectory at frame.
func StateAt(store *trajectory.Store, frame int, counter bool) State {
	st := State{Frame: frame, Updates: make([]Update, 0, store.Len())}
	store.Each(func(t trajectory.Trajectory) {
		i := Reveal(frame, t.Len())
		u := Update{
			Optimizer: t.Optimizer,
			Reveal:    i,
			Path:      t.Points[:i+1:i+1],
			Current:   t.Points[i],
		}
		if counter {
			u.Counter = CounterText(i)
		}
		st.Updates = append(st.Updates, u)
	})
	return st
}
