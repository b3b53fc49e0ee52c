package anim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajviz/internal/anim"
	"github.com/san-kum/trajviz/internal/trajectory"
)

func line(name string, n int) trajectory.Trajectory {
	pts := make([]trajectory.Point, n)
	for i := range pts {
		pts[i] = trajectory.Point{X: float64(i), Y: -float64(i)}
	}
	return trajectory.Trajectory{Optimizer: name, Points: pts}
}

var _ = Describe("Reveal", func() {
	It("clamps at the last index", func() {
		Expect(anim.Reveal(0, 3)).To(Equal(0))
		Expect(anim.Reveal(2, 3)).To(Equal(2))
		Expect(anim.Reveal(3, 3)).To(Equal(2))
		Expect(anim.Reveal(100, 3)).To(Equal(2))
	})

	It("is never negative", func() {
		Expect(anim.Reveal(-4, 3)).To(Equal(0))
		Expect(anim.Reveal(5, 0)).To(Equal(0))
	})

	It("is monotonic and freezes once the trajectory is exhausted", func() {
		for length := 1; length <= 12; length++ {
			prev := 0
			for f := 0; f < 40; f++ {
				r := anim.Reveal(f, length)
				Expect(r).To(BeNumerically(">=", prev))
				Expect(r).To(BeNumerically("<=", length-1))
				if f >= length-1 {
					Expect(r).To(Equal(length - 1))
				}
				prev = r
			}
		}
	})
})

var _ = Describe("Clock", func() {
	var store *trajectory.Store

	BeforeEach(func() {
		store = trajectory.New("quadratic", line("A", 5), line("B", 3))
	})

	It("starts idle with maxFrame from the longest trajectory", func() {
		c := anim.NewClock(store)
		Expect(c.Phase()).To(Equal(anim.Idle))
		Expect(c.MaxFrame()).To(Equal(4))
		Expect(c.Frame()).To(Equal(0))
	})

	It("emits exactly maxFrame+1 states and then finishes", func() {
		c := anim.NewClock(store)
		var frames []int
		for {
			st, ok := c.Tick()
			if !ok {
				break
			}
			frames = append(frames, st.Frame)
			Expect(st.Updates).To(HaveLen(2))
		}
		Expect(frames).To(Equal([]int{0, 1, 2, 3, 4}))
		Expect(c.Phase()).To(Equal(anim.Finished))
		Expect(c.Frame()).To(Equal(5))

		_, ok := c.Tick()
		Expect(ok).To(BeFalse())
		Expect(c.Frame()).To(Equal(5))
	})

	It("is running between the first and the last tick", func() {
		c := anim.NewClock(store)
		c.Tick()
		Expect(c.Phase()).To(Equal(anim.Running))
		Expect(c.Progress()).To(BeNumerically("~", 0.2, 1e-9))
	})

	It("freezes the shorter trajectory at the last frame", func() {
		c := anim.NewClock(store, anim.WithCounter(true))
		var last anim.State
		for {
			st, ok := c.Tick()
			if !ok {
				break
			}
			last = st
		}
		Expect(last.Frame).To(Equal(4))

		a, ok := last.Update("A")
		Expect(ok).To(BeTrue())
		Expect(a.Reveal).To(Equal(4))
		Expect(a.Path).To(HaveLen(5))
		Expect(a.Current).To(Equal(trajectory.Point{X: 4, Y: -4}))
		Expect(a.Counter).To(Equal("iter: 4"))

		b, ok := last.Update("B")
		Expect(ok).To(BeTrue())
		Expect(b.Reveal).To(Equal(2))
		Expect(b.Path).To(HaveLen(3))
		Expect(b.Current).To(Equal(trajectory.Point{X: 2, Y: -2}))
		Expect(b.Counter).To(Equal("iter: 2"))
	})

	It("omits counter text unless enabled", func() {
		st, ok := anim.NewClock(store).Tick()
		Expect(ok).To(BeTrue())
		Expect(st.Updates[0].Counter).To(BeEmpty())
	})

	It("is finished immediately for an empty store", func() {
		c := anim.NewClock(trajectory.New("quadratic"))
		Expect(c.Phase()).To(Equal(anim.Finished))
		_, ok := c.Tick()
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("StateAt", func() {
	It("shares points without allowing appends into the store", func() {
		store := trajectory.New("quadratic", line("A", 4))
		st := anim.StateAt(store, 1, false)
		u := st.Updates[0]
		Expect(u.Path).To(HaveLen(2))
		Expect(cap(u.Path)).To(Equal(2))

		_ = append(u.Path, trajectory.Point{X: 99, Y: 99})
		t, _ := store.Get("A")
		Expect(t.Points[2]).To(Equal(trajectory.Point{X: 2, Y: -2}))
	})

	It("keeps store order", func() {
		store := trajectory.New("quadratic", line("z", 2), line("a", 2))
		st := anim.StateAt(store, 0, false)
		Expect(st.Updates[0].Optimizer).To(Equal("z"))
		Expect(st.Updates[1].Optimizer).To(Equal("a"))
		_, ok := st.Update("missing")
		Expect(ok).To(BeFalse())
	})
})
