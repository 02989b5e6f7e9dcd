// Package progress tracks completion of a lesson's ordered steps. Steps may
// be completed in any order and completion never gates anything else.
package progress

// Steps is a fixed-length sequence of completion flags. It is a value type;
// operations return a new Steps.
type Steps struct {
	done []bool
}

// New returns n incomplete steps.
func New(n int) Steps {
	return Steps{done: make([]bool, n)}
}

// Toggle flips step i. An index outside [0, Len()) panics.
func (s Steps) Toggle(i int) Steps {
	next := append([]bool(nil), s.done...)
	next[i] = !next[i]
	return Steps{done: next}
}

// Reset marks every step incomplete.
func (s Steps) Reset() Steps {
	return New(len(s.done))
}

// Progress returns the number of completed steps.
func (s Steps) Progress() int {
	n := 0
	for _, d := range s.done {
		if d {
			n++
		}
	}
	return n
}

// Complete reports whether every step is done.
func (s Steps) Complete() bool {
	return len(s.done) > 0 && s.Progress() == len(s.done)
}

// Len returns the fixed number of steps.
func (s Steps) Len() int { return len(s.done) }

// Done reports whether step i is complete.
func (s Steps) Done(i int) bool { return s.done[i] }

// Values returns a copy of the flags.
func (s Steps) Values() []bool {
	return append([]bool(nil), s.done...)
}
