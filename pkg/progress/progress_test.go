package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New(3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0, s.Progress())
	assert.Equal(t, []bool{false, false, false}, s.Values())
	assert.False(t, s.Complete())
}

func TestToggle(t *testing.T) {
	s := New(3).Toggle(2)
	assert.Equal(t, []bool{false, false, true}, s.Values())
	assert.Equal(t, 1, s.Progress())
	assert.True(t, s.Done(2))
}

func TestToggleInvolution(t *testing.T) {
	states := []Steps{New(3), New(3).Toggle(0), New(3).Toggle(1).Toggle(2)}
	for _, s := range states {
		for i := range s.Len() {
			assert.Equal(t, s, s.Toggle(i).Toggle(i))
		}
	}
}

func TestToggleOutOfOrder(t *testing.T) {
	s := New(3).Toggle(2).Toggle(0).Toggle(1)
	assert.True(t, s.Complete())
	assert.Equal(t, 3, s.Progress())
}

func TestToggleDoesNotMutateReceiver(t *testing.T) {
	s := New(3)
	_ = s.Toggle(1)
	assert.False(t, s.Done(1))
}

func TestToggleOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { New(3).Toggle(3) })
	assert.Panics(t, func() { New(3).Toggle(-1) })
}

func TestReset(t *testing.T) {
	s := New(3).Toggle(0).Toggle(2).Reset()
	assert.Equal(t, New(3), s)
	assert.Equal(t, 0, s.Progress())
}

func TestCompleteEmpty(t *testing.T) {
	assert.False(t, New(0).Complete())
}

func TestValuesIsCopy(t *testing.T) {
	s := New(2)
	v := s.Values()
	v[0] = true
	assert.False(t, s.Done(0))
}
