// Package hourglass shows a busy indicator for the duration of a long
// operation and restores the previous one on every exit path.
//
//	defer hourglass.Hold(ui, hourglass.Wait)()
package hourglass

import "sync"

// Shape is the indicator to show while held.
type Shape int

const (
	Wait Shape = iota
	Busy
)

func (s Shape) String() string {
	if s == Busy {
		return "busy"
	}
	return "wait"
}

// Overrider is implemented by whatever displays the indicator. Overrides
// nest: each Override is undone by exactly one Restore.
type Overrider interface {
	Override(Shape)
	Restore()
}

// Hold overrides the indicator on o and returns the function that restores
// it. The returned function is safe to call more than once; only the first
// call restores. A nil o holds nothing.
func Hold(o Overrider, shape Shape) (release func()) {
	if o == nil {
		return func() {}
	}
	o.Override(shape)
	var once sync.Once
	return func() { once.Do(o.Restore) }
}

// Stack is an Overrider that only tracks the override stack. It is useful
// when no indicator is displayed but callers still want to know whether an
// operation is in progress.
type Stack struct {
	mu     sync.Mutex
	shapes []Shape
}

// Override implements Overrider.
func (s *Stack) Override(shape Shape) {
	s.mu.Lock()
	s.shapes = append(s.shapes, shape)
	s.mu.Unlock()
}

// Restore implements Overrider.
func (s *Stack) Restore() {
	s.mu.Lock()
	if n := len(s.shapes); n > 0 {
		s.shapes = s.shapes[:n-1]
	}
	s.mu.Unlock()
}

// Current returns the innermost shape and whether any override is active.
func (s *Stack) Current() (Shape, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.shapes); n > 0 {
		return s.shapes[n-1], true
	}
	return 0, false
}

// Depth returns the number of active overrides.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shapes)
}
