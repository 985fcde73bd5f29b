package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/lvillar/screenreport/hourglass"
)

var spinnerFrames = []string{"|", "/", "-", `\`}

// busyIndicator draws a spinner on a terminal while an override is held.
type busyIndicator struct {
	w        io.Writer
	interval time.Duration

	mu    sync.Mutex
	depth int
	stop  chan struct{}
	done  chan struct{}
}

func newBusyIndicator(w io.Writer) *busyIndicator {
	return &busyIndicator{w: w, interval: 120 * time.Millisecond}
}

// Override implements hourglass.Overrider.
func (b *busyIndicator) Override(shape hourglass.Shape) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.depth++
	if b.depth > 1 {
		return
	}
	b.stop = make(chan struct{})
	b.done = make(chan struct{})
	go b.spin(shape.String(), b.stop, b.done)
}

// Restore implements hourglass.Overrider.
func (b *busyIndicator) Restore() {
	b.mu.Lock()
	if b.depth == 0 {
		b.mu.Unlock()
		return
	}
	b.depth--
	if b.depth > 0 {
		b.mu.Unlock()
		return
	}
	stop, done := b.stop, b.done
	b.mu.Unlock()

	close(stop)
	<-done
}

func (b *busyIndicator) spin(label string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		fmt.Fprintf(b.w, "\r%s %s", spinnerFrames[i%len(spinnerFrames)], label)
		select {
		case <-stop:
			fmt.Fprint(b.w, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}
