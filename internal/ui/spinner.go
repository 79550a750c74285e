package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const (
	frameInterval = 80 * time.Millisecond
	stopWait      = 200 * time.Millisecond
	clearWidth    = 80
)

// Spinner shows a status line for a long-running operation. On an
// interactive terminal it animates from a background goroutine; otherwise
// it prints each message once as a plain line.
type Spinner struct {
	w           io.Writer
	color       string
	interactive bool

	mu       sync.Mutex // guards message, writes and the lifecycle fields below
	message  string
	frame    int
	running  bool
	stop     chan struct{}
	finished chan struct{}
	shown    bool
}

// NewSpinner returns a stopped spinner writing to w.
func NewSpinner(w io.Writer, message, color string, interactive bool) *Spinner {
	return &Spinner{w: w, message: message, color: color, interactive: interactive}
}

// Start begins displaying the spinner. Calling Start on a running spinner
// does nothing.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	if !s.interactive {
		if !s.shown {
			fmt.Fprintf(s.w, "⏳ %s\n", s.message)
			s.shown = true
		}
		return
	}
	s.stop = make(chan struct{})
	s.finished = make(chan struct{})
	go s.spin(s.stop, s.finished)
}

func (s *Spinner) spin(stop <-chan struct{}, finished chan<- struct{}) {
	defer close(finished)
	t := time.NewTicker(frameInterval)
	defer t.Stop()
	for {
		if !s.draw(stop) {
			return
		}
		select {
		case <-stop:
			return
		case <-t.C:
		}
	}
}

// draw writes one frame unless stop has been closed.
func (s *Spinner) draw(stop <-chan struct{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-stop:
		return false
	default:
	}
	frame := SpinnerFrames[s.frame%len(SpinnerFrames)]
	fmt.Fprintf(s.w, "\r%s%s%s %s  ", s.color, frame, Reset, s.message)
	s.frame++
	return true
}

// Update replaces the displayed message. Without a terminal the new message
// is printed once per call.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	if !s.interactive {
		fmt.Fprintf(s.w, "⏳ %s\n", message)
		s.shown = true
	}
}

// Stop halts the animation, clears the spinner line on a terminal and, if
// final is non-empty, prints a completion line. The animation goroutine is
// given up to 200ms to exit; if it has not, Stop returns anyway and the
// goroutine exits on its next tick without drawing.
func (s *Spinner) Stop(final string) {
	s.mu.Lock()
	wasRunning := s.running
	s.running = false
	stop, finished := s.stop, s.finished
	s.stop, s.finished = nil, nil
	if stop != nil {
		close(stop)
	}
	s.mu.Unlock()

	if finished != nil {
		select {
		case <-finished:
		case <-time.After(stopWait):
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.interactive && wasRunning {
		fmt.Fprint(s.w, "\r"+strings.Repeat(" ", clearWidth)+"\r")
	}
	if final != "" {
		fmt.Fprintf(s.w, "✓ %s\n", final)
	}
}
