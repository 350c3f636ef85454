// Package narration carries the human-readable progress stream of a run.
//
// A run never writes to a global logger or to stdout directly. It is handed
// a Sink and reports each step to it as one line. Sinks that wrap a
// resource (FileSink) must be closed by whoever opened them.
package narration

import (
	"fmt"
	"sync"
)

// Level classifies a narration line
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelFailure Level = "failure"
)

// Line is one narrated progress message
type Line struct {
	Level Level
	Text  string
}

// String renders the line the way console and file sinks print it
func (l Line) String() string {
	return fmt.Sprintf("%-7s %s", marker(l.Level), l.Text)
}

func marker(level Level) string {
	switch level {
	case LevelSuccess:
		return "[ok]"
	case LevelWarning:
		return "[warn]"
	case LevelFailure:
		return "[fail]"
	default:
		return "[..]"
	}
}

// Sink receives narration lines
type Sink interface {
	Narrate(line Line)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Line)

// Narrate calls f
func (f SinkFunc) Narrate(line Line) {
	f(line)
}

// Discard drops every line
var Discard Sink = SinkFunc(func(Line) {})

// Narrator formats messages and forwards them to a Sink
type Narrator struct {
	sink Sink
}

// New creates a Narrator writing to sink. A nil sink discards.
func New(sink Sink) *Narrator {
	if sink == nil {
		sink = Discard
	}
	return &Narrator{sink: sink}
}

// Infof narrates a progress step
func (n *Narrator) Infof(format string, args ...any) {
	n.emit(LevelInfo, format, args...)
}

// Successf narrates a completed step
func (n *Narrator) Successf(format string, args ...any) {
	n.emit(LevelSuccess, format, args...)
}

// Warnf narrates a recoverable problem
func (n *Narrator) Warnf(format string, args ...any) {
	n.emit(LevelWarning, format, args...)
}

// Failf narrates a failure
func (n *Narrator) Failf(format string, args ...any) {
	n.emit(LevelFailure, format, args...)
}

func (n *Narrator) emit(level Level, format string, args ...any) {
	n.sink.Narrate(Line{Level: level, Text: fmt.Sprintf(format, args...)})
}

// Multi fans every line out to each sink in order
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(line Line) {
		for _, s := range sinks {
			if s != nil {
				s.Narrate(line)
			}
		}
	})
}

// Recorder keeps every line in memory
type Recorder struct {
	mu    sync.Mutex
	lines []Line
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Narrate records line
func (r *Recorder) Narrate(line Line) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

// Lines returns a copy of the recorded lines
func (r *Recorder) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Line, len(r.lines))
	copy(out, r.lines)
	return out
}

// Count returns the number of recorded lines at level
func (r *Recorder) Count(level Level) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, l := range r.lines {
		if l.Level == level {
			n++
		}
	}
	return n
}
