package event

import "fmt"

// Log keeps the most recent events for the "Events" panel of the frontends.
type Log struct {
	entries []Event
	start   int
	size    int
}

// NewLog creates a log holding at most capacity events.
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = 1
	}
	return &Log{entries: make([]Event, capacity)}
}

func (l *Log) OnEvent(e Event) {
	if l.size < len(l.entries) {
		l.entries[(l.start+l.size)%len(l.entries)] = e
		l.size++
		return
	}
	l.entries[l.start] = e
	l.start = (l.start + 1) % len(l.entries)
}

// Len returns the number of stored events.
func (l *Log) Len() int {
	return l.size
}

// Recent returns up to n newest events, oldest first.
func (l *Log) Recent(n int) []Event {
	if n > l.size {
		n = l.size
	}
	out := make([]Event, 0, n)
	for i := l.size - n; i < l.size; i++ {
		out = append(out, l.entries[(l.start+i)%len(l.entries)])
	}
	return out
}

// Lines formats the n newest events as "[tick] message".
func (l *Log) Lines(n int) []string {
	recent := l.Recent(n)
	lines := make([]string, len(recent))
	for i, e := range recent {
		msg := e.Message
		if msg == "" {
			msg = string(e.Type)
		}
		lines[i] = fmt.Sprintf("[%5d] %s", e.Tick, msg)
	}
	return lines
}
