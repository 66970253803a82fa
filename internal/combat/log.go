package combat

// DefaultLogCapacity is the number of events kept when no capacity is given.
const DefaultLogCapacity = 10

// Log is an ordered, bounded history of combat events.
// Once full, the oldest event is evicted first.
type Log struct {
	events   []Event
	capacity int
}

// NewLog creates an empty log. A non-positive capacity selects DefaultLogCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	// Storage grows with use; capacity may be far larger than any duel
	return &Log{
		events:   make([]Event, 0, min(capacity, DefaultLogCapacity)),
		capacity: capacity,
	}
}

// Append adds an event at the end, dropping from the front until the log
// fits its capacity again.
func (l *Log) Append(e Event) {
	l.events = append(l.events, e)
	if over := len(l.events) - l.capacity; over > 0 {
		// Shift in place so the backing array does not grow without bound
		n := copy(l.events, l.events[over:])
		clear(l.events[n:])
		l.events = l.events[:n]
	}
}

// Recent returns up to the last n events, oldest first.
// The returned slice is a copy; the log is not modified.
func (l *Log) Recent(n int) []Event {
	if n <= 0 || len(l.events) == 0 {
		return nil
	}
	start := max(len(l.events)-n, 0)
	out := make([]Event, len(l.events)-start)
	copy(out, l.events[start:])
	return out
}

// All returns a copy of every event currently held.
func (l *Log) All() []Event {
	return l.Recent(len(l.events))
}

// Len returns the number of events held.
func (l *Log) Len() int {
	return len(l.events)
}

// Capacity returns the maximum number of events held.
func (l *Log) Capacity() int {
	return l.capacity
}
