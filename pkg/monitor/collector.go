package monitor

import (
	"sync"
	"time"
)

// EventCollector captures test events and timing data.
type EventCollector struct {
	mu       sync.RWMutex
	events   []Event
	handlers []func(Event)
	stats    CollectorStats
}

// CollectorStats holds aggregate statistics for a run.
type CollectorStats struct {
	Tests      int           `json:"tests"`
	Passed     int           `json:"passed"`
	Failed     int           `json:"failed"`
	Assertions int           `json:"assertion_failures"`
	StartTime  time.Time     `json:"start_time"`
	Duration   time.Duration `json:"duration"`
}

// NewEventCollector creates a new event collector.
func NewEventCollector() *EventCollector {
	return &EventCollector{
		events: make([]Event, 0, 64),
		stats:  CollectorStats{StartTime: time.Now()},
	}
}

// OnEvent registers a handler to be called for each event.
func (c *EventCollector) OnEvent(handler func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers.
func (c *EventCollector) Emit(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	switch event.Type {
	case EventTestStarted:
		c.stats.Tests++
	case EventTestPassed:
		c.stats.Passed++
	case EventTestFailed:
		c.stats.Failed++
	case EventAssertionFailed:
		c.stats.Assertions++
	}
	c.stats.Duration = time.Since(c.stats.StartTime)
	handlers := make([]func(Event), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// EmitTestStarted emits a test started event.
func (c *EventCollector) EmitTestStarted(id, name string) {
	c.Emit(Event{
		Type:     EventTestStarted,
		TestID:   id,
		TestName: name,
	})
}

// EmitTestPassed emits a test passed event.
func (c *EventCollector) EmitTestPassed(
	id, name string, duration time.Duration,
) {
	c.Emit(Event{
		Type:     EventTestPassed,
		TestID:   id,
		TestName: name,
		Duration: duration,
	})
}

// EmitTestFailed emits a test failed event.
func (c *EventCollector) EmitTestFailed(
	id, name string, duration time.Duration,
) {
	c.Emit(Event{
		Type:     EventTestFailed,
		TestID:   id,
		TestName: name,
		Duration: duration,
	})
}

// EmitAssertionFailed emits an assertion failure event. These
// can arrive after their test has finished when an
// asynchronous-bridged matcher settles late.
func (c *EventCollector) EmitAssertionFailed(
	id, name, message string,
) {
	c.Emit(Event{
		Type:     EventAssertionFailed,
		TestID:   id,
		TestName: name,
		Message:  message,
	})
}

// Events returns a copy of all collected events.
func (c *EventCollector) Events() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Event, len(c.events))
	copy(result, c.events)
	return result
}

// Stats returns the current aggregate statistics.
func (c *EventCollector) Stats() CollectorStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.stats
	s.Duration = time.Since(s.StartTime)
	return s
}

// Reset clears all collected events and statistics.
func (c *EventCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
	c.stats = CollectorStats{StartTime: time.Now()}
}
