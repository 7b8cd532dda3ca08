// Package performance provides performance markers for tracking operation
// timings across PullPane request handling.
package performance

import (
	"fmt"
	"sync"
	"time"
)

// Marker represents a single performance measurement for an operation
type Marker struct {
	Operation string         `json:"operation"` // e.g. "fragment:generate", "state:dispatch"
	SessionID string         `json:"sessionId"` // Session the operation ran for, if any
	StartTime time.Time      `json:"startTime"` // When the operation started
	EndTime   time.Time      `json:"endTime"`   // When the operation completed
	Duration  time.Duration  `json:"duration"`  // Total operation duration
	Success   bool           `json:"success"`   // Whether the operation completed successfully
	Error     string         `json:"error,omitempty"`
	Metadata  map[string]any `json:"metadata"` // Additional operation-specific data
	Completed bool           `json:"completed"`
}

// Complete marks the operation as finished and calculates final metrics
func (m *Marker) Complete() {
	if m.Completed {
		return
	}
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.Completed = true
}

// SetSuccess marks the operation as successful or failed
func (m *Marker) SetSuccess(success bool) {
	m.Success = success
}

// SetError sets an error message and marks the operation as failed
func (m *Marker) SetError(err error) {
	if err != nil {
		m.Error = err.Error()
		m.Success = false
	}
}

// AddMetadata adds key-value metadata to the marker
func (m *Marker) AddMetadata(key string, value any) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]any)
	}
	m.Metadata[key] = value
}

// Tracker manages performance markers with bounded retention.
type Tracker struct {
	markers    map[string]*Marker
	maxMarkers int
	sequence   uint64
	started    time.Time
	mu         sync.RWMutex
}

// NewTracker creates a tracker retaining at most maxMarkers markers.
func NewTracker(maxMarkers int) *Tracker {
	if maxMarkers <= 0 {
		maxMarkers = 10000
	}
	return &Tracker{
		markers:    make(map[string]*Marker),
		maxMarkers: maxMarkers,
		started:    time.Now(),
	}
}

// StartOperation begins a new performance marker for an operation.
func (t *Tracker) StartOperation(operation, sessionID string) *Marker {
	marker := &Marker{
		Operation: operation,
		SessionID: sessionID,
		StartTime: time.Now(),
		Success:   true,
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.sequence++
	id := fmt.Sprintf("%s-%d", operation, t.sequence)
	if len(t.markers) >= t.maxMarkers {
		// Drop the whole window rather than tracking insertion order.
		t.markers = make(map[string]*Marker)
	}
	t.markers[id] = marker

	return marker
}

// CompletedCount returns the number of retained completed markers.
func (t *Tracker) CompletedCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, m := range t.markers {
		if m.Completed {
			count++
		}
	}
	return count
}

// Uptime returns how long the tracker has been running.
func (t *Tracker) Uptime() time.Duration {
	return time.Since(t.started)
}
