package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/dshills/fluxlist/internal/action"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	perType map[action.Type]*TypeMetrics

	totalDispatches uint64
	totalPanics     uint64
	totalDuration   time.Duration
}

// TypeMetrics holds metrics for one action type.
type TypeMetrics struct {
	Type          action.Type
	DispatchCount uint64
	PanicCount    uint64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	LastDispatch  time.Time
}

// NewMetrics creates an empty collector.
func NewMetrics() *Metrics {
	return &Metrics{
		perType: make(map[action.Type]*TypeMetrics),
	}
}

// RecordDispatch records one completed dispatch.
func (m *Metrics) RecordDispatch(t action.Type, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration

	tm := m.entry(t)
	if tm.DispatchCount == 0 {
		tm.MinDuration = duration
		tm.MaxDuration = duration
	}
	tm.DispatchCount++
	tm.TotalDuration += duration
	tm.LastDispatch = time.Now()
	if duration < tm.MinDuration {
		tm.MinDuration = duration
	}
	if duration > tm.MaxDuration {
		tm.MaxDuration = duration
	}
}

// RecordPanic records a recovered handler panic.
func (m *Metrics) RecordPanic(t action.Type) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalPanics++
	m.entry(t).PanicCount++
}

// entry must be called with mu held. Durations stay zero until the first
// dispatch is recorded.
func (m *Metrics) entry(t action.Type) *TypeMetrics {
	tm := m.perType[t]
	if tm == nil {
		tm = &TypeMetrics{Type: t}
		m.perType[t] = tm
	}
	return tm
}

// TotalDispatches returns the number of dispatches recorded.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalPanics returns the number of recovered panics.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// AverageDuration returns the mean dispatch duration.
func (m *Metrics) AverageDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.totalDispatches == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalDispatches)
}

// TypeStats returns a copy of the metrics for t, or nil if t was never seen.
func (m *Metrics) TypeStats(t action.Type) *TypeMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tm := m.perType[t]
	if tm == nil {
		return nil
	}
	c := *tm
	return &c
}

// Snapshot returns copies of all per-type metrics, most dispatched first.
func (m *Metrics) Snapshot() []TypeMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]TypeMetrics, 0, len(m.perType))
	for _, tm := range m.perType {
		out = append(out, *tm)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DispatchCount != out[j].DispatchCount {
			return out[i].DispatchCount > out[j].DispatchCount
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.perType = make(map[action.Type]*TypeMetrics)
	m.totalDispatches = 0
	m.totalPanics = 0
	m.totalDuration = 0
}
