package engine

import (
	"context"
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing.
// Sleep returns immediately, advancing the mocked time and recording the duration.
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	sleeps      []time.Duration
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Sleep advances the mocked time by d unless ctx is already done
func (m *MockTimeProvider) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	m.sleeps = append(m.sleeps, d)
	return nil
}

// Sleeps returns every duration passed to Sleep, in order
func (m *MockTimeProvider) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}
