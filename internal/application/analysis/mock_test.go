package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// --- Model client mock ---

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Complete(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

func (m *mockClient) Provider() string { return "mock" }

func (m *mockClient) Model() string { return "mock-model" }

// --- Clock fake ---

// fakeClock fires After immediately (unless blocked) and records the waits.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	waits   []time.Duration
	blocked bool
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.waits = append(c.waits, d)
	ch := make(chan time.Time, 1)
	if !c.blocked {
		c.now = c.now.Add(d)
		ch <- c.now
	}
	return ch
}
