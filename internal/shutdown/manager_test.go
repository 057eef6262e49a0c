package shutdown

import (
	"context"
	"sync"
	"testing"
	"time"

	"budget-tracker/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestShutdown_ReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.NewNop(), time.Second)

	var mu sync.Mutex
	var order []string
	record := func(name string) ShutdownFunc {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	m.Register("view", record("view"))
	m.Register("controller", record("controller"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"controller", "view"}, order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdown_SlowComponentTimesOut(t *testing.T) {
	m := NewManager(logger.NewNop(), 10*time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	m.Register("stuck", ShutdownFunc(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), time.Second)
}

func TestListen_StopsWithContext(t *testing.T) {
	m := NewManager(logger.NewNop(), time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	m.Listen(ctx)
	cancel()

	assert.NoError(t, m.Context().Err())
}
