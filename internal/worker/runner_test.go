//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"marketplace-api/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTask struct {
	mock.Mock
	name     string
	interval time.Duration
}

func (m *mockTask) Name() string            { return m.name }
func (m *mockTask) Interval() time.Duration { return m.interval }

func (m *mockTask) Run(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type countingTask struct {
	runs atomic.Int32
}

func (c *countingTask) Name() string            { return "counting" }
func (c *countingTask) Interval() time.Duration { return 5 * time.Millisecond }

func (c *countingTask) Run(context.Context) (int, error) {
	c.runs.Add(1)
	return 1, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunner_RunOnce(t *testing.T) {
	t.Run("runs every task in order", func(t *testing.T) {
		first := &mockTask{name: "first", interval: time.Minute}
		second := &mockTask{name: "second", interval: time.Minute}
		first.On("Run", mock.Anything).Return(3, nil).Once()
		second.On("Run", mock.Anything).Return(0, nil).Once()

		r := worker.NewRunner(discardLogger(), first, second)
		require.NoError(t, r.RunOnce(context.Background()))

		first.AssertExpectations(t)
		second.AssertExpectations(t)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		boom := errors.New("boom")
		first := &mockTask{name: "first", interval: time.Minute}
		second := &mockTask{name: "second", interval: time.Minute}
		first.On("Run", mock.Anything).Return(0, boom).Once()

		r := worker.NewRunner(discardLogger(), first, second)
		err := r.RunOnce(context.Background())

		assert.ErrorIs(t, err, boom)
		second.AssertNotCalled(t, "Run", mock.Anything)
	})
}

func TestRunner_Start(t *testing.T) {
	task := &countingTask{}
	r := worker.NewRunner(discardLogger(), task)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Start(ctx) }()

	assert.Eventually(t, func() bool { return task.runs.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("runner did not stop after cancel")
	}
}

func TestRunner_StartRejectsNonPositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		task := &mockTask{name: "broken", interval: interval}
		r := worker.NewRunner(discardLogger(), task)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		err := r.Start(ctx)
		cancel()

		assert.ErrorIs(t, err, worker.ErrInvalidInterval)
		task.AssertNotCalled(t, "Run", mock.Anything)
	}
}
