package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	var calls []string
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		calls = append(calls, "first")
		return nil
	})
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		calls = append(calls, "failing")
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	assert.Equal(t, []string{"first", "failing"}, calls)
}

func TestScheduler_StartStopsOnCancel(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("tick", 5*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	require.Eventually(t, func() bool { return runs.Load() > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestRegisterSessionJobs(t *testing.T) {
	svc := jwt.NewJWTService("secret", "1h", false)
	svc.RevokeToken("old", time.Now().Add(-time.Hour).Unix())

	s := NewScheduler()
	RegisterSessionJobs(s, svc)
	s.RunOnce(context.Background())

	assert.False(t, svc.IsTokenRevoked("old"))
}
