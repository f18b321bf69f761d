package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/catalog-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error { return nil }
	errService := errors.New("service error")
	failingService := func() error { return errService }

	clk := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := circuit_breaker.New(10, 2*time.Second, 0.3, 3, circuit_breaker.WithClock(clk.now))

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(successfulService))
	}
	require.Equal(t, circuit_breaker.Closed, cb.State())

	// 3 of 10 failures trips the breaker
	for i := 0; i < 3; i++ {
		require.ErrorIs(t, cb.Call(failingService), errService)
	}
	require.Equal(t, circuit_breaker.Open, cb.State())

	called := false
	err := cb.Call(func() error { called = true; return nil })
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	require.False(t, called)

	// a failed probe re-opens it
	clk.t = clk.t.Add(3 * time.Second)
	require.ErrorIs(t, cb.Call(failingService), errService)
	require.Equal(t, circuit_breaker.Open, cb.State())

	// enough successful probes close it
	clk.t = clk.t.Add(3 * time.Second)
	for i := 0; i < 2; i++ {
		require.NoError(t, cb.Call(successfulService))
		require.Equal(t, circuit_breaker.HalfOpen, cb.State())
	}
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, circuit_breaker.Closed, cb.State())
}

func Test_circuitBreaker_Reset(t *testing.T) {
	cb := circuit_breaker.New(1, time.Hour, 1, 1)
	require.Error(t, cb.Call(func() error { return errors.New("x") }))
	require.Equal(t, circuit_breaker.Open, cb.State())

	cb.Reset()
	require.Equal(t, circuit_breaker.Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}
