package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var ErrOpenCB = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

type circuitBreaker struct {
	mu    sync.Mutex
	state Status
	now   func() time.Time

	// sliding window of the last recordLength outcomes, true = failed
	buffer []bool
	pos    int

	// share of failures in the window that opens the breaker
	percentile float64
	// how long the breaker stays open before letting a probe through
	timeout         time.Duration
	lastAttemptedAt time.Time

	// consecutive half-open successes required to close again
	recoveryRequests int
	successCount     int
}

type Option func(*circuitBreaker)

func WithClock(now func() time.Time) Option {
	return func(cb *circuitBreaker) { cb.now = now }
}

func New(recordLength int, timeout time.Duration, percentile float64, recoveryRequests int, opts ...Option) CircuitBreaker {
	if recordLength < 1 {
		recordLength = 1
	}
	cb := &circuitBreaker{
		state:            Closed,
		now:              time.Now,
		buffer:           make([]bool, recordLength),
		timeout:          timeout,
		percentile:       percentile,
		recoveryRequests: recoveryRequests,
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

func (cb *circuitBreaker) Call(service func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.lastAttemptedAt) <= cb.timeout {
			cb.mu.Unlock()
			return ErrOpenCB
		}
		cb.state = HalfOpen
		cb.successCount = 0
	}
	cb.mu.Unlock()

	err := service()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.buffer[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % len(cb.buffer)

	if cb.state == HalfOpen {
		if err != nil {
			cb.trip()
			return err
		}
		cb.successCount++
		if cb.successCount >= cb.recoveryRequests {
			cb.reset()
		}
		return err
	}

	fails := 0
	for _, failed := range cb.buffer {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.buffer)) >= cb.percentile {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successCount = 0
	cb.lastAttemptedAt = cb.now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.buffer {
		cb.buffer[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = Closed
}
