package circuit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreakerStartsClosed(t *testing.T) {
	b := New("nats")
	assert.Equal(t, "nats", b.Name())
	assert.Equal(t, StateClosed, b.State())
	assert.True(t, b.Allow())
}

func TestBreakerOpensOnConsecutiveFailures(t *testing.T) {
	b := New("nats", WithFailureThreshold(2))

	useFallback, change := b.RecordFailure()
	assert.False(t, useFallback)
	assert.False(t, change.Opened)

	useFallback, change = b.RecordFailure()
	assert.True(t, useFallback)
	assert.True(t, change.Opened)
	assert.True(t, b.IsOpen())

	// already open: no second transition
	_, change = b.RecordFailure()
	assert.False(t, change.Opened)
}

func TestBreakerSuccessClearsFailureStreak(t *testing.T) {
	b := New("nats", WithFailureThreshold(2))

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	assert.False(t, b.IsOpen())
}

func TestBreakerClosesAfterSuccessThreshold(t *testing.T) {
	b := New("nats", WithFailureThreshold(1), WithSuccessThreshold(2))
	b.RecordFailure()

	usePrimary, change := b.RecordSuccess()
	assert.False(t, usePrimary)
	assert.False(t, change.Closed)

	b.RecordFailure()
	b.RecordSuccess()
	assert.True(t, b.IsOpen(), "failure while open restarts the success streak")

	usePrimary, change = b.RecordSuccess()
	assert.True(t, usePrimary)
	assert.True(t, change.Closed)
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerAllowsProbeAfterCooldown(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := New("nats",
		WithFailureThreshold(1),
		WithCooldown(time.Minute),
		WithClock(func() time.Time { return now }),
	)

	b.RecordFailure()
	assert.False(t, b.Allow())

	now = now.Add(59 * time.Second)
	assert.False(t, b.Allow())

	now = now.Add(time.Second)
	assert.True(t, b.Allow())
}

func TestBreakerReset(t *testing.T) {
	b := New("nats", WithFailureThreshold(1))
	b.RecordFailure()

	b.Reset()
	assert.False(t, b.IsOpen())
	assert.True(t, b.Allow())
}
