package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimer fires immediately and records the requested waits
type fakeTimer struct {
	waits []time.Duration
	c     chan time.Time
}

func (f *fakeTimer) Start(d time.Duration) {
	f.waits = append(f.waits, d)
	c := make(chan time.Time, 1)
	c <- time.Now()
	f.c = c
}

func (f *fakeTimer) Stop() {}

func (f *fakeTimer) C() <-chan time.Time { return f.c }

func TestDoSucceedsFirstTry(t *testing.T) {
	timer := &fakeTimer{}
	p := Policy{MaxAttempts: 3, BaseDelay: 2 * time.Second, Timer: timer}

	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, timer.waits)
}

func TestDoRetriesWithDoublingDelays(t *testing.T) {
	timer := &fakeTimer{}
	p := Policy{MaxAttempts: 3, BaseDelay: 2 * time.Second, Timer: timer}

	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, timer.waits)
}

func TestDoReturnsFinalErrorAfterExhaustion(t *testing.T) {
	timer := &fakeTimer{}
	p := Policy{MaxAttempts: 3, BaseDelay: 2 * time.Second, Timer: timer}

	calls := 0
	finalErr := errors.New("attempt 3 failed")
	err := p.Do(context.Background(), func() error {
		calls++
		if calls == 3 {
			return finalErr
		}
		return errors.New("earlier failure")
	})

	require.ErrorIs(t, err, finalErr, "only the final attempt's error surfaces")
	assert.Equal(t, 3, calls)
	assert.Len(t, timer.waits, 2)
}

func TestDoStopsOnPermanentError(t *testing.T) {
	timer := &fakeTimer{}
	p := Policy{MaxAttempts: 3, BaseDelay: 2 * time.Second, Timer: timer}

	calls := 0
	fatal := errors.New("not worth retrying")
	err := p.Do(context.Background(), func() error {
		calls++
		return Permanent(fatal)
	})

	require.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
	assert.Empty(t, timer.waits)
}

func TestDoNotifiesBeforeEachWait(t *testing.T) {
	timer := &fakeTimer{}
	var notified []time.Duration
	p := Policy{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
		Timer:       timer,
		Notify: func(err error, wait time.Duration) {
			notified = append(notified, wait)
		},
	}

	err := p.Do(context.Background(), func() error {
		return errors.New("always failing")
	})

	require.Error(t, err)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, notified)
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	p := Policy{MaxAttempts: 5, BaseDelay: time.Hour}
	err := p.Do(ctx, func() error {
		calls++
		cancel()
		return errors.New("failing while cancelled")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "cancellation aborts the wait between attempts")
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, 3, p.MaxAttempts)
	assert.Equal(t, 2*time.Second, p.BaseDelay)
}
