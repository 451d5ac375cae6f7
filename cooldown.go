package artifacts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// cooldownTable tracks the cooldown expiry of every character seen by the
// client. Records are written after each action response and read before the
// next action for the same character is sent.
type cooldownTable struct {
	mu     sync.Mutex
	expiry map[string]time.Time

	clock  func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
	logger *zap.Logger
}

func newCooldownTable(clock func() time.Time) *cooldownTable {
	return &cooldownTable{
		expiry: make(map[string]time.Time),
		clock:  clock,
		sleep:  sleepFor,
		logger: zap.NewNop(),
	}
}

// remaining reports how long the named character must still wait. Zero or
// negative means the character is free to act.
func (t *cooldownTable) remaining(name string) time.Duration {
	t.mu.Lock()
	until, ok := t.expiry[name]
	t.mu.Unlock()
	if !ok || until.IsZero() {
		return 0
	}
	return until.Sub(t.clock())
}

// wait blocks until the named character's cooldown has elapsed. Characters
// have independent records, so waiting on one never delays another.
func (t *cooldownTable) wait(ctx context.Context, name string) error {
	d := t.remaining(name)
	if d <= 0 {
		return nil
	}
	t.logger.Debug("waiting for cooldown",
		zap.String("char", name),
		zap.Duration("remaining", d),
	)
	return t.sleep(ctx, d)
}

// record stores a new expiry for the character. A zero time (the lenient
// timestamp decoder maps malformed values to zero) clears the record, which
// amounts to a zero wait.
func (t *cooldownTable) record(name string, until time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if until.IsZero() {
		delete(t.expiry, name)
		return
	}
	t.expiry[name] = until
}

func sleepFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
