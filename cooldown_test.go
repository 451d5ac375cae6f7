package artifacts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestTable(now time.Time) (*cooldownTable, *time.Time, *[]time.Duration) {
	clock := now
	var slept []time.Duration
	table := newCooldownTable(func() time.Time { return clock })
	table.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		clock = clock.Add(d)
		return nil
	}
	return table, &clock, &slept
}

func TestCooldownWaitDelaysUntilExpiry(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	table, clock, slept := newTestTable(start)

	// Cooldown of 5s recorded at t=0 for Bob.
	table.record("Bob", start.Add(5*time.Second))

	// A request at t=2 waits the remaining 3s.
	*clock = start.Add(2 * time.Second)
	require.NoError(t, table.wait(context.Background(), "Bob"))
	require.Equal(t, []time.Duration{3 * time.Second}, *slept)

	// A request at t=6 sends immediately.
	*clock = start.Add(6 * time.Second)
	require.NoError(t, table.wait(context.Background(), "Bob"))
	require.Len(t, *slept, 1)
}

func TestCooldownCharactersAreIndependent(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	table, _, slept := newTestTable(start)

	table.record("Bob", start.Add(time.Hour))

	require.NoError(t, table.wait(context.Background(), "Alice"))
	require.Empty(t, *slept)
}

func TestCooldownZeroExpiryClearsRecord(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	table, _, slept := newTestTable(start)

	table.record("Bob", start.Add(time.Minute))
	table.record("Bob", time.Time{})

	require.NoError(t, table.wait(context.Background(), "Bob"))
	require.Empty(t, *slept)
}

func TestCooldownWaitHonoursContext(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	table := newCooldownTable(func() time.Time { return start })
	table.record("Bob", start.Add(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, table.wait(ctx, "Bob"), context.Canceled)
}

func TestTimestampLenientDecoding(t *testing.T) {
	cases := map[string]bool{
		`"2025-01-01T00:00:05Z"`:      false,
		`"2025-01-01T00:00:05.123Z"`:  false,
		`"2025-01-01T00:00:05"`:       false,
		`"not a timestamp"`:           true,
		`""`:                          true,
		`12345`:                       true,
	}
	for raw, wantZero := range cases {
		var ts Timestamp
		require.NoError(t, ts.UnmarshalJSON([]byte(raw)), raw)
		require.Equal(t, wantZero, ts.IsZero(), raw)
	}
}
