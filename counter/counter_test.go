package counter_test

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/concurrency/threads-errors/counter"
)

// quietLogger returns a logger that discards output during tests unless -v is set.
func quietLogger() *log.Logger {
	if testing.Verbose() {
		return log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
	}
	return log.New(io.Discard, "", 0)
}

// ── Mutex ────────────────────────────────────────────────────────────────────

// TestRunLockedIsExact verifies that the mutex-protected run never loses an
// increment, no matter how often it is repeated.
func TestRunLockedIsExact(t *testing.T) {
	t.Parallel()

	c := counter.New()
	cfg := counter.Config{Logger: quietLogger()}

	for i := 0; i < 5; i++ {
		c.Reset()
		r := c.RunLocked(cfg)

		require.Equal(t, counter.ModeLocked, r.Mode)
		require.Equal(t, counter.DefaultWorkers*counter.DefaultIterations, r.Expected)
		require.Equal(t, r.Expected, r.Got, "run %d lost updates", i+1)
		require.Zero(t, r.Lost())
		require.Equal(t, r.Got, c.Value())
	}
}

func TestRunLockedCustomWorkload(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		workers    int
		iterations int
	}{
		{"single worker", 1, 1000},
		{"two workers", 2, 50_000},
		{"eight workers", 8, 10_000},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := counter.New()
			r := c.RunLocked(counter.Config{
				Workers:    tc.workers,
				Iterations: tc.iterations,
				Logger:     quietLogger(),
			})
			assert.Equal(t, tc.workers*tc.iterations, r.Got)
		})
	}
}

// ── Atomic ───────────────────────────────────────────────────────────────────

func TestRunAtomicIsExact(t *testing.T) {
	t.Parallel()

	c := counter.New()
	r := c.RunAtomic(counter.Config{Logger: quietLogger()})

	assert.Equal(t, counter.ModeAtomic, r.Mode)
	assert.Equal(t, r.Expected, r.Got)
}

// ── Race ─────────────────────────────────────────────────────────────────────

// TestRunRacyUpperBound only checks the upper bound: any loss is the
// expected outcome of the unsynchronized run, not a failure.
func TestRunRacyUpperBound(t *testing.T) {
	if counter.RaceEnabled {
		t.Skip("skipping: RunRacy races on purpose; run without -race")
	}
	t.Parallel()

	c := counter.New()
	r := c.RunRacy(counter.Config{Logger: quietLogger()})

	require.Equal(t, counter.ModeRacy, r.Mode)
	require.LessOrEqual(t, r.Got, r.Expected)
	require.Positive(t, r.Got)
	t.Logf("racy run: expected %d got %d (lost %d)", r.Expected, r.Got, r.Lost())
}

// ── Reset ────────────────────────────────────────────────────────────────────

func TestReset(t *testing.T) {
	t.Parallel()

	c := counter.New()
	c.RunLocked(counter.Config{Iterations: 10, Logger: quietLogger()})
	require.Equal(t, 20, c.Value())

	c.Reset()
	assert.Zero(t, c.Value())

	r := c.RunAtomic(counter.Config{Iterations: 10, Logger: quietLogger()})
	require.Equal(t, 20, r.Got)
	c.Reset()
	r = c.RunAtomic(counter.Config{Iterations: 10, Logger: quietLogger()})
	assert.Equal(t, 20, r.Got, "atomic hits must restart from zero after Reset")
}

func TestResultString(t *testing.T) {
	r := counter.Result{Mode: counter.ModeLocked, Expected: 4, Got: 4}
	assert.Equal(t, "mutex: expected 4, got 4", r.String())
	assert.Equal(t, 1, counter.Result{Expected: 4, Got: 3}.Lost())
}
