// Package counter contrasts a lost-update race on a shared integer with the
// same workload made safe by a mutex (and, for comparison, by sync/atomic).
//
// counter++ is NOT atomic. It compiles to three steps:
//
//	LOAD  value → reg
//	ADD   reg, 1
//	STORE reg → value
//
// When two workers interleave between LOAD and STORE both write back the same
// value and one increment is lost.
package counter

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"sync/atomic"
)

const (
	DefaultWorkers    = 2
	DefaultIterations = 1_000_000
)

// Mode names the synchronization strategy of a run.
type Mode string

const (
	ModeRacy   Mode = "racy"
	ModeLocked Mode = "mutex"
	ModeAtomic Mode = "atomic"
)

// Config holds the workload of a single run.
type Config struct {
	// Workers is the number of concurrent goroutines. Defaults to 2.
	Workers int

	// Iterations is how many increments each worker performs.
	// Defaults to DefaultIterations.
	Iterations int

	// Logger receives one line per run. If nil, log.Default() is used.
	Logger *log.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Workers <= 0 {
		out.Workers = DefaultWorkers
	}
	if out.Iterations <= 0 {
		out.Iterations = DefaultIterations
	}
	if out.Logger == nil {
		out.Logger = log.Default()
	}
	return out
}

// Result is what a run observed.
type Result struct {
	Mode     Mode
	Expected int
	Got      int
}

// Lost returns the number of increments that were overwritten.
func (r Result) Lost() int { return r.Expected - r.Got }

func (r Result) String() string {
	return fmt.Sprintf("%s: expected %d, got %d", r.Mode, r.Expected, r.Got)
}

// Counter is the shared state handed to every worker. It must not be copied
// after first use; always pass *Counter.
type Counter struct {
	mu    sync.Mutex // guards value during RunLocked
	value int

	hits atomic.Int64 // used only by RunAtomic
}

// New returns a zeroed counter.
func New() *Counter { return &Counter{} }

// Reset sets the counter back to zero. Call it only while no run is active.
func (c *Counter) Reset() {
	c.value = 0
	c.hits.Store(0)
}

// Value returns the plain integer value. Call it only while no run is active.
func (c *Counter) Value() int { return c.value }

// RunRacy lets the workers increment value with no coordination at all.
// The final value is at most Workers*Iterations and usually less; the exact
// number changes from run to run.
//
// go run -race flags every access made here.
func (c *Counter) RunRacy(cfg Config) Result {
	cfg = cfg.withDefaults()
	c.run(cfg, func() {
		c.value++ // DATA RACE: read-modify-write is not atomic
	})
	return c.report(cfg, ModeRacy, c.value)
}

// RunLocked performs the same workload, but each increment holds mu for the
// whole read-modify-write. The result is always Workers*Iterations.
func (c *Counter) RunLocked(cfg Config) Result {
	cfg = cfg.withDefaults()
	c.run(cfg, func() {
		c.mu.Lock()
		c.value++ // protected: one worker at a time
		c.mu.Unlock()
	})
	return c.report(cfg, ModeLocked, c.value)
}

// RunAtomic performs the same workload with a single indivisible add.
func (c *Counter) RunAtomic(cfg Config) Result {
	cfg = cfg.withDefaults()
	c.run(cfg, func() {
		c.hits.Add(1)
	})
	return c.report(cfg, ModeAtomic, int(c.hits.Load()))
}

// run starts cfg.Workers goroutines, each on its own OS thread, releases them
// together and waits for all of them to return.
func (c *Counter) run(cfg Config, inc func()) {
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()

			<-start
			for j := 0; j < cfg.Iterations; j++ {
				inc()
			}
		}()
	}

	close(start)
	wg.Wait()
}

func (c *Counter) report(cfg Config, mode Mode, got int) Result {
	r := Result{
		Mode:     mode,
		Expected: cfg.Workers * cfg.Iterations,
		Got:      got,
	}
	cfg.Logger.Printf("[counter] %s run: workers=%d iterations=%d got=%d lost=%d",
		mode, cfg.Workers, cfg.Iterations, r.Got, r.Lost())
	return r
}
