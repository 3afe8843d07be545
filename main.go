package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/marcodamonte/concurrency/threads-errors/agecheck"
	"github.com/marcodamonte/concurrency/threads-errors/arith"
	"github.com/marcodamonte/concurrency/threads-errors/counter"
)

var (
	header = color.New(color.FgCyan, color.Bold)
	ok     = color.New(color.FgGreen)
	warn   = color.New(color.FgYellow)
	fail   = color.New(color.FgRed)
)

// summary collects what one pass of the demonstrations produced.
type summary struct {
	Racy, Locked, Atomic counter.Result
	Quotients            [2]float64
	AgeErr               error
}

func main() {
	logger := log.New(os.Stdout, "", 0)
	run(os.Stdout, logger)
}

// run sequences the demonstrations. The counter is only reset between runs,
// never while workers are active.
func run(out io.Writer, logger *log.Logger) summary {
	var s summary
	cfg := counter.Config{Logger: logger}
	c := counter.New()

	section(out, "Counter race — no lock")
	c.Reset()
	s.Racy = c.RunRacy(cfg)
	warn.Fprintf(out, "  expected: %d  got: %d  lost updates: %d\n",
		s.Racy.Expected, s.Racy.Got, s.Racy.Lost())

	section(out, "Counter fix — sync.Mutex")
	c.Reset()
	s.Locked = c.RunLocked(cfg)
	printExact(out, s.Locked)

	section(out, "Counter fix — sync/atomic")
	c.Reset()
	s.Atomic = c.RunAtomic(cfg)
	printExact(out, s.Atomic)

	section(out, "Division by zero")
	s.Quotients[0] = arith.Divide(logger, 10, 2)
	fmt.Fprintf(out, "  10 / 2 = %v\n", s.Quotients[0])
	s.Quotients[1] = arith.Divide(logger, 10, 0)
	fmt.Fprintf(out, "  10 / 0 = %v\n", s.Quotients[1])

	section(out, "Age validation — custom error type")
	s.AgeErr = checkAges(out, 25, 10)

	return s
}

// checkAges stops at the first invalid age and reports it without
// terminating the program.
func checkAges(out io.Writer, ages ...int) error {
	for _, age := range ages {
		msg, err := agecheck.Describe(age)
		if err != nil {
			var valErr *agecheck.ValidationError
			if errors.As(err, &valErr) {
				fail.Fprintf(out, "  %v\n", valErr)
			}
			return err
		}
		fmt.Fprintf(out, "  %s\n", msg)
	}
	return nil
}

func printExact(out io.Writer, r counter.Result) {
	mark, p := "✓", ok
	if r.Lost() != 0 {
		mark, p = "✗", fail
	}
	p.Fprintf(out, "  expected: %d  got: %d  %s\n", r.Expected, r.Got, mark)
}

func section(out io.Writer, title string) {
	header.Fprintf(out, "\n━━━ %s ━━━\n", title)
}
