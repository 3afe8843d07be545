//go:build race

package counter

// RaceEnabled reports whether the binary was built with -race.
const RaceEnabled = true
