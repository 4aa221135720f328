//go:build race

package engine

// ReduceRacy tiene una carrera intencional; el detector la reportaría.
const raceEnabled = true
