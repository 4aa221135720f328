package types

import "time"

// From engine
type Strategy string

const (
	Sequential Strategy = "secuencial"
	Racy       Strategy = "sin manejo de carrera"
	Serialized Strategy = "con manejo de carrera"
)

// Result acumula lo observado por una estrategia: objetos detectados y
// suma de puntajes de confianza de esos objetos.
type Result struct {
	Count    int64
	ScoreSum float64
}

// From benchmark
type TimedRun struct {
	Strategy Strategy
	Result   Result
	Elapsed  time.Duration
}

func (r TimedRun) Seconds() float64 { return r.Elapsed.Seconds() }

// Ratio es el par (speedup, eficiencia) de una estrategia paralela contra
// la línea base secuencial. Defined es false si el tiempo paralelo fue 0.
type Ratio struct {
	Speedup    float64
	Efficiency float64
	Defined    bool
}

type Summary struct {
	Workers    int
	Sequential TimedRun
	Racy       TimedRun
	Serialized TimedRun

	RacyRatio       Ratio
	SerializedRatio Ratio
}

// LostUpdates son los objetos que la versión con carrera dejó de contar.
func (s Summary) LostUpdates() int64 {
	return s.Sequential.Result.Count - s.Racy.Result.Count
}

// SerializedMatches indica si la versión con mutex reproduce la secuencial:
// conteo exacto y suma con tolerancia relativa tol.
func (s Summary) SerializedMatches(tol float64) bool {
	seq, ser := s.Sequential.Result, s.Serialized.Result
	if seq.Count != ser.Count {
		return false
	}
	diff := seq.ScoreSum - ser.ScoreSum
	if diff < 0 {
		diff = -diff
	}
	scale := seq.ScoreSum
	if scale < 0 {
		scale = -scale
	}
	if scale < 1 {
		scale = 1
	}
	return diff <= tol*scale
}
