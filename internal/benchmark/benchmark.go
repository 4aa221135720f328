package benchmark

import (
	"time"

	"detectbench/internal/data"
	"detectbench/internal/types"
)

// Reducer recorre el dataset completo y acumula conteo y suma de puntajes.
type Reducer func(ds *data.Dataset, workers int) types.Result

// Time mide el tiempo de pared de una estrategia. time.Now lleva lectura
// monotónica, así que time.Since no se ve afectado por ajustes del reloj.
func Time(strategy types.Strategy, ds *data.Dataset, workers int, reduce Reducer) types.TimedRun {
	start := time.Now()
	res := reduce(ds, workers)
	elapsed := time.Since(start)
	return types.TimedRun{Strategy: strategy, Result: res, Elapsed: elapsed}
}

// Compare calcula speedup = t_seq / t_x y eficiencia = speedup / workers.
// Si t_x es 0 el par queda sin definir (ceros, Defined=false).
func Compare(seq, x types.TimedRun, workers int) types.Ratio {
	if x.Elapsed <= 0 || workers < 1 {
		return types.Ratio{}
	}
	sp := seq.Seconds() / x.Seconds()
	return types.Ratio{Speedup: sp, Efficiency: sp / float64(workers), Defined: true}
}

// Summarize arma el resumen de las tres corridas.
func Summarize(seq, racy, serialized types.TimedRun, workers int) types.Summary {
	return types.Summary{
		Workers:         workers,
		Sequential:      seq,
		Racy:            racy,
		Serialized:      serialized,
		RacyRatio:       Compare(seq, racy, workers),
		SerializedRatio: Compare(seq, serialized, workers),
	}
}
