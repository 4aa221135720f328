package engine

import (
	"sync"

	"detectbench/internal/data"
	"detectbench/internal/types"
)

// chunkRange parte [0, n) en hasta `workers` bloques contiguos de tamaño
// ceil(n/workers) y corre f sobre cada uno en su propia goroutine. Retorna
// cuando todos terminaron.
func chunkRange(n, workers int, f func(lo, hi int)) {
	if workers < 1 {
		workers = 1
	}
	if n <= 0 {
		return
	}
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(start, end)
	}
	wg.Wait()
}

// ReduceSequential es la línea base: un solo recorrido, sin goroutines.
// workers se ignora.
func ReduceSequential(ds *data.Dataset, _ int) types.Result {
	var res types.Result
	for i := 0; i < ds.Len(); i++ {
		if ds.Detect(i) {
			res.Count++
			res.ScoreSum += ds.Confidence(i)
		}
	}
	return res
}

// racyTotals son acumuladores compartidos por todas las goroutines de
// ReduceRacy y escritos SIN sincronización.
//
// ATENCIÓN: es una carrera de datos intencional. Cada `count++` y cada
// `score +=` es un leer-modificar-escribir no atómico, así que las goroutines
// pisan actualizaciones ajenas y el total queda por debajo del secuencial.
// No reemplazar por sync/atomic ni por sumas parciales: el resultado
// incorrecto es lo que se quiere medir. `go test -race` lo reporta.
type racyTotals struct {
	count int64
	score float64
}

// ReduceRacy reparte el recorrido entre workers goroutines que actualizan
// los mismos acumuladores sin exclusión mutua. Resultado no determinista.
func ReduceRacy(ds *data.Dataset, workers int) types.Result {
	totals := &racyTotals{}
	chunkRange(ds.Len(), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if ds.Detect(i) {
				totals.count++
				totals.score += ds.Confidence(i)
			}
		}
	})
	return types.Result{Count: totals.count, ScoreSum: totals.score}
}

// ReduceSerialized hace el mismo reparto pero cada actualización ocurre
// dentro de una única sección crítica que cubre conteo y puntaje juntos.
// Coincide con ReduceSequential (salvo reasociación de la suma) y es más
// lenta que ella para N grande.
func ReduceSerialized(ds *data.Dataset, workers int) types.Result {
	var (
		mu  sync.Mutex
		res types.Result
	)
	chunkRange(ds.Len(), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if ds.Detect(i) {
				mu.Lock()
				res.Count++
				res.ScoreSum += ds.Confidence(i)
				mu.Unlock()
			}
		}
	})
	return res
}
