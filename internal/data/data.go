package data

import "fmt"

// Dataset guarda, por objeto, si fue detectado (0/1) y su puntaje de
// confianza. Se construye una vez y después es sólo lectura: las estrategias
// lo comparten sin sincronización.
type Dataset struct {
	detected []uint8
	scores   []float32
}

// Build llena los arreglos en orden creciente de índice tomando dos valores
// por objeto: primero la detección (bit bajo) y luego el puntaje normalizado
// a [0, 1]. Misma semilla y mismo generador producen arreglos idénticos.
func Build(n int, src Source) *Dataset {
	if n < 0 {
		panic(fmt.Sprintf("tamaño de dataset inválido: %d", n))
	}
	ds := &Dataset{
		detected: make([]uint8, n),
		scores:   make([]float32, n),
	}
	scale := float32(src.Max())
	for i := 0; i < n; i++ {
		ds.detected[i] = uint8(src.Next() & 1)
		ds.scores[i] = float32(src.Next()) / scale
	}
	return ds
}

// Footprint son los bytes que ocupa un dataset de n objetos.
func Footprint(n int) uint64 {
	return uint64(n) * (1 + 4)
}

func (d *Dataset) Len() int { return len(d.detected) }

// Detect simula el detector: true si el objeto i fue detectado.
func (d *Dataset) Detect(i int) bool { return d.detected[i] == 1 }

// Confidence simula el cálculo del puntaje de confianza del objeto i.
func (d *Dataset) Confidence(i int) float64 { return float64(d.scores[i]) }
