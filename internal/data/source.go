package data

import (
	"errors"
	"fmt"
	"math"

	"github.com/valyala/fastrand"
)

var ErrUnknownGenerator = errors.New("generador desconocido")

// Source es un generador pseudoaleatorio determinista al estilo rand() de C:
// Next retorna valores en [0, Max()].
type Source interface {
	Next() uint32
	Max() uint32
}

// NewSource construye el generador por nombre: "lcg", "glibc" o "xorshift".
func NewSource(name string, seed uint32) (Source, error) {
	switch name {
	case "lcg":
		return NewLCG(seed), nil
	case "glibc":
		return NewGlibc(seed), nil
	case "xorshift":
		return NewXorShift(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}

// ---- LCG de referencia de ISO C ----

const lcgMax = 32767

// LCG es el generador de ejemplo del estándar C:
// next = next*1103515245 + 12345; rand() = (next/65536) % 32768.
type LCG struct {
	next uint32
}

func NewLCG(seed uint32) *LCG { return &LCG{next: seed} }

func (g *LCG) Next() uint32 {
	g.next = g.next*1103515245 + 12345
	return (g.next / 65536) % 32768
}

func (g *LCG) Max() uint32 { return lcgMax }

// ---- glibc rand() (TYPE_3) ----

const (
	glibcDeg     = 34
	glibcDiscard = 310
	glibcMax     = math.MaxInt32
)

// Glibc reproduce srand/rand de glibc: retroalimentación aditiva
// r[i] = r[i-31] + r[i-3] con salida r[i] >> 1.
type Glibc struct {
	r [glibcDeg]uint32
	i int
}

func NewGlibc(seed uint32) *Glibc {
	g := &Glibc{}
	if seed == 0 {
		seed = 1 // srand(0) equivale a srand(1)
	}
	word := int64(int32(seed))
	g.r[0] = uint32(word)
	for i := 1; i < 31; i++ {
		word = (16807 * word) % glibcMax
		if word < 0 {
			word += glibcMax
		}
		g.r[i] = uint32(word)
	}
	for i := 31; i < glibcDeg; i++ {
		g.r[i] = g.r[i-31]
	}
	g.i = glibcDeg
	for k := 0; k < glibcDiscard; k++ {
		g.step()
	}
	return g
}

func (g *Glibc) step() uint32 {
	// índices modulo 34: i-31 == i+3, i-3 == i+31
	slot := g.i % glibcDeg
	v := g.r[(g.i+3)%glibcDeg] + g.r[(g.i+31)%glibcDeg]
	g.r[slot] = v
	g.i++
	return v
}

func (g *Glibc) Next() uint32 { return g.step() >> 1 }

func (g *Glibc) Max() uint32 { return glibcMax }

// ---- xorshift (fastrand) ----

// XorShift envuelve fastrand.RNG con una semilla fija.
type XorShift struct {
	rng fastrand.RNG
}

func NewXorShift(seed uint32) *XorShift {
	if seed == 0 {
		// con estado 0 fastrand se resiembra con una semilla aleatoria
		seed = 1
	}
	g := &XorShift{}
	g.rng.Seed(seed)
	return g
}

func (g *XorShift) Next() uint32 { return g.rng.Uint32() }

func (g *XorShift) Max() uint32 { return math.MaxUint32 }
