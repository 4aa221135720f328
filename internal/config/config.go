package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Valores de referencia del benchmark.
const (
	DefaultObjects   = 90_000_000
	DefaultWorkers   = 8
	DefaultSeed      = 42
	DefaultGenerator = "lcg"
	ReportFile       = "detection_results.txt"
)

// Perillas de compilación. Se fijan con
//
//	go build -ldflags "-X detectbench/internal/config.objects=1000000 -X detectbench/internal/config.workers=4"
//
// Nunca se leen del entorno para que dos ejecuciones del mismo binario sean
// reproducibles.
var (
	objects   string
	workers   string
	seed      string
	generator string
)

var ErrInvalid = errors.New("configuración inválida")

// Config define los parámetros fijos de una ejecución
type Config struct {
	Objects    int    `json:"objects"`
	Workers    int    `json:"workers"`
	Seed       uint32 `json:"seed"`
	Generator  string `json:"generator"`
	ReportPath string `json:"report_path"`
}

// DefaultConfig retorna la configuración de referencia (N = 9e7, W = 8, semilla 42)
func DefaultConfig() Config {
	return Config{
		Objects:    DefaultObjects,
		Workers:    DefaultWorkers,
		Seed:       DefaultSeed,
		Generator:  DefaultGenerator,
		ReportPath: ReportFile,
	}
}

// Load aplica las perillas de compilación sobre DefaultConfig y valida.
func Load() (Config, error) {
	return apply(DefaultConfig(), objects, workers, seed, generator)
}

func apply(cfg Config, objects, workers, seed, generator string) (Config, error) {
	if objects != "" {
		n, err := strconv.Atoi(objects)
		if err != nil {
			return Config{}, fmt.Errorf("%w: objects=%q: %v", ErrInvalid, objects, err)
		}
		cfg.Objects = n
	}
	if workers != "" {
		w, err := strconv.Atoi(workers)
		if err != nil {
			return Config{}, fmt.Errorf("%w: workers=%q: %v", ErrInvalid, workers, err)
		}
		cfg.Workers = w
	}
	if seed != "" {
		s, err := strconv.ParseUint(seed, 10, 32)
		if err != nil {
			return Config{}, fmt.Errorf("%w: seed=%q: %v", ErrInvalid, seed, err)
		}
		cfg.Seed = uint32(s)
	}
	if generator != "" {
		cfg.Generator = generator
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate verifica rangos. El nombre del generador lo valida el paquete data.
func (c Config) Validate() error {
	if c.Objects < 0 {
		return fmt.Errorf("%w: objects debe ser >= 0 (recibido %d)", ErrInvalid, c.Objects)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers debe ser >= 1 (recibido %d)", ErrInvalid, c.Workers)
	}
	if c.Generator == "" {
		return fmt.Errorf("%w: generator vacío", ErrInvalid)
	}
	if c.ReportPath == "" {
		return fmt.Errorf("%w: report_path vacío", ErrInvalid)
	}
	return nil
}
