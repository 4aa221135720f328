package engine

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"detectbench/internal/benchmark"
	"detectbench/internal/config"
	"detectbench/internal/data"
	"detectbench/internal/monitoring"
	"detectbench/internal/report"
	"detectbench/internal/types"
	"detectbench/pkg/styles"
)

// Run construye el dataset, corre las tres estrategias una tras otra (con
// carrera, serializada, secuencial) y entrega el resumen al sink. Sólo falla
// si la configuración no permite construir el dataset; un problema con el
// archivo de reporte no es fatal.
func Run(cfg config.Config, out io.Writer, sink *report.Sink) (types.Summary, error) {
	if err := cfg.Validate(); err != nil {
		return types.Summary{}, err
	}
	src, err := data.NewSource(cfg.Generator, cfg.Seed)
	if err != nil {
		return types.Summary{}, fmt.Errorf("construyendo dataset: %w", err)
	}

	host := monitoring.Snapshot()
	styles.FprintFS(out, "title", "=== Detección de objetos: secuencial vs paralelo (ejecución %s) ===", uuid.NewString())
	for _, line := range host.Lines() {
		styles.FprintFS(out, "info", "%s", line)
	}
	fmt.Fprintf(out, "Objetos: %d, workers: %d, semilla: %d, generador: %s\n",
		cfg.Objects, cfg.Workers, cfg.Seed, cfg.Generator)

	need := data.Footprint(cfg.Objects)
	if !host.Fits(need) {
		styles.FprintFS(out, "warn", "El dataset necesita %s y sólo hay %s disponibles",
			monitoring.HumanBytes(need), monitoring.HumanBytes(host.AvailableRAM))
	}

	ds := data.Build(cfg.Objects, src)

	fmt.Fprintln(out)
	styles.FprintFS(out, "info", "Ejecutando detección paralela sin manejo de condición de carrera:")
	racy := benchmark.Time(types.Racy, ds, cfg.Workers, ReduceRacy)

	fmt.Fprintln(out)
	styles.FprintFS(out, "info", "Ejecutando detección paralela con sección crítica:")
	serialized := benchmark.Time(types.Serialized, ds, cfg.Workers, ReduceSerialized)

	fmt.Fprintln(out)
	styles.FprintFS(out, "info", "Ejecutando detección secuencial:")
	seq := benchmark.Time(types.Sequential, ds, cfg.Workers, ReduceSequential)

	summary := benchmark.Summarize(seq, racy, serialized, cfg.Workers)
	if sink != nil {
		// el error del archivo ya quedó informado por el sink
		_ = sink.Emit(summary)
	}
	return summary, nil
}
