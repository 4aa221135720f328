package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"detectbench/internal/types"
	"detectbench/pkg/styles"
)

// Tolerancia relativa al comparar la suma serializada con la secuencial.
const MatchTolerance = 1e-9

// DetectionBlock arma el bloque de resultados que va a stdout y al archivo.
func DetectionBlock(s types.Summary) string {
	var b strings.Builder
	b.WriteString("Resultados de detección:\n")
	for _, run := range []types.TimedRun{s.Racy, s.Serialized, s.Sequential} {
		fmt.Fprintf(&b, "Total de objetos detectados (%s): %d\n", run.Strategy, run.Result.Count)
		fmt.Fprintf(&b, "Puntaje de confianza total (%s): %.2f\n", run.Strategy, run.Result.ScoreSum)
	}
	return b.String()
}

// RuntimeBlock arma tiempos, speedup y eficiencia. Sólo va a stdout.
func RuntimeBlock(s types.Summary) string {
	var b strings.Builder
	for _, run := range []types.TimedRun{s.Racy, s.Serialized, s.Sequential} {
		fmt.Fprintf(&b, "Tiempo %s: %.2f segundos\n", run.Strategy, run.Seconds())
	}
	writeRatio(&b, s.Serialized.Strategy, s.SerializedRatio)
	writeRatio(&b, s.Racy.Strategy, s.RacyRatio)

	lost := s.LostUpdates()
	pct := 0.0
	if c := s.Sequential.Result.Count; c > 0 {
		pct = 100 * float64(lost) / float64(c)
	}
	fmt.Fprintf(&b, "Actualizaciones perdidas (%s): %d (%.2f%%)\n", s.Racy.Strategy, lost, pct)

	verdict := "sí"
	if !s.SerializedMatches(MatchTolerance) {
		verdict = "no"
	}
	fmt.Fprintf(&b, "Serializado coincide con secuencial: %s\n", verdict)
	return b.String()
}

func writeRatio(b *strings.Builder, strategy types.Strategy, r types.Ratio) {
	if !r.Defined {
		fmt.Fprintf(b, "Speedup %s: n/d\n", strategy)
		fmt.Fprintf(b, "Eficiencia %s: n/d\n", strategy)
		return
	}
	fmt.Fprintf(b, "Speedup %s: %.2f\n", strategy, r.Speedup)
	fmt.Fprintf(b, "Eficiencia %s: %.2f\n", strategy, r.Efficiency)
}

// WriteFile escribe el bloque de detección en path, truncándolo.
func WriteFile(path string, s types.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("abriendo archivo de resultados: %w", err)
	}
	if _, err := io.WriteString(f, DetectionBlock(s)); err != nil {
		f.Close()
		return fmt.Errorf("escribiendo %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cerrando %s: %w", path, err)
	}
	return nil
}

// Sink emite el resumen a Out y al archivo Path. Un fallo con el archivo se
// informa en Err y no detiene la ejecución.
type Sink struct {
	Out  io.Writer
	Err  io.Writer
	Path string
}

func NewSink(path string) *Sink {
	return &Sink{Out: os.Stdout, Err: os.Stderr, Path: path}
}

// Emit retorna el error del archivo sólo para que el llamador pueda
// registrarlo; ya fue informado en Err.
func (k *Sink) Emit(s types.Summary) error {
	fmt.Fprintln(k.Out)
	fmt.Fprint(k.Out, DetectionBlock(s))

	fileErr := WriteFile(k.Path, s)
	if fileErr != nil {
		styles.FprintFS(k.Err, "error", "[REPORTE] %v", fileErr)
	} else {
		styles.FprintFS(k.Out, "success", "[REPORTE] Resultados guardados en %s", k.Path)
	}

	fmt.Fprintln(k.Out)
	fmt.Fprint(k.Out, RuntimeBlock(s))
	return fileErr
}
