package benchmark

import (
	"math"
	"testing"
	"time"

	"detectbench/internal/data"
	"detectbench/internal/types"
)

func TestTimeReturnsResultAndElapsed(t *testing.T) {
	ds := data.Build(100, data.NewLCG(42))
	want := types.Result{Count: 3, ScoreSum: 1.5}
	var gotWorkers int
	run := Time(types.Serialized, ds, 4, func(d *data.Dataset, w int) types.Result {
		gotWorkers = w
		time.Sleep(2 * time.Millisecond)
		return want
	})
	if run.Result != want {
		t.Fatalf("Result = %+v", run.Result)
	}
	if gotWorkers != 4 {
		t.Fatalf("workers = %d", gotWorkers)
	}
	if run.Strategy != types.Serialized {
		t.Fatalf("Strategy = %q", run.Strategy)
	}
	if run.Elapsed < 2*time.Millisecond {
		t.Fatalf("Elapsed = %v, esperado >= 2ms", run.Elapsed)
	}
	if s := run.Seconds(); s < 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		t.Fatalf("Seconds = %v", s)
	}
}

func TestCompareEfficiencyIsSpeedupOverWorkers(t *testing.T) {
	seq := types.TimedRun{Elapsed: 3 * time.Second}
	tests := []struct {
		name    string
		elapsed time.Duration
	}{
		{"más rápido", 700 * time.Millisecond},
		{"más lento", 11 * time.Second},
		{"irregular", 1234567 * time.Nanosecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Compare(seq, types.TimedRun{Elapsed: tt.elapsed}, 8)
			if !r.Defined {
				t.Fatal("ratio sin definir")
			}
			wantSp := seq.Seconds() / tt.elapsed.Seconds()
			if r.Speedup != wantSp {
				t.Fatalf("Speedup = %v, esperado %v", r.Speedup, wantSp)
			}
			if r.Efficiency != r.Speedup/8 {
				t.Fatalf("Efficiency = %v, esperado %v", r.Efficiency, r.Speedup/8)
			}
		})
	}
}

func TestCompareZeroElapsedIsUndefined(t *testing.T) {
	r := Compare(types.TimedRun{Elapsed: time.Second}, types.TimedRun{}, 8)
	if r.Defined || r.Speedup != 0 || r.Efficiency != 0 {
		t.Fatalf("esperaba ratio sin definir, obtuve %+v", r)
	}
}

func TestSummarize(t *testing.T) {
	seq := types.TimedRun{Strategy: types.Sequential, Result: types.Result{Count: 10, ScoreSum: 5}, Elapsed: 2 * time.Second}
	racy := types.TimedRun{Strategy: types.Racy, Result: types.Result{Count: 7, ScoreSum: 3}, Elapsed: time.Second}
	ser := types.TimedRun{Strategy: types.Serialized, Result: types.Result{Count: 10, ScoreSum: 5}, Elapsed: 4 * time.Second}

	s := Summarize(seq, racy, ser, 8)
	if s.Workers != 8 {
		t.Fatalf("Workers = %d", s.Workers)
	}
	if s.RacyRatio.Speedup != 2 || s.RacyRatio.Efficiency != 0.25 {
		t.Fatalf("RacyRatio = %+v", s.RacyRatio)
	}
	if s.SerializedRatio.Speedup != 0.5 || s.SerializedRatio.Efficiency != 0.0625 {
		t.Fatalf("SerializedRatio = %+v", s.SerializedRatio)
	}
	if s.LostUpdates() != 3 {
		t.Fatalf("LostUpdates = %d", s.LostUpdates())
	}
	if !s.SerializedMatches(1e-9) {
		t.Fatal("serializado debía coincidir con secuencial")
	}
}
