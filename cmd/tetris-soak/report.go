package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Preset   string
	Seed     uint64
	Frame    time.Duration

	// Results
	Games          int
	BestScore      int
	TotalScore     int
	TotalLines     int
	MaxLevel       int
	Locked         int
	Clears         [tetris.MaxClear + 1]int
	Spawned        [tetris.ShapeCount]int
	Unfinished     tetris.Snapshot
	TotalTime      time.Duration
	Steps          session.StepStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Record folds a finished game into the report.
func (r *Report) Record(snap tetris.Snapshot, stats *tetris.Stats) {
	r.Games++
	r.TotalScore += snap.Score
	r.TotalLines += snap.Lines
	r.BestScore = max(r.BestScore, snap.Score)
	r.MaxLevel = max(r.MaxLevel, snap.Level)
	r.Locked += stats.Locked()

	for rows := 1; rows <= tetris.MaxClear; rows++ {
		r.Clears[rows] += stats.Clears(rows)
	}
	for _, shape := range tetris.AllShapes() {
		r.Spawned[shape] += stats.Spawned(shape)
	}
}

func (r *Report) AvgScore() int {
	if r.Games == 0 {
		return 0
	}
	return r.TotalScore / r.Games
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Soak Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Preset:** {{.Preset}}
- **Seed:** {{.Seed}}
- **Simulated Frame:** {{.Frame}}

## Games
- **Finished Games:** {{.Games}}
- **Best Score:** {{.BestScore}}
- **Avg Score:** {{.AvgScore}}
- **Total Lines:** {{.TotalLines}}
- **Max Level:** {{.MaxLevel}}
- **Pieces Locked:** {{.Locked}}
- **Unfinished Game:** score {{.Unfinished.Score}}, lines {{.Unfinished.Lines}}, level {{.Unfinished.Level}}

## Line Clears
{{range $rows, $n := .Clears}}{{if $rows}}- {{$rows}} row(s): {{$n}}
{{end}}{{end}}
## Spawned Shapes
{{range $shape, $n := .Spawned}}- {{shape $shape}}: {{$n}}
{{end}}
## Performance Results
- **Total Steps:** {{.Steps.Steps}}
- **Total Test Time:** {{.TotalTime}}
- **Step Time:**
  - **Avg:** {{.Steps.AvgDuration}}
  - **Min:** {{.Steps.MinDuration}}
  - **Max:** {{.Steps.MaxDuration}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"shape": func(i int) string {
			return tetris.Shape(i).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
