package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Variant  string
	Columns  int
	Rows     int
	Clearing string
	Workers  int

	// Results
	Frames         int64
	Games          int
	Placed         int
	Clears         int
	CellsCleared   int
	Score          IntStats
	TotalTime      time.Duration
	FrameTime      Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

type IntStats struct {
	Min, Max int
	Avg      float64
	count    int
	total    int
}

func (s *IntStats) Add(v int) {
	if s.count == 0 || v < s.Min {
		s.Min = v
	}
	if s.count == 0 || v > s.Max {
		s.Max = v
	}
	s.count++
	s.total += v
	s.Avg = float64(s.total) / float64(s.count)
}

func (r *Report) add(res workerResult) {
	r.Frames += res.frames
	r.FrameTime.Samples = append(r.FrameTime.Samples, res.frameTime...)
	for _, game := range res.games {
		r.Games++
		r.Placed += game.stats.Placed
		r.Clears += game.stats.Clears
		r.CellsCleared += game.stats.Cells
		r.Score.Add(game.score)
	}
}

func (r *Report) finalize() {
	r.FrameTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Variant:** {{.Variant}} ({{.Clearing}} clearing)
- **Board:** {{.Columns}}x{{.Rows}}
- **Workers:** {{.Workers}}

## Games
- **Finished Games:** {{.Games}}
- **Pieces Placed:** {{.Placed}}
- **Clearing Events:** {{.Clears}}
- **Cells Cleared:** {{.CellsCleared}}
{{- if .Games}}
- **Score:** min {{.Score.Min}}, avg {{printf "%.1f" .Score.Avg}}, max {{.Score.Max}}
{{- end}}

## Performance Results
- **Total Frames:** {{.Frames}}
- **Total Run Time:** {{.TotalTime}}
- **Frames per Second:** {{fps .Frames .TotalTime}}
- **Frame Time (sampled):**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
  - **P99:** {{.FrameTime.P99}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

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
		"fps": func(frames int64, d time.Duration) string {
			if d <= 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.0f", float64(frames)/d.Seconds())
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
