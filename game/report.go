package game

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/platformer/ecs"
)

// Report summarizes a headless run.
type Report struct {
	Duration time.Duration
	TPS      int
	Mode     string

	TotalTime     time.Duration
	Scheduler     *ecs.SchedulerStats
	Position      Position
	ClearColor    ClearColor
	Triggers      int
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

func (r *Report) Begin() {
	runtime.ReadMemStats(&r.MemStatsStart)
}

// End captures the world's final state.
func (r *Report) End(world *World, elapsed time.Duration) {
	runtime.ReadMemStats(&r.MemStatsEnd)
	r.TotalTime = elapsed
	r.Scheduler = world.Scheduler.GetStats()
	r.Position = world.Position()
	r.ClearColor = world.ClearColor()
	r.Triggers = world.Triggers()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Headless Run Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Target Rate:** {{.TPS}} frames/s
- **Color Mode:** {{.Mode}}

## Results
- **Frames:** {{.Scheduler.Frames}} in {{.TotalTime}}
- **Final Position:** ({{.Position.X}}, {{.Position.Y}})
- **Trigger Presses:** {{.Triggers}}
- **Clear Color:** {{.ClearColor.RGB}}{{if .ClearColor.Name}} ({{.ClearColor.Name}}){{end}}

## Systems
{{range .Scheduler.Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory
- Heap Alloc: {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}} (delta {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}})
- Num GC:     {{.MemStatsStart.NumGC}} -> {{.MemStatsEnd.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
