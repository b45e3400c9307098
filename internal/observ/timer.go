// Package observ measures how long each pass of a command takes.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase is one timed pass: load, lex, parse, render.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer собирает фазы в порядке Begin. Nil-таймер ничего не пишет.
type Timer struct {
	phases []Phase
}

func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Begin opens a phase and returns the handle to pass to End; -1 on a nil Timer.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End closes the phase. Unknown handles are ignored.
func (t *Timer) End(idx int, note string) {
	if t == nil || idx < 0 || idx >= len(t.phases) {
		return
	}
	t.phases[idx].Dur = time.Since(t.phases[idx].Start)
	t.phases[idx].Note = note
}

// PhaseReport is the serialized form of a Phase.
type PhaseReport struct {
	Name       string  `json:"name" msgpack:"name"`
	DurationMS float64 `json:"duration_ms" msgpack:"duration_ms"`
	Note       string  `json:"note,omitempty" msgpack:"note,omitempty"`
}

// Report is what --timings prints in machine formats.
type Report struct {
	TotalMS float64       `json:"total_ms" msgpack:"total_ms"`
	Phases  []PhaseReport `json:"phases" msgpack:"phases"`
}

func (t *Timer) Report() Report {
	var r Report
	if t == nil {
		return r
	}
	var total time.Duration
	for _, p := range t.phases {
		total += p.Dur
		r.Phases = append(r.Phases, PhaseReport{Name: p.Name, DurationMS: millis(p.Dur), Note: p.Note})
	}
	r.TotalMS = millis(total)
	return r
}

// Summary renders the report as an aligned table with a total row.
func (t *Timer) Summary() string {
	r := t.Report()
	width := len("total")
	for _, p := range r.Phases {
		width = max(width, len(p.Name))
	}

	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&sb, "  %-*s %8.3f ms", width, p.Name, p.DurationMS)
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-*s %8.3f ms\n", width, "total", r.TotalMS)
	return sb.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
