package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"dbml/internal/diag"
	"dbml/internal/observ"
	"dbml/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON и msgpack
type LocationJSON struct {
	File      string `json:"file" msgpack:"file"`
	StartByte uint32 `json:"start_byte" msgpack:"start_byte"`
	EndByte   uint32 `json:"end_byte" msgpack:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty" msgpack:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty" msgpack:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty" msgpack:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty" msgpack:"end_col,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity" msgpack:"severity"`
	Code     string       `json:"code" msgpack:"code"`
	Message  string       `json:"message" msgpack:"message"`
	Location LocationJSON `json:"location" msgpack:"location"`
}

// DiagnosticsOutput представляет корневую структуру вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics" msgpack:"diagnostics"`
	Count       int              `json:"count" msgpack:"count"`
	Errors      int              `json:"errors" msgpack:"errors"`
	Warnings    int              `json:"warnings" msgpack:"warnings"`
	Timings     *observ.Report   `json:"timings,omitempty" msgpack:"timings,omitempty"`
}

func toUint32(v int) (uint32, error) {
	u, err := safecast.Conv[uint32](v)
	if err != nil {
		return 0, fmt.Errorf("offset %d overflows uint32: %w", v, err)
	}
	return u, nil
}

func makeLocation(loc source.Location, pathMode PathMode, baseDir string, includePositions bool) (LocationJSON, error) {
	start, err := toUint32(loc.Span.Start)
	if err != nil {
		return LocationJSON{}, err
	}
	end, err := toUint32(loc.Span.End())
	if err != nil {
		return LocationJSON{}, err
	}
	out := LocationJSON{
		File:      formatPath(loc.FileName(), pathMode, baseDir),
		StartByte: start,
		EndByte:   end,
	}
	if !includePositions || loc.Text == nil {
		return out, nil
	}

	sl, sc := lineCol(loc.Text, loc.Span.Start)
	el, ec := lineCol(loc.Text, loc.Span.End())
	for _, p := range []struct {
		dst *uint32
		v   int
	}{{&out.StartLine, sl}, {&out.StartCol, sc}, {&out.EndLine, el}, {&out.EndCol, ec}} {
		if *p.dst, err = toUint32(p.v); err != nil {
			return LocationJSON{}, err
		}
	}
	return out, nil
}

// BuildDiagnosticsOutput формирует структуру вывода без сериализации.
// Count: число выведенных записей, Errors/Warnings считаются по всем.
func BuildDiagnosticsOutput(items []diag.Diagnostic, opts JSONOpts) (DiagnosticsOutput, error) {
	n := limit(len(items), opts.Max)
	diagnostics := make([]DiagnosticJSON, 0, n)
	for i := range n {
		d := items[i]
		loc, err := makeLocation(d.Location, opts.PathMode, opts.BaseDir, opts.IncludePositions)
		if err != nil {
			return DiagnosticsOutput{}, err
		}
		diagnostics = append(diagnostics, DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: loc,
		})
	}
	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
		Errors:      diag.Count(items, diag.SevError),
		Warnings:    diag.Count(items, diag.SevWarning),
		Timings:     opts.Timings,
	}, nil
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, items []diag.Diagnostic, opts JSONOpts) error {
	output, err := BuildDiagnosticsOutput(items, opts)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// Msgpack пишет ту же структуру, что и JSON, в бинарном виде.
func Msgpack(w io.Writer, items []diag.Diagnostic, opts JSONOpts) error {
	output, err := BuildDiagnosticsOutput(items, opts)
	if err != nil {
		return err
	}
	return msgpack.NewEncoder(w).Encode(&output)
}
