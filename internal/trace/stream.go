package trace

import (
	"io"
	"sync"
)

// StreamTracer formats every accepted event and writes it straight away.
// Write errors are dropped: tracing never fails a command.
type StreamTracer struct {
	level  Level
	format Format

	mu sync.Mutex
	w  io.Writer
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{w: w, level: level, format: format}
}

func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	ev.Seq = NextSeq()
	line := FormatEvent(ev, t.format)

	t.mu.Lock()
	_, _ = t.w.Write(line)
	t.mu.Unlock()
}

func (t *StreamTracer) Flush() error {
	f, ok := t.w.(interface{ Flush() error })
	if !ok {
		return nil
	}
	return f.Flush()
}

// Close flushes and closes the writer unless it is stdout or stderr.
func (t *StreamTracer) Close() error {
	err := t.Flush()
	c, ok := t.w.(io.Closer)
	if !ok || isStdStream(t.w) {
		return err
	}
	if cerr := c.Close(); err == nil {
		err = cerr
	}
	return err
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
