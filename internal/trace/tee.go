package trace

// Tee writes every event to a stream and also keeps the latest ones in a ring,
// so a failing command can still show what happened last.
type Tee struct {
	Stream *StreamTracer
	Ring   *RingTracer
}

func (t *Tee) Emit(ev *Event) {
	t.Ring.Emit(ev)
	t.Stream.Emit(ev)
}

func (t *Tee) Flush() error { return t.Stream.Flush() }

func (t *Tee) Close() error { return t.Stream.Close() }

func (t *Tee) Level() Level { return t.Stream.Level() }

func (t *Tee) Enabled() bool { return t.Stream.Enabled() }
