package prince

import (
	"bufio"
	"io"
)

// Sink consumes one candidate at a time. Emit receives the raw password
// bytes (its length is len(password)) and reports whether the scheduler
// should continue. A non-nil error aborts the run immediately and is
// surfaced to the caller of Engine.Run; a false cont with a nil error is a
// clean, sink-requested stop, not an error.
//
// The scheduler treats Emit as opaque and makes no progress while it is
// running: a Sink may block arbitrarily but must not assume it is called
// from more than one goroutine.
type Sink interface {
	Emit(password []byte) (cont bool, err error)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(password []byte) (bool, error)

// Emit implements Sink.
func (f SinkFunc) Emit(password []byte) (bool, error) {
	return f(password)
}

// BufferedSink writes candidates to w, one per line, through a bufio.Writer.
// It back-buffers internally but preserves exact emission order on Flush,
// per §4.6/§5: nothing is reordered, only delayed until the buffer fills or
// Flush is called. It has no Close method; the caller flushes and closes w.
type BufferedSink struct {
	w   *bufio.Writer
	err error
}

// NewBufferedSink wraps w in a buffered Sink.
func NewBufferedSink(w io.Writer) *BufferedSink {
	return &BufferedSink{w: bufio.NewWriter(w)}
}

// Emit writes password followed by a newline. It reports cont=true unless a
// write fails; a write error is returned at once (with cont=false) and is
// remembered, so every later Emit and Flush returns it too.
func (s *BufferedSink) Emit(password []byte) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, err := s.w.Write(password); err != nil {
		s.err = err
		return false, err
	}
	if err := s.w.WriteByte('\n'); err != nil {
		s.err = err
		return false, err
	}
	return true, nil
}

// Flush flushes any buffered bytes to the underlying writer.
func (s *BufferedSink) Flush() error {
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}
