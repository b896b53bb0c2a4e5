package session

import (
	"io"
	"os"
)

// Stdio is the trio of standard streams a session or spawned process reads
// and writes. Close semantics matter for pipes, so the closable forms are
// kept even when the caller hands in plain readers and writers.
type Stdio struct {
	In  io.ReadCloser
	Out io.WriteCloser
	Err io.WriteCloser
}

// NewStdio wraps the given streams, substituting a /dev/null style stream
// for any nil argument.
func NewStdio(stdin io.Reader, stdout, stderr io.Writer) Stdio {
	return Stdio{
		In:  toReadCloserOrDiscard(stdin),
		Out: toWriteCloserOrDiscard(stdout),
		Err: toWriteCloserOrDiscard(stderr),
	}
}

func toWriteCloserOrDiscard(w io.Writer) io.WriteCloser {
	if w == nil {
		return &devNull{}
	}
	if wc, ok := w.(io.WriteCloser); ok {
		return wc
	}
	return nopWriteCloser{w}
}

func toReadCloserOrDiscard(r io.Reader) io.ReadCloser {
	if r == nil {
		return &devNull{}
	}
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// devNull fails reads and discards writes.
type devNull struct{}

var _ io.ReadCloser = (*devNull)(nil)
var _ io.WriteCloser = (*devNull)(nil)

func (*devNull) Read([]byte) (int, error) {
	return 0, os.ErrClosed
}

func (*devNull) Write(b []byte) (int, error) {
	return len(b), nil
}

func (*devNull) Close() error {
	return nil
}
