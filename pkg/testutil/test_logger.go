package testutil

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// NewTestLogger returns a zerolog.Logger that forwards log events to the
// provided testing.T, so log output interleaves with test output and is
// only shown for failing tests.
func NewTestLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(testWriter{t: t})
}

// testWriter adapts testing.T to io.Writer.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
