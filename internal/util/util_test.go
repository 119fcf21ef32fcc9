package util

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestVerboseToLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verbose int
		want    LogLevel
	}{
		{1, ErrorLevel},
		{2, WarnLevel},
		{3, InfoLevel},
		{4, DebugLevel},
		{5, TraceLevel},
		{0, ErrorLevel},
		{-3, ErrorLevel},
		{100, TraceLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VerboseToLevel(tt.verbose), "verbose %d", tt.verbose)
	}
}

func TestPointer(t *testing.T) {
	t.Parallel()

	p := Pointer(42)
	assert.Equal(t, 42, *p)
}

func TestZerologWriter_Write(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := zerologWriter{logger: zerolog.New(&buf), level: zerolog.WarnLevel}

	n, err := w.Write([]byte("http: TLS handshake error\n"))

	assert.NoError(t, err)
	assert.Equal(t, len("http: TLS handshake error\n"), n)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"message":"http: TLS handshake error"`)
}
