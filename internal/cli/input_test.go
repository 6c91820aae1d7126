package cli

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePump_DeliversLinesInOrderThenEOF(t *testing.T) {
	p := newLinePump(strings.NewReader("first\nsecond\n"))

	line, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, "first", line)

	line, ok = p.Next()
	require.True(t, ok)
	assert.Equal(t, "second", line)

	_, ok = p.Next()
	assert.False(t, ok)
}

// A screen that stops waiting for a non-input reason (job reached a
// terminal status, push channel dropped) must leave the next typed line
// for whoever reads after it, instead of swallowing it on a dangling
// stdin read.
func TestLinePump_ScreenExitDoesNotStealNextLine(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	p := newLinePump(pr)

	// The screen's wait: nothing has been typed yet, the finished signal
	// fires first.
	finished := make(chan struct{})
	close(finished)
	select {
	case <-finished:
	case <-p.Lines():
		t.Fatal("screen consumed input it was not given")
	}

	// The user types the next command after the screen is gone.
	go func() {
		_, _ = pw.Write([]byte("uploads\n"))
	}()

	select {
	case line, ok := <-p.Lines():
		require.True(t, ok)
		assert.Equal(t, "uploads", line)
	case <-time.After(2 * time.Second):
		t.Fatal("line never reached the next reader")
	}
}

func TestGetSimpleText_TrimsWhitespace(t *testing.T) {
	p := newLinePump(strings.NewReader("  bob@example.com \n"))

	got, err := GetSimpleText(p, "-Enter email")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	p := newLinePump(strings.NewReader(""))

	_, err := GetSimpleText(p, "-Enter email")
	assert.ErrorIs(t, err, io.EOF)
}
