package terminal

import (
	"bufio"
	"bytes"
	"strconv"
	"testing"
)

func TestCursorSequences(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *bufio.Writer)
		want  string
	}{
		{"up", func(w *bufio.Writer) { CursorUp(w, 22) }, "\x1b[22A"},
		{"down", func(w *bufio.Writer) { CursorDown(w, 3) }, "\x1b[3B"},
		{"right", func(w *bufio.Writer) { CursorRight(w, 61) }, "\x1b[61C"},
		{"up to bol", func(w *bufio.Writer) { CursorUpToBOL(w, 10) }, "\x1b[10F"},
		{"reset", func(w *bufio.Writer) { ResetStyle(w) }, "\x1b[0m"},
		{"bell", func(w *bufio.Writer) { Bell(w) }, "\a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := bufio.NewWriter(&buf)
			tt.write(w)
			w.Flush()
			if got := buf.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestWriteInt(t *testing.T) {
	for _, n := range []int{0, 7, 42, 999, 1200, 123456} {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		writeInt(w, n)
		w.Flush()

		if want := strconv.Itoa(n); buf.String() != want {
			t.Errorf("writeInt(%d) = %q, want %q", n, buf.String(), want)
		}
	}
}
