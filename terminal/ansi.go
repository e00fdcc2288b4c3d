// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")

	// ED 0: erase from cursor to end of screen
	csiEraseBelow = []byte("\x1b[0J")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	bel = []byte("\a")
)

// Cursor movement finals
const (
	finalUp      = 'A'
	finalDown    = 'B'
	finalRight   = 'C'
	finalUpToBOL = 'F' // CPL: up N lines, column 0
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorMove writes CSI n <final>
func writeCursorMove(w *bufio.Writer, n int, final byte) {
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte(final)
}

// CursorUp moves the cursor up n rows
func CursorUp(w *bufio.Writer, n int) { writeCursorMove(w, n, finalUp) }

// CursorDown moves the cursor down n rows
func CursorDown(w *bufio.Writer, n int) { writeCursorMove(w, n, finalDown) }

// CursorRight moves the cursor right n columns
func CursorRight(w *bufio.Writer, n int) { writeCursorMove(w, n, finalRight) }

// CursorUpToBOL moves the cursor up n rows and to column 0
func CursorUpToBOL(w *bufio.Writer, n int) { writeCursorMove(w, n, finalUpToBOL) }

// ResetStyle writes SGR 0
func ResetStyle(w *bufio.Writer) { w.Write(csiSGR0) }

// Bell writes the BEL control character
func Bell(w *bufio.Writer) { w.Write(bel) }
