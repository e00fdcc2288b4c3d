// @lixen: #focus{sys[term,io,output]}
package render

import (
	"bufio"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/terminal"
)

// TerminalRenderer draws the field inline at the cursor position.
// After DrawField the cursor rests on the top-left border corner (the origin) and every
// other call returns it there, so cell writes are self-contained and order-independent.
type TerminalRenderer struct {
	w    *bufio.Writer
	cols int
	rows int

	// Pre-built border lines, reused every round
	top    string
	middle string
	bottom string
}

// NewTerminalRenderer creates a renderer for a cols x rows interior
func NewTerminalRenderer(w *bufio.Writer, cols, rows int) *TerminalRenderer {
	horizontal := strings.Repeat(constants.BorderHorizontal, cols)
	return &TerminalRenderer{
		w:      w,
		cols:   cols,
		rows:   rows,
		top:    constants.BorderTopLeft + horizontal + constants.BorderTopRight + "\n",
		middle: constants.BorderVertical + strings.Repeat(" ", cols) + constants.BorderVertical + "\n",
		bottom: constants.BorderBottomLeft + horizontal + constants.BorderBottomRight + "\n",
	}
}

// DrawField emits the border and blank interior, then moves back up to the origin
func (r *TerminalRenderer) DrawField() {
	r.w.WriteString(r.top)
	for i := 0; i < r.rows; i++ {
		r.w.WriteString(r.middle)
	}
	r.w.WriteString(r.bottom)

	// Cursor now at column 0, rows+2 lines below the origin
	terminal.CursorUp(r.w, r.rows+2)
}

// DrawCell writes glyph at 1-based offsets (row, col) from the origin.
// Field coordinates are 0-based, callers add 1.
func (r *TerminalRenderer) DrawCell(row, col int, glyph string, style Style) {
	terminal.CursorDown(r.w, row)
	terminal.CursorRight(r.w, col)
	r.w.Write(style.Sequence())
	r.w.WriteString(glyph)
	terminal.ResetStyle(r.w)
	terminal.CursorUpToBOL(r.w, row)
}

// DrawBanner blinks text across the middle of the field
func (r *TerminalRenderer) DrawBanner(text string) {
	col := r.cols/2 - runewidth.StringWidth(text)/2
	if col < 1 {
		col = 1
	}
	r.DrawCell(r.rows/2, col, text, StyleBlink)
}

// Bell queues the audible alert
func (r *TerminalRenderer) Bell() {
	terminal.Bell(r.w)
}

// Flush writes everything queued since the last flush
func (r *TerminalRenderer) Flush() error {
	return r.w.Flush()
}
