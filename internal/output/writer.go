package output

import "strings"

// DefaultLineLength is the PGN export-format soft line limit.
const DefaultLineLength = 80

// LineWriter accumulates whitespace-separated tokens, breaking lines
// before any token that would exceed the column budget. Tokens are never
// split mid-token.
type LineWriter struct {
	sb         strings.Builder
	lineLength int
	maxLength  int
}

// NewLineWriter returns a LineWriter with the given column budget;
// non-positive values fall back to DefaultLineLength.
func NewLineWriter(maxLength int) *LineWriter {
	if maxLength <= 0 {
		maxLength = DefaultLineLength
	}
	return &LineWriter{maxLength: maxLength}
}

// WriteToken appends one token, preceded by a space or a line break.
func (w *LineWriter) WriteToken(token string) {
	if token == "" {
		return
	}
	if w.lineLength > 0 {
		if w.lineLength+1+len(token) > w.maxLength {
			w.sb.WriteByte('\n')
			w.lineLength = 0
		} else {
			w.sb.WriteByte(' ')
			w.lineLength++
		}
	}
	w.sb.WriteString(token)
	w.lineLength += len(token)
}

// LineLength returns the length of the current (unterminated) line.
func (w *LineWriter) LineLength() int {
	return w.lineLength
}

// NewLine terminates the current line if it holds anything.
func (w *LineWriter) NewLine() {
	if w.lineLength > 0 {
		w.sb.WriteByte('\n')
		w.lineLength = 0
	}
}

// String returns everything written so far.
func (w *LineWriter) String() string {
	return w.sb.String()
}
