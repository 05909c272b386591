// logger.go implements engine.Logger, writing UCI "info" lines the way the
// teacher's own uciLogger buffers a search iteration before flushing it to
// stdout in one write, avoiding interleaved output when multiple "info"
// lines are produced back to back.
package uci

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/corvus-chess/corvus/engine"
)

// Logger writes engine.Logger events as UCI protocol text to out.
type Logger struct {
	out   io.Writer
	start time.Time
	buf   bytes.Buffer
}

// NewLogger returns a Logger that writes to out.
func NewLogger(out io.Writer) *Logger {
	return &Logger{out: out}
}

func (l *Logger) BeginSearch() {
	l.start = time.Now()
	l.buf.Reset()
}

func (l *Logger) EndSearch() {
	l.flush()
}

// PrintPV renders one iterative-deepening iteration as a UCI "info" line.
func (l *Logger) PrintPV(stats engine.Stats, score int32, pv []engine.Move) {
	fmt.Fprintf(&l.buf, "info depth %d seldepth %d ", stats.Depth, stats.SelDepth)

	if engine.IsMateScore(score) {
		fmt.Fprintf(&l.buf, "score mate %d ", engine.MateIn(score))
	} else {
		fmt.Fprintf(&l.buf, "score cp %d ", score)
	}

	elapsed := time.Since(l.start)
	if elapsed < time.Millisecond {
		elapsed = time.Millisecond
	}
	nps := int64(float64(stats.Nodes) / elapsed.Seconds())
	fmt.Fprintf(&l.buf, "nodes %d nps %d time %d ", stats.Nodes, nps, elapsed.Milliseconds())

	fmt.Fprint(&l.buf, "pv")
	for _, m := range pv {
		fmt.Fprintf(&l.buf, " %s", m.UCI())
	}
	l.buf.WriteByte('\n')
	l.flush()
}

func (l *Logger) flush() {
	l.out.Write(l.buf.Bytes())
	l.buf.Reset()
}
