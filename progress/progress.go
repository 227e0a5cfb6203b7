// SPDX-License-Identifier: MIT

package progress

import (
	"go.uber.org/zap"
)

// Reporter receives checkpoints from a computation.
//
// stage names a pass (e.g. "reduce", "essential", "rips.expand");
// total is the expected number of steps (-1 if unknown) and done the number
// completed so far. Implementations must not retain the kv slice.
type Reporter interface {
	Begin(stage string, total int)
	Tick(stage string, done int)
	End(stage string, done int)
	Note(msg string, kv ...any)
}

// Nop discards every checkpoint.
var Nop Reporter = nop{}

type nop struct{}

func (nop) Begin(string, int)   {}
func (nop) Tick(string, int)    {}
func (nop) End(string, int)     {}
func (nop) Note(string, ...any) {}

// OrNop returns r, or Nop if r is nil.
func OrNop(r Reporter) Reporter {
	if r == nil {
		return Nop
	}

	return r
}

// Zap forwards checkpoints to a zap logger: Begin/End at Info, Tick and Note
// at Debug.
type Zap struct {
	log *zap.Logger
}

// NewZap wraps logger; a nil logger yields a reporter backed by zap.NewNop.
func NewZap(logger *zap.Logger) *Zap {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Zap{log: logger}
}

// Begin logs the start of a stage.
func (z *Zap) Begin(stage string, total int) {
	z.log.Info("stage started", zap.String("stage", stage), zap.Int("total", total))
}

// Tick logs a periodic counter.
func (z *Zap) Tick(stage string, done int) {
	z.log.Debug("stage progress", zap.String("stage", stage), zap.Int("done", done))
}

// End logs the completion of a stage.
func (z *Zap) End(stage string, done int) {
	z.log.Info("stage finished", zap.String("stage", stage), zap.Int("done", done))
}

// Note logs msg with loosely typed key/value pairs.
func (z *Zap) Note(msg string, kv ...any) {
	z.log.Sugar().Debugw(msg, kv...)
}

// Counter emits Tick every n steps of a stage. The zero value never ticks.
type Counter struct {
	r     Reporter
	stage string
	every int
	done  int
}

// NewCounter returns a Counter for stage that ticks r every n steps (n ≤ 0 disables ticks).
func NewCounter(r Reporter, stage string, n int) *Counter {
	return &Counter{r: OrNop(r), stage: stage, every: n}
}

// Step records one completed step.
func (c *Counter) Step() {
	c.done++
	if c.every > 0 && c.done%c.every == 0 {
		c.r.Tick(c.stage, c.done)
	}
}

// Done returns the number of recorded steps.
func (c *Counter) Done() int { return c.done }
