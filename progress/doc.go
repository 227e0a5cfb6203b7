// SPDX-License-Identifier: MIT

// Package progress defines the Reporter hook through which long-running
// lvtopo computations (Rips expansion, boundary reduction, face closure)
// announce their checkpoints.
//
// Algorithms never print. They call Begin/Tick/End around each pass and Note
// for noteworthy one-off events; the caller decides what happens with them.
//
//	r := progress.NewZap(logger)           // structured logs via zap
//	eng, _ := persistence.New(c, persistence.WithReporter(r))
//
// Nop is the default everywhere and costs a single interface call.
package progress
