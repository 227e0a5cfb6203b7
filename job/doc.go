// SPDX-License-Identifier: MIT

// Package job describes a persistence computation in YAML, runs it and
// renders the result as text or JSON.
//
// A job names exactly one input: an explicit complex (vertex lists with
// degrees, face closure is automatic) or a Rips point cloud (points or a
// precomputed distance matrix). Example:
//
//	name: square
//	field: 3
//	strict: true
//	dimensions: [0, 1]
//	complex:
//	  - {simplex: [0, 1], degree: 1}
//	  - {simplex: [1, 2], degree: 1}
//	betti:
//	  - {dim: 0, at: 1.5}
//
// Load and Parse reject unknown fields. Run tags every log line and the
// result with a run id (a UUID) so that logs from concurrent runs can be
// told apart.
//
// JSON encodes an essential interval's death as the string "inf".
package job
