// SPDX-License-Identifier: MIT

package job

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
)

// Result is the outcome of a job.
type Result struct {
	RunID     string       `json:"run_id"`
	Name      string       `json:"name"`
	Field     int          `json:"field"`
	Strict    bool         `json:"strict"`
	Simplices int          `json:"simplices"`
	Dimension int          `json:"dimension"`
	Diagrams  []Diagram    `json:"diagrams"`
	Betti     []BettiValue `json:"betti,omitempty"`
}

// Diagram holds the intervals of one homological dimension.
type Diagram struct {
	Dim       int   `json:"dim"`
	Intervals []Bar `json:"intervals"`
}

// Bar is a persistence interval as rendered in job output.
type Bar struct {
	Birth float64
	Death float64
}

// MarshalJSON writes {"birth": b, "death": d}, with d = "inf" for essential bars.
func (b Bar) MarshalJSON() ([]byte, error) {
	var death any = b.Death
	if math.IsInf(b.Death, 1) {
		death = "inf"
	}

	return json.Marshal(struct {
		Birth float64 `json:"birth"`
		Death any     `json:"death"`
	}{b.Birth, death})
}

// UnmarshalJSON accepts the form written by MarshalJSON.
func (b *Bar) UnmarshalJSON(data []byte) error {
	var raw struct {
		Birth float64         `json:"birth"`
		Death json.RawMessage `json:"death"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Birth = raw.Birth
	if string(raw.Death) == `"inf"` {
		b.Death = math.Inf(1)
		return nil
	}

	return json.Unmarshal(raw.Death, &b.Death)
}

// String renders "[birth, death)" with "inf" for essential bars.
func (b Bar) String() string {
	if math.IsInf(b.Death, 1) {
		return fmt.Sprintf("[%g, inf)", b.Birth)
	}

	return fmt.Sprintf("[%g, %g)", b.Birth, b.Death)
}

// BettiValue is an evaluated BettiQuery.
type BettiValue struct {
	Dim         int     `json:"dim"`
	At          float64 `json:"at"`
	Persistence float64 `json:"persistence"`
	Value       int     `json:"value"`
}

// WriteJSON writes r as indented JSON followed by a newline.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// WriteText writes a short human-readable report.
func (r *Result) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "job %s (run %s)\n", r.Name, r.RunID)
	fmt.Fprintf(&b, "GF(%d), %d simplices, dimension %d", r.Field, r.Simplices, r.Dimension)
	if r.Strict {
		b.WriteString(", strict")
	}
	b.WriteByte('\n')
	for _, d := range r.Diagrams {
		fmt.Fprintf(&b, "H%d:", d.Dim)
		for _, bar := range d.Intervals {
			fmt.Fprintf(&b, " %v", bar)
		}
		b.WriteByte('\n')
	}
	for _, v := range r.Betti {
		fmt.Fprintf(&b, "betti_%d(%g, +%g) = %d\n", v.Dim, v.At, v.Persistence, v.Value)
	}
	_, err := io.WriteString(w, b.String())

	return err
}
