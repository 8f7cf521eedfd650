package richtext

// accumulator collects text runs into the current run of a paragraph.
// It is scoped to one paragraph and never shared.
type accumulator struct {
	format Format
	spans  []Span
}

func newAccumulator(f Format) *accumulator {
	return &accumulator{format: f}
}

// Add appends the spans of a text run to the current run.
func (a *accumulator) Add(r Run) {
	a.spans = append(a.spans, r.Spans...)
}

// Flush seals the current run and starts an empty one with the same format.
// An empty current run is still returned.
func (a *accumulator) Flush() Run {
	r := Run{Format: a.format, Spans: a.spans}
	a.spans = nil
	return r
}
