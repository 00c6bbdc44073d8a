package samplez

// Sampler decides whether a root span's trace should be sampled.
// Implementations must be safe for concurrent use; they are shared,
// read-mostly configuration consulted from every instrumented goroutine.
//
// The parent reference is nil for root spans. Resolution only consults the
// sampler when no valid parent exists - a child inside a trace inherits the
// ancestor's flags and never re-samples.
type Sampler interface {
	ShouldSample(parent *SpanReference, traceID TraceID, name string, kind SpanKind, attrs []Attribute, links []Link) SamplingResult
}

type constantSampler struct {
	decision Decision
}

func (s constantSampler) ShouldSample(_ *SpanReference, _ TraceID, _ string, _ SpanKind, _ []Attribute, _ []Link) SamplingResult {
	return SamplingResult{Decision: s.decision}
}

// AlwaysSample returns a sampler that records and samples every root span.
// This is the provider default.
func AlwaysSample() Sampler {
	return constantSampler{decision: DecisionRecordAndSample}
}

// NeverSample returns a sampler that drops every root span.
func NeverSample() Sampler {
	return constantSampler{decision: DecisionDrop}
}
