package samplez

import (
	"sync"

	"go.uber.org/zap"
)

// Resolver produces a final, injectable span reference for a span that is
// still being built. It is invoked when a span starts, before the span
// record exists, so the identity can be propagated downstream immediately.
//
// Implementations may assume the builder is exclusively owned by the
// caller for the duration of the call and may append to its attributes.
type Resolver interface {
	// SampledSpanReference resolves the builder's externally-visible
	// identity, triggering a sampling decision if one is needed.
	SampledSpanReference(b *SpanBuilder) SpanReference

	// NewTraceID generates a new trace ID.
	NewTraceID() TraceID

	// NewSpanID generates a new span ID.
	NewSpanID() SpanID
}

// NoopResolver is the disabled backend, used when tracing is off or not
// yet configured. It never allocates ids and never samples, so everything
// downstream degrades to "tracing disabled" rather than failing.
type NoopResolver struct{}

var _ Resolver = NoopResolver{}

// SampledSpanReference returns the builder's parent reference verbatim if
// present, otherwise the zero (invalid) reference.
func (NoopResolver) SampledSpanReference(b *SpanBuilder) SpanReference {
	if b != nil && b.Parent != nil {
		return *b.Parent
	}
	return SpanReference{}
}

// NewTraceID returns the invalid trace ID sentinel.
func (NoopResolver) NewTraceID() TraceID {
	return TraceID{}
}

// NewSpanID returns the invalid span ID sentinel.
func (NoopResolver) NewSpanID() SpanID {
	return SpanID{}
}

// Tracer is the active backend. It resolves span identity by consulting
// its provider's id generator and sampler. Safe for concurrent use by
// multiple goroutines; each call must operate on its own SpanBuilder.
//
// A Tracer whose provider has been shut down (or a zero-value Tracer with
// no provider at all) degrades to invalid ids and drop decisions instead
// of failing - identity resolution sits on the hot path of every
// instrumented operation and must never abort it.
type Tracer struct {
	provider     *Provider
	degradedOnce sync.Once
}

var _ Resolver = (*Tracer)(nil)

// activeProvider returns the provider if it is still reachable, nil once
// it has been shut down.
func (t *Tracer) activeProvider() *Provider {
	if t.provider == nil || t.provider.closed.Load() {
		return nil
	}
	return t.provider
}

// noteDegraded emits a one-time diagnostic when resolution runs without a
// reachable provider. Silent if the tracer never had one.
func (t *Tracer) noteDegraded() {
	if t.provider == nil {
		return
	}
	t.degradedOnce.Do(func() {
		t.provider.logger.Debug("resolving span identity without a provider; issuing invalid ids")
	})
}

// SampledSpanReference resolves the builder's identity:
//
//   - The span id is the builder's pre-assigned id, or a freshly generated
//     one, or the invalid sentinel if no generator is reachable.
//   - With a valid parent, the trace id and flags are inherited unchanged;
//     a child belongs to its ancestor's trace and sampling is never
//     re-evaluated inside it.
//   - Without one, the trace id comes from the builder or the generator,
//     and the sampling decision from the builder's cached result, the
//     sampler, or DecisionDrop when no sampler is reachable. Only
//     DecisionRecordAndSample sets the sampled flag.
//
// Resolution is idempotent with respect to sampling: the first call that
// invokes the sampler caches its result on the builder and merges the
// sampler's attributes exactly once. It is NOT idempotent for span ids -
// a builder without a pre-assigned SpanID yields a fresh span id on every
// call, so callers needing a stable reference must keep the first one.
func (t *Tracer) SampledSpanReference(b *SpanBuilder) SpanReference {
	p := t.activeProvider()
	if p == nil {
		t.noteDegraded()
	}
	if b == nil {
		return SpanReference{}
	}

	spanID := b.SpanID
	if !spanID.IsValid() && p != nil {
		spanID = p.generator.NewSpanID()
	}

	var traceID TraceID
	var flags TraceFlags
	if b.Parent != nil && b.Parent.IsValid() {
		traceID = b.Parent.TraceID()
		flags = b.Parent.TraceFlags()
	} else {
		traceID = b.TraceID
		if !traceID.IsValid() && p != nil {
			traceID = p.generator.NewTraceID()
		}

		decision := DecisionDrop
		switch {
		case b.Sampling != nil:
			decision = b.Sampling.Decision
		case p != nil:
			result := t.shouldSample(p, b, traceID)
			// Record additional attributes resulting from sampling.
			b.Attributes = append(b.Attributes, result.Attributes...)
			b.Sampling = &result
			decision = result.Decision
		}

		flags = flags.WithSampled(decision == DecisionRecordAndSample)
	}

	return NewSpanReference(traceID, spanID, flags, false, "")
}

// shouldSample invokes the sampler, containing any panic. A panicking
// sampler is a misconfiguration, not a reason to abort span creation; the
// span is treated as dropped.
func (t *Tracer) shouldSample(p *Provider, b *SpanBuilder, traceID TraceID) (result SamplingResult) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("sampler panicked; treating span as dropped",
				zap.Any("panic", r),
				zap.String("span", b.Name))
			result = SamplingResult{Decision: DecisionDrop}
		}
	}()

	kind := b.Kind
	if kind == KindUnspecified {
		kind = KindInternal
	}
	return p.sampler.ShouldSample(b.Parent, traceID, b.Name, kind, b.Attributes, b.Links)
}

// NewTraceID delegates to the provider's id generator, or returns the
// invalid sentinel if the provider is gone.
func (t *Tracer) NewTraceID() TraceID {
	if p := t.activeProvider(); p != nil {
		return p.generator.NewTraceID()
	}
	return TraceID{}
}

// NewSpanID delegates to the provider's id generator, or returns the
// invalid sentinel if the provider is gone.
func (t *Tracer) NewSpanID() SpanID {
	if p := t.activeProvider(); p != nil {
		return p.generator.NewSpanID()
	}
	return SpanID{}
}
