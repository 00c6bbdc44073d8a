// Package samplez resolves the externally-visible identity of spans that
// have not been finalized yet.
//
// Instrumentation frameworks often build span records lazily, so names and
// attributes stay mutable while a span is open. Distributed tracing pulls
// the other way: the trace id, span id and sampled flag must be known the
// moment a span starts, so they can be injected into outgoing requests.
// samplez is the bridge between those two timelines - it computes a sampling
// decision and an injectable SpanReference from an in-progress SpanBuilder,
// leaving the span record itself to be finalized later.
//
// Core Components:.
//   - Resolver: the capability contract for producing a pre-sampled
//     SpanReference from a SpanBuilder.
//   - NoopResolver: the disabled backend; never allocates ids.
//   - Tracer: the active backend; consults an IDGenerator and a Sampler
//     through an optional Provider.
//   - Provider: shared configuration (generator, sampler, logger).
//
// Basic Usage:.
//
//	provider := samplez.NewProvider()
//	defer provider.Shutdown()
//
//	tracer := provider.Tracer()
//
//	builder := &samplez.SpanBuilder{Name: "checkout", Kind: samplez.KindServer}
//	ref := tracer.SampledSpanReference(builder)
//
//	// Attach the reference for downstream propagation.
//	ctx = samplez.ContextWithReference(ctx, ref)
//
// Degradation Policy:.
//
// Nothing in this package returns an error or panics on the resolution
// path. A missing provider, generator or sampler degrades to the invalid
// id sentinel or a drop decision; identity resolution must never abort
// application logic because tracing is misconfigured.
//
// Thread Safety:.
//
// Resolvers, Providers, IDGenerators and Samplers are safe for concurrent
// use by multiple goroutines. A SpanBuilder is NOT thread-safe - it must be
// exclusively owned by the calling goroutine during resolution.
package samplez

// Key represents an attribute key.
type Key = string
