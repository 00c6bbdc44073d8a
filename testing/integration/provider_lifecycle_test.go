package integration

import (
	"testing"

	"github.com/zoobzio/samplez"
	"go.uber.org/zap"
)

// TestProviderLifecycle walks a provider through configure, resolve,
// shutdown and post-shutdown resolution. No stage may fail; the final
// stage must degrade cleanly.
func TestProviderLifecycle(t *testing.T) {
	sampler := &countingSampler{
		decision: samplez.DecisionRecordAndSample,
		attrs:    []samplez.Attribute{{Key: "sampling.rule", Value: "lifecycle"}},
	}
	provider := samplez.NewProvider(
		samplez.WithSampler(sampler),
		samplez.WithLogger(zap.NewNop()),
	)
	tracer := provider.Tracer()

	// Active stage.
	builder := &samplez.SpanBuilder{Name: "alive"}
	ref := tracer.SampledSpanReference(builder)
	if !ref.IsValid() || !ref.Sampled() {
		t.Fatalf("Expected valid sampled reference while active, got %+v", ref)
	}
	if len(builder.Attributes) != 1 {
		t.Errorf("Expected sampler attribute merged, got %d attributes", len(builder.Attributes))
	}

	// Direct id generation works while active.
	if !tracer.NewTraceID().IsValid() || !tracer.NewSpanID().IsValid() {
		t.Error("Expected valid ids while provider is active")
	}

	provider.Shutdown()

	// Degraded stage: same tracer, no provider.
	late := tracer.SampledSpanReference(&samplez.SpanBuilder{Name: "late"})
	if late.IsValid() {
		t.Errorf("Expected invalid reference after shutdown, got %+v", late)
	}
	if late.Sampled() {
		t.Error("Expected drop decision after shutdown")
	}
	if tracer.NewTraceID().IsValid() || tracer.NewSpanID().IsValid() {
		t.Error("Expected invalid id sentinels after shutdown")
	}

	// Cached decisions still apply after shutdown - they live on the
	// builder, not the provider.
	cached := tracer.SampledSpanReference(builder)
	if !cached.Sampled() {
		t.Error("Expected builder's cached decision to survive shutdown")
	}
}

// TestFreshTracersFromSharedProvider verifies every tracer minted by one
// provider resolves against the same configuration.
func TestFreshTracersFromSharedProvider(t *testing.T) {
	sampler := &countingSampler{decision: samplez.DecisionRecordOnly}
	provider := samplez.NewProvider(
		samplez.WithIDGenerator(&seqGenerator{}),
		samplez.WithSampler(sampler),
	)
	defer provider.Shutdown()

	for i := 0; i < 5; i++ {
		ref := provider.Tracer().SampledSpanReference(&samplez.SpanBuilder{Name: "per-tracer"})
		if !ref.IsValid() {
			t.Fatalf("Tracer %d: expected valid reference", i)
		}
		// Record-only never sets the sampled flag.
		if ref.Sampled() {
			t.Errorf("Tracer %d: record-only must not set the sampled flag", i)
		}
	}

	if sampler.calls.Load() != 5 {
		t.Errorf("Expected 5 sampling decisions, got %d", sampler.calls.Load())
	}
}
