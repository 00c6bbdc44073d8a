package samplez

import (
	"context"
	"testing"
)

func TestSpanReferenceAccessors(t *testing.T) {
	traceID := TraceID{1}
	spanID := SpanID{2}
	ref := NewSpanReference(traceID, spanID, FlagSampled, true, "vendor=x")

	if ref.TraceID() != traceID {
		t.Errorf("Expected trace ID %s, got %s", traceID, ref.TraceID())
	}
	if ref.SpanID() != spanID {
		t.Errorf("Expected span ID %s, got %s", spanID, ref.SpanID())
	}
	if !ref.Sampled() {
		t.Error("Expected sampled flag set")
	}
	if !ref.IsRemote() {
		t.Error("Expected remote marker set")
	}
	if ref.TraceState() != "vendor=x" {
		t.Errorf("Expected trace state preserved, got %q", ref.TraceState())
	}
}

func TestSpanReferenceValidity(t *testing.T) {
	cases := []struct {
		name  string
		ref   SpanReference
		valid bool
	}{
		{"both valid", NewSpanReference(TraceID{1}, SpanID{1}, 0, false, ""), true},
		{"zero trace id", NewSpanReference(TraceID{}, SpanID{1}, 0, false, ""), false},
		{"zero span id", NewSpanReference(TraceID{1}, SpanID{}, 0, false, ""), false},
		{"zero value", SpanReference{}, false},
	}

	for _, tc := range cases {
		if tc.ref.IsValid() != tc.valid {
			t.Errorf("%s: expected IsValid()=%v", tc.name, tc.valid)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	ref := NewSpanReference(TraceID{1}, SpanID{2}, FlagSampled, false, "")

	ctx := ContextWithReference(context.Background(), ref)
	if got := ReferenceFromContext(ctx); got != ref {
		t.Errorf("Expected reference round-trip, got %+v", got)
	}

	// Absent reference yields the zero (invalid) reference.
	if got := ReferenceFromContext(context.Background()); got.IsValid() {
		t.Errorf("Expected invalid reference from empty context, got %+v", got)
	}

	// Nil contexts are tolerated.
	if got := ReferenceFromContext(nil); got != (SpanReference{}) { //nolint:staticcheck // Nil tolerance is the point.
		t.Errorf("Expected zero reference from nil context, got %+v", got)
	}
	if ctx := ContextWithReference(nil, ref); ReferenceFromContext(ctx) != ref { //nolint:staticcheck // Nil tolerance is the point.
		t.Error("Expected reference stored despite nil parent context")
	}
}

func TestChildContextOverridesParent(t *testing.T) {
	parentRef := NewSpanReference(TraceID{1}, SpanID{1}, FlagSampled, false, "")
	childRef := NewSpanReference(TraceID{1}, SpanID{2}, FlagSampled, false, "")

	ctx := ContextWithReference(context.Background(), parentRef)
	ctx = ContextWithReference(ctx, childRef)

	if got := ReferenceFromContext(ctx); got != childRef {
		t.Errorf("Expected innermost reference, got %+v", got)
	}
}
