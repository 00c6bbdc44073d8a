package samplez

import "context"

// referenceKeyType is a private type for context keys to avoid collisions.
type referenceKeyType string

const (
	referenceKey referenceKeyType = "samplez"
)

// SpanReference is the externally injectable identity of a span: trace id,
// span id, trace flags, the remote marker, and opaque trace state.
// It is immutable once constructed and safe to copy and share freely.
type SpanReference struct {
	state   TraceState
	traceID TraceID
	spanID  SpanID
	flags   TraceFlags
	remote  bool
}

// NewSpanReference constructs a span reference from its parts.
func NewSpanReference(traceID TraceID, spanID SpanID, flags TraceFlags, remote bool, state TraceState) SpanReference {
	return SpanReference{
		traceID: traceID,
		spanID:  spanID,
		flags:   flags,
		remote:  remote,
		state:   state,
	}
}

// TraceID returns the trace ID.
func (r SpanReference) TraceID() TraceID {
	return r.traceID
}

// SpanID returns the span ID.
func (r SpanReference) SpanID() SpanID {
	return r.spanID
}

// TraceFlags returns the trace flags.
func (r SpanReference) TraceFlags() TraceFlags {
	return r.flags
}

// Sampled reports whether the sampled flag is set.
func (r SpanReference) Sampled() bool {
	return r.flags.Sampled()
}

// IsRemote reports whether the reference was extracted from another
// process. References produced by resolution are always local.
func (r SpanReference) IsRemote() bool {
	return r.remote
}

// TraceState returns the opaque trace state.
func (r SpanReference) TraceState() TraceState {
	return r.state
}

// IsValid reports whether both identifiers are well-formed nonzero values.
// An invalid reference must not be propagated downstream.
func (r SpanReference) IsValid() bool {
	return r.traceID.IsValid() && r.spanID.IsValid()
}

// ContextWithReference returns a new context carrying the span reference.
// Adapters attach the resolved reference here so child operations and the
// injection layer can find it.
func ContextWithReference(ctx context.Context, ref SpanReference) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, referenceKey, ref)
}

// ReferenceFromContext extracts the current span reference from a context.
// Returns the zero (invalid) reference if none is present.
func ReferenceFromContext(ctx context.Context) SpanReference {
	if ctx == nil {
		return SpanReference{}
	}
	if ref, ok := ctx.Value(referenceKey).(SpanReference); ok {
		return ref
	}
	return SpanReference{}
}
