package samplez

import "encoding/hex"

// TraceID is the fixed-width identifier shared by all spans in one trace.
// The zero value is the invalid sentinel and must never be propagated as
// a real identifier.
type TraceID [16]byte

// SpanID is the fixed-width identifier of a single span within its trace.
// The zero value is the invalid sentinel.
type SpanID [8]byte

// TraceFlags is a bitset of per-trace options. Only the sampled bit is
// defined here.
type TraceFlags byte

// FlagSampled marks a trace whose spans should be exported.
const FlagSampled TraceFlags = 0x01

// TraceState carries opaque vendor-specific trace metadata. It is passed
// through verbatim; this package never parses it.
type TraceState string

// IsValid reports whether the trace ID is a well-formed nonzero value.
func (t TraceID) IsValid() bool {
	return t != TraceID{}
}

// String returns the lowercase hex encoding of the trace ID.
func (t TraceID) String() string {
	return hex.EncodeToString(t[:])
}

// IsValid reports whether the span ID is a well-formed nonzero value.
func (s SpanID) IsValid() bool {
	return s != SpanID{}
}

// String returns the lowercase hex encoding of the span ID.
func (s SpanID) String() string {
	return hex.EncodeToString(s[:])
}

// Sampled reports whether the sampled bit is set.
func (f TraceFlags) Sampled() bool {
	return f&FlagSampled != 0
}

// WithSampled returns a copy of the flags with the sampled bit set or
// cleared.
func (f TraceFlags) WithSampled(sampled bool) TraceFlags {
	if sampled {
		return f | FlagSampled
	}
	return f &^ FlagSampled
}
