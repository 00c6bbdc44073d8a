package integration

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/zoobzio/samplez"
)

// countingSampler returns a fixed decision and counts invocations.
// Safe for concurrent use.
type countingSampler struct {
	decision samplez.Decision
	attrs    []samplez.Attribute
	calls    atomic.Int64
}

func (s *countingSampler) ShouldSample(_ *samplez.SpanReference, _ samplez.TraceID, _ string, _ samplez.SpanKind, _ []samplez.Attribute, _ []samplez.Link) samplez.SamplingResult {
	s.calls.Add(1)
	return samplez.SamplingResult{Decision: s.decision, Attributes: s.attrs}
}

// seqGenerator produces sequential ids so tests can assert uniqueness
// without relying on randomness.
type seqGenerator struct {
	next atomic.Uint64
}

func (g *seqGenerator) NewTraceID() samplez.TraceID {
	var id samplez.TraceID
	binary.BigEndian.PutUint64(id[8:], g.next.Add(1))
	return id
}

func (g *seqGenerator) NewSpanID() samplez.SpanID {
	var id samplez.SpanID
	binary.BigEndian.PutUint64(id[:], g.next.Add(1))
	return id
}

// asRemote re-creates a reference the way an extraction layer would after
// crossing a process boundary: same identity, remote marker set.
func asRemote(ref samplez.SpanReference) samplez.SpanReference {
	return samplez.NewSpanReference(ref.TraceID(), ref.SpanID(), ref.TraceFlags(), true, ref.TraceState())
}
