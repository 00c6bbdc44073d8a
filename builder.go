package samplez

// SpanKind describes the relationship a span has to its trace neighbours.
type SpanKind int

const (
	// KindUnspecified means no kind was set; resolution treats it as
	// KindInternal when consulting the sampler.
	KindUnspecified SpanKind = iota
	// KindInternal is an operation internal to the application.
	KindInternal
	// KindServer is the handling side of a remote request.
	KindServer
	// KindClient is the initiating side of a remote request.
	KindClient
	// KindProducer is the publishing side of an async message.
	KindProducer
	// KindConsumer is the receiving side of an async message.
	KindConsumer
)

// String returns the lowercase name of the kind.
func (k SpanKind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindServer:
		return "server"
	case KindClient:
		return "client"
	case KindProducer:
		return "producer"
	case KindConsumer:
		return "consumer"
	default:
		return "unspecified"
	}
}

// Attribute is a single key-value pair attached to a span or link.
type Attribute struct {
	Key   Key    `json:"key"`
	Value string `json:"value"`
}

// Link connects a span to another span reference, typically in a
// different trace.
type Link struct {
	Reference  SpanReference `json:"reference"`
	Attributes []Attribute   `json:"attributes,omitempty"`
}

// Decision is a sampler's verdict for a span.
type Decision int

const (
	// DecisionDrop discards the span; it is neither recorded nor sampled.
	DecisionDrop Decision = iota
	// DecisionRecordOnly records the span locally without setting the
	// sampled flag. At the flag level it is indistinguishable from drop.
	DecisionRecordOnly
	// DecisionRecordAndSample records the span and sets the sampled flag
	// so downstream services sample the trace as well.
	DecisionRecordAndSample
)

// String returns the lowercase name of the decision.
func (d Decision) String() string {
	switch d {
	case DecisionRecordOnly:
		return "record"
	case DecisionRecordAndSample:
		return "record-and-sample"
	default:
		return "drop"
	}
}

// SamplingResult is what a Sampler returns: the decision plus any
// attributes the sampler wants merged into the span.
type SamplingResult struct {
	Attributes []Attribute `json:"attributes,omitempty"`
	Decision   Decision    `json:"decision"`
}

// SpanBuilder is the mutable staging record for a span that has not been
// finalized yet. It accumulates name, kind, attributes and links while the
// span is open, and is consumed when the span record is built.
//
// A builder is exclusively owned by one goroutine - do not share a builder
// across goroutines during resolution. Resolution may append to Attributes
// and set Sampling as side effects.
type SpanBuilder struct {
	Name       string         `json:"name"`
	Attributes []Attribute    `json:"attributes,omitempty"`
	Links      []Link         `json:"links,omitempty"`
	Parent     *SpanReference `json:"parent,omitempty"`
	// Sampling caches the first sampling outcome so repeated resolution
	// reuses the decision instead of re-invoking the sampler. When set by
	// resolution, its attributes have already been merged into Attributes.
	Sampling *SamplingResult `json:"sampling,omitempty"`
	TraceID  TraceID         `json:"trace_id,omitempty"`
	SpanID   SpanID          `json:"span_id,omitempty"`
	Kind     SpanKind        `json:"kind,omitempty"`
}
