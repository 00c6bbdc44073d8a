package samplez

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Provider bundles the shared configuration consulted during resolution:
// an id generator, a sampler and a logger. All of it is read-mostly and
// safe for concurrent access from any number of tracers.
type Provider struct {
	generator IDGenerator
	sampler   Sampler
	logger    *zap.Logger
	closed    atomic.Bool
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithIDGenerator sets the id generator. Ignored if nil.
func WithIDGenerator(generator IDGenerator) ProviderOption {
	return func(p *Provider) {
		if generator != nil {
			p.generator = generator
		}
	}
}

// WithSampler sets the sampler consulted for root spans. Ignored if nil.
func WithSampler(sampler Sampler) ProviderOption {
	return func(p *Provider) {
		if sampler != nil {
			p.sampler = sampler
		}
	}
}

// WithLogger sets the logger used for off-path diagnostics. Ignored if nil.
// Logging defaults to a no-op logger; the resolution hot path never logs.
func WithLogger(logger *zap.Logger) ProviderOption {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProvider creates a provider with the given options.
// Defaults: a crypto/rand generator, an always-sample sampler, no logging.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{
		generator: NewRandomGenerator(),
		sampler:   AlwaysSample(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tracer returns an active backend bound to this provider.
func (p *Provider) Tracer() *Tracer {
	return &Tracer{provider: p}
}

// Shutdown tears the provider down. Tracers still holding it behave as if
// no provider were configured: invalid ids, drop decisions. Safe to call
// multiple times.
func (p *Provider) Shutdown() {
	if p.closed.Swap(true) {
		return
	}
	if g, ok := p.generator.(*RandomGenerator); ok {
		g.Close()
	}
	p.logger.Debug("provider shut down; bound tracers degrade to invalid identity")
}
