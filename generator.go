package samplez

import (
	"crypto/rand"
	"encoding/binary"
	"runtime"
	"sync"

	"github.com/zoobzio/clockz"
)

// IDGenerator is the pluggable source of new trace and span identifiers.
// Implementations must return valid (nonzero) ids and must be safe for
// concurrent use by multiple goroutines.
type IDGenerator interface {
	NewTraceID() TraceID
	NewSpanID() SpanID
}

// idPool manages a pool of pre-generated ids to amortize crypto/rand
// overhead.
type idPool[T any] struct {
	factory func() T
	ids     chan T
	stopCh  chan struct{}
	mu      sync.Mutex
	closed  bool
}

// newIDPool creates a new id pool with the specified capacity.
func newIDPool[T any](capacity int, factory func() T) *idPool[T] {
	pool := &idPool[T]{
		ids:     make(chan T, capacity),
		factory: factory,
		stopCh:  make(chan struct{}),
	}
	// Start background refill goroutine.
	go pool.refill()
	return pool
}

// get retrieves an id from the pool or generates one if the pool is empty.
func (p *idPool[T]) get() T {
	select {
	case id := <-p.ids:
		return id
	default:
		// Pool empty, generate directly (fallback for burst load).
		return p.factory()
	}
}

// refill maintains the pool by generating ids in the background.
func (p *idPool[T]) refill() {
	for {
		select {
		case <-p.stopCh:
			return
		default:
			select {
			case p.ids <- p.factory():
				// Successfully added id to pool.
			case <-p.stopCh:
				return
			}
		}
	}
}

// close shuts down the id pool gracefully.
func (p *idPool[T]) close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		close(p.stopCh)
		p.closed = true
	}
}

// RandomGenerator produces statistically unique ids from crypto/rand,
// buffered through id pools. Safe for concurrent use.
type RandomGenerator struct {
	traceIDs *idPool[TraceID]
	spanIDs  *idPool[SpanID]
	clock    clockz.Clock
	poolOnce sync.Once
}

// NewRandomGenerator creates a generator backed by crypto/rand.
// Uses the real clock for the fallback-id path.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{clock: clockz.RealClock}
}

// WithClock returns a new generator with the specified clock.
// Enables clock injection for deterministic testing of the fallback path.
func (*RandomGenerator) WithClock(clock clockz.Clock) *RandomGenerator {
	return &RandomGenerator{clock: clock}
}

// ensurePools initializes the id pools if not already created.
func (g *RandomGenerator) ensurePools() {
	g.poolOnce.Do(func() {
		// Pool size based on number of CPUs for optimal contention balance.
		poolSize := runtime.NumCPU() * 100

		g.traceIDs = newIDPool(poolSize, func() TraceID {
			var id TraceID
			for !id.IsValid() {
				g.fill(id[:])
			}
			return id
		})

		g.spanIDs = newIDPool(poolSize, func() SpanID {
			var id SpanID
			for !id.IsValid() {
				g.fill(id[:])
			}
			return id
		})
	})
}

// fill writes random bytes into b, falling back to clock-derived bytes if
// crypto/rand fails.
func (g *RandomGenerator) fill(b []byte) {
	if _, err := rand.Read(b); err == nil {
		return
	}
	// Fallback to time-based id if crypto/rand fails.
	nano := uint64(g.clock.Now().UnixNano())
	for i := 0; i+8 <= len(b); i += 8 {
		binary.BigEndian.PutUint64(b[i:i+8], nano)
		nano++
	}
}

// NewTraceID returns a new valid trace ID.
func (g *RandomGenerator) NewTraceID() TraceID {
	g.ensurePools()
	return g.traceIDs.get()
}

// NewSpanID returns a new valid span ID.
func (g *RandomGenerator) NewSpanID() SpanID {
	g.ensurePools()
	return g.spanIDs.get()
}

// Close shuts down the generator's id pools. The generator remains usable
// afterwards but generates ids directly without pooling.
func (g *RandomGenerator) Close() {
	if g.traceIDs != nil {
		g.traceIDs.close()
	}
	if g.spanIDs != nil {
		g.spanIDs.close()
	}
}
