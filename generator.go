package zeroid

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/go-appsec/zeroid/base62"
)

// sequencePerMillis is how many distinct identifiers one generator can
// order within a single millisecond. The sequence wraps past it.
const sequencePerMillis = 1000

// Generator produces identifiers with a private monotonic clock sequence.
// Independent generators do not interfere with each other; tests can
// construct their own with a fixed clock or a deterministic entropy
// source. The zero value is not usable, call NewGenerator.
type Generator struct {
	mu         sync.Mutex
	lastMillis int64
	seq        int64

	now     func() time.Time
	entropy io.Reader
}

// GeneratorOption configures a Generator at construction time.
type GeneratorOption func(*Generator)

// WithClock replaces the wall-clock source. Intended for tests.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

// WithEntropy replaces the random byte source. Intended for tests;
// production generators should keep the crypto/rand default.
func WithEntropy(src io.Reader) GeneratorOption {
	return func(g *Generator) { g.entropy = src }
}

// NewGenerator returns a Generator backed by the system clock and
// crypto/rand.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		now:     time.Now,
		entropy: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// next advances the clock sequence and returns the millisecond timestamp
// with its tie-breaking sequence number. Repeated calls within one
// millisecond increment the sequence; a new millisecond resets it. The
// mutex makes the read-modify-write atomic for concurrent callers.
func (g *Generator) next() (millis, seq int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis = g.now().UnixMilli()
	if millis == g.lastMillis {
		g.seq = (g.seq + 1) % sequencePerMillis
	} else {
		g.lastMillis = millis
		g.seq = 0
	}
	return millis, g.seq
}

// Reset clears the clock sequence state. It exists for test isolation and
// must not race with Generate calls.
func (g *Generator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastMillis = 0
	g.seq = 0
}

// Generate produces a new identifier. See the package-level Generate for
// the option contract.
func (g *Generator) Generate(opts ...Option) string {
	millis, seq := g.next()
	return g.assemble(millis, seq, buildOptions(opts))
}

// GenerateAt produces an identifier carrying an explicit timestamp with
// the sequence forced to zero. It does not consult or advance the clock
// sequence, so two GenerateAt calls for the same instant get no monotonic
// tie-break against each other.
func (g *Generator) GenerateAt(t time.Time, opts ...Option) string {
	return g.assemble(t.UnixMilli(), 0, buildOptions(opts))
}

// GenerateBatch produces n identifiers in generation order.
func (g *Generator) GenerateBatch(n int, opts ...Option) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = g.Generate(opts...)
	}
	return out
}

// assemble builds prefix + timestamp + metadata + random (+ checksum).
func (g *Generator) assemble(millis, seq int64, o options) string {
	encoded := millis*sequencePerMillis + seq
	core := base62.Encode(encoded, TimestampLength)
	if o.hasMetadata {
		core += encodeMetadata(o.metadata)
	}
	core += randomChars(g.entropy, o.randomLength)
	if o.checksum {
		core += checksum(core)
	}
	return o.prefix + core
}

// std backs the package-level functions. Callers needing test isolation
// or a custom clock should construct their own Generator instead of
// resetting this one.
var std = NewGenerator()

// Generate returns a new identifier from the package-level generator.
//
// Identifiers generated in sequence sort after one another as plain
// strings, even within the same millisecond, up to 1000 per millisecond.
func Generate(opts ...Option) string {
	return std.Generate(opts...)
}

// GenerateAt returns an identifier with an explicit timestamp and a zero
// sequence. Decoding it recovers t's millisecond value exactly.
func GenerateAt(t time.Time, opts ...Option) string {
	return std.GenerateAt(t, opts...)
}

// GenerateBatch returns n identifiers in generation order.
func GenerateBatch(n int, opts ...Option) []string {
	return std.GenerateBatch(n, opts...)
}
