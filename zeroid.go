// Package zeroid generates and decodes compact, lexicographically
// time-sortable identifiers.
//
// An identifier is a base62 string laid out as
//
//	[prefix] timestamp(9) [metadata] random(>=1) [checksum(2)]
//
// The timestamp field encodes millisecond wall-clock time multiplied by
// 1000 plus a sub-millisecond sequence, so identifiers generated within
// the same millisecond still sort in generation order. The optional
// metadata field carries an arbitrary JSON-serializable value. The
// optional checksum detects accidental corruption; it is not a security
// control.
//
// Because the alphabet is in ASCII order, sorting identifiers as plain
// strings sorts them by creation time.
package zeroid

import (
	"errors"

	"github.com/go-appsec/zeroid/base62"
)

const (
	// TimestampLength is the fixed width of the timestamp field.
	TimestampLength = 9

	// DefaultRandomLength is the random field width when no option is given.
	DefaultRandomLength = 7

	// ChecksumLength is the fixed width of the checksum field.
	ChecksumLength = 2

	// MinTimestamp is the lowest decodable timestamp, 2000-01-01 UTC in
	// milliseconds. Decoded values below it mark the identifier invalid.
	MinTimestamp = 946684800000

	// MaxTimestamp is the highest decodable timestamp, 3000-01-01 UTC in
	// milliseconds.
	MaxTimestamp = 32503680000000

	// minBodyLength is timestamp plus at least one random character.
	minBodyLength = TimestampLength + 1
)

// Alphabet is the 62-character encoding alphabet, digits then uppercase
// then lowercase.
const Alphabet = base62.Alphabet

// ErrShortID is returned by Compare when an argument is too short to
// contain a timestamp field. Unlike the decode helpers, which report
// malformed input as a missing result, Compare fails hard: silently
// ordering garbage would corrupt sort results.
var ErrShortID = errors.New("zeroid: id shorter than timestamp field")

// options collects per-call settings for generation and decoding.
// Decode-side calls only consult prefix and checksum.
type options struct {
	prefix       string
	randomLength int
	metadata     any
	hasMetadata  bool
	checksum     bool
}

// Option configures a single Generate, Decode, or helper call.
type Option func(*options)

// WithPrefix sets a caller-owned prefix. The prefix is prepended verbatim
// on generation and required (then stripped) on decoding; it is not part
// of the codec and is excluded from the checksum.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithRandomLength sets the random field width. Values below 1 fall back
// to DefaultRandomLength.
func WithRandomLength(n int) Option {
	return func(o *options) { o.randomLength = n }
}

// WithMetadata embeds a JSON-serializable value in the identifier.
// Generate panics if the value cannot be marshaled.
func WithMetadata(v any) Option {
	return func(o *options) {
		o.metadata = v
		o.hasMetadata = true
	}
}

// WithChecksum enables the 2-character checksum suffix on generation, and
// requires it to verify on decoding.
func WithChecksum() Option {
	return func(o *options) { o.checksum = true }
}

func buildOptions(opts []Option) options {
	o := options{randomLength: DefaultRandomLength}
	for _, opt := range opts {
		opt(&o)
	}
	if o.randomLength < 1 {
		o.randomLength = DefaultRandomLength
	}
	return o
}
