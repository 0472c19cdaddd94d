package zeroid

import (
	"strings"
	"time"

	"github.com/go-appsec/zeroid/base62"
)

// Decoded is the result of successfully decoding an identifier.
type Decoded struct {
	// Timestamp is the generation time in milliseconds since the Unix
	// epoch, with the sub-millisecond sequence already divided out.
	Timestamp int64

	// Time is Timestamp as a UTC time.Time.
	Time time.Time

	// Metadata is the embedded value, or nil if the identifier carries
	// none. Decoded through encoding/json: objects are
	// map[string]any, arrays []any, numbers float64.
	Metadata any
}

// Decode parses an identifier generated with matching options. It reports
// !ok for any malformed input: wrong prefix, failed checksum, body shorter
// than 10 characters, characters outside the alphabet, or a timestamp
// outside the year 2000–3000 range. A metadata block that fails to parse
// is treated as absent, not as corruption — only the timestamp field and
// the one-character minimum random field are load-bearing.
func Decode(id string, opts ...Option) (Decoded, bool) {
	o := buildOptions(opts)

	body, ok := stripPrefix(id, o.prefix)
	if !ok {
		return Decoded{}, false
	}
	if o.checksum {
		if !verifyChecksum(body) {
			return Decoded{}, false
		}
		body = body[:len(body)-ChecksumLength]
	}
	if len(body) < minBodyLength || !isBase62(body) {
		return Decoded{}, false
	}

	millis, ok := decodeTimestampField(body[:TimestampLength])
	if !ok {
		return Decoded{}, false
	}

	dec := Decoded{
		Timestamp: millis,
		Time:      time.UnixMilli(millis).UTC(),
	}
	if v, _, ok := decodeMetadata(body[TimestampLength:]); ok {
		dec.Metadata = v
	}
	return dec, true
}

// IsValid reports whether Decode would accept id with the same options.
func IsValid(id string, opts ...Option) bool {
	_, ok := Decode(id, opts...)
	return ok
}

// ExtractTimestamp recovers the millisecond timestamp without touching
// the metadata or checksum fields. It reports !ok for a wrong prefix, a
// body shorter than 10 characters, or a timestamp field that does not
// decode into the valid range.
func ExtractTimestamp(id string, opts ...Option) (int64, bool) {
	o := buildOptions(opts)

	body, ok := stripPrefix(id, o.prefix)
	if !ok || len(body) < minBodyLength {
		return 0, false
	}
	return decodeTimestampField(body[:TimestampLength])
}

// Compare orders two identifiers by their timestamp fields, returning
// -1, 0, or 1. The prefix is stripped from both when present; if either
// remainder is shorter than the 9-character timestamp field, Compare
// returns ErrShortID rather than inventing an order for garbage.
//
// Comparison is on the raw field strings, not decoded integers — valid
// because the alphabet is in ASCII order. Content beyond the timestamp
// field never participates.
func Compare(a, b string, opts ...Option) (int, error) {
	o := buildOptions(opts)

	ba := strings.TrimPrefix(a, o.prefix)
	bb := strings.TrimPrefix(b, o.prefix)
	if len(ba) < TimestampLength || len(bb) < TimestampLength {
		return 0, ErrShortID
	}
	return strings.Compare(ba[:TimestampLength], bb[:TimestampLength]), nil
}

// stripPrefix removes a required prefix, reporting !ok when id does not
// start with it.
func stripPrefix(id, prefix string) (string, bool) {
	if prefix == "" {
		return id, true
	}
	if !strings.HasPrefix(id, prefix) {
		return "", false
	}
	return id[len(prefix):], true
}

// decodeTimestampField parses the 9-character field and range-checks the
// recovered millisecond value. The range guard rejects garbage that
// happens to be well-formed base62.
func decodeTimestampField(field string) (int64, bool) {
	encoded, err := base62.Decode(field)
	if err != nil {
		return 0, false
	}
	millis := encoded / sequencePerMillis
	if millis < MinTimestamp || millis > MaxTimestamp {
		return 0, false
	}
	return millis, true
}

func isBase62(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, ok := base62.Index(s[i]); !ok {
			return false
		}
	}
	return true
}
