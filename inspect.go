package zeroid

import (
	"strings"
	"time"
)

// Age returns how old id is relative to ref. It reports !ok when the
// identifier's timestamp cannot be extracted; an invalid identifier has
// no age rather than being an error.
func Age(id string, ref time.Time, opts ...Option) (time.Duration, bool) {
	millis, ok := ExtractTimestamp(id, opts...)
	if !ok {
		return 0, false
	}
	return ref.Sub(time.UnixMilli(millis)), true
}

// IsBefore reports whether id was generated before ref. The second return
// is false when the identifier is invalid.
func IsBefore(id string, ref time.Time, opts ...Option) (bool, bool) {
	millis, ok := ExtractTimestamp(id, opts...)
	if !ok {
		return false, false
	}
	return millis < ref.UnixMilli(), true
}

// IsAfter reports whether id was generated after ref. The second return
// is false when the identifier is invalid.
func IsAfter(id string, ref time.Time, opts ...Option) (bool, bool) {
	millis, ok := ExtractTimestamp(id, opts...)
	if !ok {
		return false, false
	}
	return millis > ref.UnixMilli(), true
}

// ExtractPrefix recovers the caller-supplied prefix from an identifier.
//
// With known prefixes it returns the first one id starts with. Without,
// it falls back to a heuristic: the first underscore-delimited segment,
// including the underscore, accepted only when the underscore is not the
// first character and at least a minimum-length body remains after it.
// It reports !ok when no prefix can be identified.
func ExtractPrefix(id string, known ...string) (string, bool) {
	if len(known) > 0 {
		for _, p := range known {
			if p != "" && strings.HasPrefix(id, p) {
				return p, true
			}
		}
		return "", false
	}

	idx := strings.IndexByte(id, '_')
	if idx <= 0 {
		return "", false
	}
	if len(id)-(idx+1) < minBodyLength {
		return "", false
	}
	return id[:idx+1], true
}

// Span describes the timestamp spread of a set of identifiers.
type Span struct {
	// Oldest and Newest are millisecond timestamps.
	Oldest int64
	Newest int64

	// Span is Newest minus Oldest.
	Span time.Duration

	OldestTime time.Time
	NewestTime time.Time
}

// TimestampRange scans ids and returns the oldest/newest timestamps among
// the valid ones. Individually invalid entries are skipped; it reports
// !ok when no valid entry remains.
func TimestampRange(ids []string, opts ...Option) (Span, bool) {
	var (
		oldest, newest int64
		found          bool
	)
	for _, id := range ids {
		millis, ok := ExtractTimestamp(id, opts...)
		if !ok {
			continue
		}
		if !found || millis < oldest {
			oldest = millis
		}
		if !found || millis > newest {
			newest = millis
		}
		found = true
	}
	if !found {
		return Span{}, false
	}
	return Span{
		Oldest:     oldest,
		Newest:     newest,
		Span:       time.Duration(newest-oldest) * time.Millisecond,
		OldestTime: time.UnixMilli(oldest).UTC(),
		NewestTime: time.UnixMilli(newest).UTC(),
	}, true
}
