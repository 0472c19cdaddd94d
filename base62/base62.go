// Package base62 implements a fixed-width base62 integer codec.
//
// The alphabet is digits, then uppercase, then lowercase — ASCII order —
// so lexicographic comparison of equal-width encodings matches numeric
// comparison of the encoded values.
package base62

import "errors"

// Alphabet is the 62-character encoding alphabet in ASCII order.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Base is the radix of the encoding.
const Base = 62

// ErrInvalid indicates input containing a character outside the alphabet,
// or input that is empty.
var ErrInvalid = errors.New("base62: invalid input")

// indexes maps an ASCII byte to its alphabet position, or -1.
var indexes [256]int8

func init() {
	for i := range indexes {
		indexes[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		indexes[Alphabet[i]] = int8(i)
	}
}

// Encode renders v as exactly width base62 characters, most-significant
// digit first, left-padded with '0'. Digits beyond width are silently
// dropped: the caller is expected to guarantee v < 62^width.
func Encode(v int64, width int) string {
	if width <= 0 {
		return ""
	}
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = Alphabet[v%Base]
		v /= Base
	}
	return string(buf)
}

// Decode parses a base62 string into its integer value. Any character
// outside the alphabet makes the whole decode fail with ErrInvalid;
// a partial value is never returned.
func Decode(s string) (int64, error) {
	if s == "" {
		return 0, ErrInvalid
	}
	var v int64
	for i := 0; i < len(s); i++ {
		idx := indexes[s[i]]
		if idx < 0 {
			return 0, ErrInvalid
		}
		v = v*Base + int64(idx)
	}
	return v, nil
}

// Index returns the alphabet position of c, reporting whether c is a
// base62 character.
func Index(c byte) (int, bool) {
	idx := indexes[c]
	if idx < 0 {
		return 0, false
	}
	return int(idx), true
}

// Char returns the alphabet character for a value in [0, 61].
func Char(v int) byte {
	return Alphabet[v]
}
