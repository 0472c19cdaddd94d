package zeroid

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/go-appsec/zeroid/base62"
)

// ErrPrefixMismatch indicates an identifier that does not start with the
// prefix given via WithPrefix.
var ErrPrefixMismatch = errors.New("zeroid: prefix mismatch")

// uuidBytes is the fixed payload size of a UUID rendering.
const uuidBytes = 16

// ToBuffer packs the prefix-stripped identifier body into a compact byte
// buffer: one length byte holding the character count, then each
// character's 6-bit alphabet index packed most-significant-bit first,
// with the final partial byte zero-padded. A 16-character body packs into
// 13 bytes. The packing is exactly reversed by FromBuffer.
func ToBuffer(id string, opts ...Option) ([]byte, error) {
	o := buildOptions(opts)

	body, ok := stripPrefix(id, o.prefix)
	if !ok {
		return nil, ErrPrefixMismatch
	}
	if len(body) > 255 {
		return nil, fmt.Errorf("zeroid: body of %d characters exceeds buffer range", len(body))
	}

	out := make([]byte, 1, 1+(len(body)*6+7)/8)
	out[0] = byte(len(body))

	var acc, bits uint
	for i := 0; i < len(body); i++ {
		v, ok := base62.Index(body[i])
		if !ok {
			return nil, fmt.Errorf("zeroid: character %q at %d: %w", body[i], i, base62.ErrInvalid)
		}
		acc = acc<<6 | uint(v)
		bits += 6
		for bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
		}
	}
	if bits > 0 {
		out = append(out, byte(acc<<(8-bits)))
	}
	return out, nil
}

// FromBuffer unpacks a ToBuffer result back into the identifier string,
// re-prepending the prefix given via WithPrefix.
func FromBuffer(buf []byte, opts ...Option) (string, error) {
	o := buildOptions(opts)

	if len(buf) == 0 {
		return "", errors.New("zeroid: empty buffer")
	}
	n := int(buf[0])
	packed := buf[1:]
	if want := (n*6 + 7) / 8; len(packed) != want {
		return "", fmt.Errorf("zeroid: buffer declares %d characters but carries %d packed bytes, want %d", n, len(packed), want)
	}

	body := make([]byte, 0, n)
	var acc, bits uint
	for _, b := range packed {
		acc = acc<<8 | uint(b)
		bits += 8
		for bits >= 6 && len(body) < n {
			bits -= 6
			v := int(acc>>bits) & 0x3f
			if v >= base62.Base {
				return "", fmt.Errorf("zeroid: packed value %d: %w", v, base62.ErrInvalid)
			}
			body = append(body, base62.Char(v))
		}
	}
	if len(body) != n {
		return "", errors.New("zeroid: truncated buffer")
	}
	return o.prefix + string(body), nil
}

// ToUUID renders the prefix-stripped identifier body as a canonical
// 8-4-4-4-12 UUID string: each character's alphabet index becomes one
// byte, zero-padded or truncated to 16 bytes. This is a cosmetic mapping
// for systems that require UUID-shaped keys; it is not reversible for
// bodies longer than 16 characters, and FromUUID is not its inverse.
func ToUUID(id string, opts ...Option) (string, error) {
	o := buildOptions(opts)

	body, ok := stripPrefix(id, o.prefix)
	if !ok {
		return "", ErrPrefixMismatch
	}

	var u uuid.UUID
	for i := 0; i < len(body) && i < uuidBytes; i++ {
		v, ok := base62.Index(body[i])
		if !ok {
			return "", fmt.Errorf("zeroid: character %q at %d: %w", body[i], i, base62.ErrInvalid)
		}
		u[i] = byte(v)
	}
	return u.String(), nil
}

// FromUUID maps a UUID-shaped string back into 16 base62 characters, each
// byte reduced mod 62. The reduction is many-to-one: byte values 62–255
// collapse onto the alphabet, so FromUUID(ToUUID(id)) recovers id only
// when id came from ToUUID in the first place. Arbitrary UUIDs convert to
// valid-looking but unrelated bodies.
func FromUUID(s string) (string, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("zeroid: parsing uuid: %w", err)
	}
	body := make([]byte, uuidBytes)
	for i, b := range u {
		body[i] = base62.Char(int(b % 62))
	}
	return string(body), nil
}
