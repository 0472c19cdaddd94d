package zeroid

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		opts []Option
	}{
		{"default_length", Generate(), nil},
		{"minimum_body", Generate(WithRandomLength(1)), nil},
		{"long_random", Generate(WithRandomLength(40)), nil},
		{"with_metadata", Generate(WithMetadata(map[string]any{"k": "v"})), nil},
		{"with_checksum", Generate(WithChecksum()), nil},
		{"with_prefix", Generate(WithPrefix("user_")), []Option{WithPrefix("user_")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := ToBuffer(tt.id, tt.opts...)
			require.NoError(t, err)

			back, err := FromBuffer(buf, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.id, back)
		})
	}
}

func TestBufferIsCompact(t *testing.T) {
	t.Parallel()

	// 16 body characters pack into 12 bytes plus the length byte
	id := Generate()
	require.Len(t, id, 16)

	buf, err := ToBuffer(id)
	require.NoError(t, err)
	assert.Len(t, buf, 13)
	assert.Less(t, len(buf), len(id))
}

func TestToBufferInvalid(t *testing.T) {
	t.Parallel()

	t.Run("prefix_mismatch", func(t *testing.T) {
		_, err := ToBuffer(Generate(), WithPrefix("user_"))
		require.ErrorIs(t, err, ErrPrefixMismatch)
	})

	t.Run("non_alphabet_character", func(t *testing.T) {
		_, err := ToBuffer("7mjS6b2rg-123456")
		require.Error(t, err)
	})

	t.Run("body_too_long", func(t *testing.T) {
		_, err := ToBuffer(strings.Repeat("0", 256))
		require.Error(t, err)
	})
}

func TestFromBufferInvalid(t *testing.T) {
	t.Parallel()

	valid, err := ToBuffer(Generate())
	require.NoError(t, err)

	t.Run("empty", func(t *testing.T) {
		_, err := FromBuffer(nil)
		require.Error(t, err)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := FromBuffer(valid[:len(valid)-1])
		require.Error(t, err)
	})

	t.Run("excess_bytes", func(t *testing.T) {
		_, err := FromBuffer(append(append([]byte{}, valid...), 0))
		require.Error(t, err)
	})

	t.Run("index_out_of_alphabet_range", func(t *testing.T) {
		// a packed 6-bit group of 62 or 63 maps to no alphabet symbol
		_, err := FromBuffer([]byte{1, 0xfc})
		require.Error(t, err)
	})
}

func TestToUUID(t *testing.T) {
	t.Parallel()

	uuidShape := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

	t.Run("canonical_shape", func(t *testing.T) {
		u, err := ToUUID(Generate())
		require.NoError(t, err)
		assert.Regexp(t, uuidShape, u)
	})

	t.Run("known_value", func(t *testing.T) {
		// indices of "7mjS6b2rg0123456" rendered as hex byte pairs
		u, err := ToUUID("7mjS6b2rg0123456")
		require.NoError(t, err)
		assert.Equal(t, "07302d1c-0625-0235-2a00-010203040506", u)
	})

	t.Run("short_body_zero_padded", func(t *testing.T) {
		u, err := ToUUID(GenerateAt(time.UnixMilli(1700000000000), WithRandomLength(1)))
		require.NoError(t, err)
		assert.Regexp(t, uuidShape, u)
		assert.True(t, strings.HasSuffix(u, "000000000000"))
	})

	t.Run("long_body_truncated", func(t *testing.T) {
		id := Generate(WithRandomLength(30))
		a, err := ToUUID(id)
		require.NoError(t, err)
		b, err := ToUUID(id[:16])
		require.NoError(t, err)
		assert.Equal(t, b, a)
	})

	t.Run("prefix_stripped", func(t *testing.T) {
		id := Generate(WithPrefix("user_"))
		a, err := ToUUID(id, WithPrefix("user_"))
		require.NoError(t, err)
		b, err := ToUUID(strings.TrimPrefix(id, "user_"))
		require.NoError(t, err)
		assert.Equal(t, b, a)
	})

	t.Run("prefix_mismatch", func(t *testing.T) {
		_, err := ToUUID(Generate(), WithPrefix("user_"))
		require.ErrorIs(t, err, ErrPrefixMismatch)
	})

	t.Run("non_alphabet_character", func(t *testing.T) {
		_, err := ToUUID("7mjS6b2rg-123456")
		require.Error(t, err)
	})
}

func TestFromUUID(t *testing.T) {
	t.Parallel()

	t.Run("recovers_default_length_body", func(t *testing.T) {
		// every alphabet index is below 62, so the mod-62 reduction is
		// the identity for UUIDs produced by ToUUID
		id := Generate()
		u, err := ToUUID(id)
		require.NoError(t, err)

		back, err := FromUUID(u)
		require.NoError(t, err)
		assert.Equal(t, id, back)
	})

	t.Run("collapses_high_bytes", func(t *testing.T) {
		// 0xff = 4*62 + 7, so every byte lands on '7'
		got, err := FromUUID("ffffffff-ffff-ffff-ffff-ffffffffffff")
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("7", 16), got)
	})

	t.Run("not_inverse_for_arbitrary_uuids", func(t *testing.T) {
		// a many-to-one mapping: distinct UUIDs share one image
		a, err := FromUUID("3e000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		b, err := FromUUID("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Equal(t, a, b) // 0x3e = 62 collapses onto 0
	})

	t.Run("invalid_uuid", func(t *testing.T) {
		_, err := FromUUID("not-a-uuid")
		require.Error(t, err)
	})
}

func BenchmarkToBuffer(b *testing.B) {
	id := Generate()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ToBuffer(id)
	}
}

func BenchmarkToUUID(b *testing.B) {
	id := Generate()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ToUUID(id)
	}
}
