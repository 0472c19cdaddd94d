package zeroid

import (
	"io"

	"github.com/go-appsec/zeroid/base62"
)

// rejectThreshold is the largest multiple of 62 that fits in a byte.
// Bytes at or above it are discarded so that byte%62 stays uniform.
const rejectThreshold = 248

// randomChars draws n uniformly distributed base62 characters from src,
// using rejection sampling to avoid modulo bias. Roughly 3% of raw bytes
// are rejected, so the loop over-requests slightly and reads again on a
// shortfall. Panics if the source fails; the default source is
// crypto/rand.Reader, which does not fail on supported platforms.
func randomChars(src io.Reader, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n)
	buf := make([]byte, n+n/16+2)
	for len(out) < n {
		if _, err := io.ReadFull(src, buf); err != nil {
			panic("zeroid: random source failed: " + err.Error())
		}
		for _, b := range buf {
			if b >= rejectThreshold {
				continue
			}
			out = append(out, base62.Char(int(b%62)))
			if len(out) == n {
				break
			}
		}
	}
	return string(out)
}
