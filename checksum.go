package zeroid

import "github.com/go-appsec/zeroid/base62"

// checksumMod is 62^2, the range a 2-character suffix can express.
const checksumMod = base62.Base * base62.Base

// checksum computes the 2-character integrity suffix for a core: each
// character's alphabet value weighted by its 1-based position, summed mod
// 62^2. Position weighting catches most transpositions as well as single
// character corruption. Not a security control.
//
// The second return reports whether every character was in the alphabet;
// generation always passes a valid core, verification may not.
func checksumOf(core string) (string, bool) {
	var sum int
	for i := 0; i < len(core); i++ {
		v, ok := base62.Index(core[i])
		if !ok {
			return "", false
		}
		sum = (sum + v*(i+1)) % checksumMod
	}
	return base62.Encode(int64(sum), ChecksumLength), true
}

func checksum(core string) string {
	s, ok := checksumOf(core)
	if !ok {
		panic("zeroid: checksum over non-base62 core")
	}
	return s
}

// verifyChecksum splits the trailing 2 characters as the claimed checksum
// and requires the recomputed value to match exactly. Corruption detection
// is probabilistic, not guaranteed.
func verifyChecksum(id string) bool {
	if len(id) < ChecksumLength {
		return false
	}
	want := id[len(id)-ChecksumLength:]
	got, ok := checksumOf(id[:len(id)-ChecksumLength])
	return ok && got == want
}
