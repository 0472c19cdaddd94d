package zeroid

import (
	"encoding/json"

	"github.com/go-appsec/zeroid/base62"
)

// Metadata block layout: a 3-character base62 length prefix holding the
// character count of the body, then two characters per serialized byte
// (high = byte/62, low = byte%62). The serialized form is JSON, which
// round-trips deterministically (map keys are sorted by encoding/json).

// metadataLengthWidth is the width of the length prefix.
const metadataLengthWidth = 3

// maxMetadataChars is the largest body the 3-character prefix can declare.
const maxMetadataChars = base62.Base*base62.Base*base62.Base - 1

// encodeMetadata serializes v into a length-prefixed base62 block.
// Panics on values JSON cannot represent or payloads exceeding the length
// prefix range; generation has no error arm.
func encodeMetadata(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic("zeroid: metadata not serializable: " + err.Error())
	}
	bodyLen := 2 * len(data)
	if bodyLen > maxMetadataChars {
		panic("zeroid: metadata too large")
	}
	buf := make([]byte, 0, metadataLengthWidth+bodyLen)
	buf = append(buf, base62.Encode(int64(bodyLen), metadataLengthWidth)...)
	for _, b := range data {
		buf = append(buf, base62.Char(int(b/62)), base62.Char(int(b%62)))
	}
	return string(buf)
}

// decodeMetadata attempts to parse a metadata block at the start of tail.
// It reports the decoded value and how many characters it consumed, so the
// caller can locate the field that follows. A structural failure at any
// stage (short tail, bad length prefix, odd body, out-of-alphabet pair
// character, unparsable JSON) reports !ok — the identifier decoder treats
// that as "no metadata present", not as corruption.
func decodeMetadata(tail string) (v any, consumed int, ok bool) {
	if len(tail) < metadataLengthWidth {
		return nil, 0, false
	}
	bodyLen64, err := base62.Decode(tail[:metadataLengthWidth])
	if err != nil {
		return nil, 0, false
	}
	bodyLen := int(bodyLen64)
	if bodyLen%2 != 0 || len(tail)-metadataLengthWidth < bodyLen {
		return nil, 0, false
	}

	body := tail[metadataLengthWidth : metadataLengthWidth+bodyLen]
	data := make([]byte, 0, bodyLen/2)
	for i := 0; i < len(body); i += 2 {
		hi, okHi := base62.Index(body[i])
		lo, okLo := base62.Index(body[i+1])
		if !okHi || !okLo || hi*62+lo > 255 {
			return nil, 0, false
		}
		data = append(data, byte(hi*62+lo))
	}

	if err := json.Unmarshal(data, &v); err != nil {
		return nil, 0, false
	}
	return v, metadataLengthWidth + bodyLen, true
}
