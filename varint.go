// Package varint reads and writes SQLite variable-length integers.
//
// A varint is 1 to 9 bytes long. Each of the first 8 bytes carries 7 bits of
// payload with the high bit set when more bytes follow. A 9th byte, if
// reached, carries a full 8 bits. Payload is stored most significant chunk
// first.
package varint

const (
	// MaxLen is the maximum length of a varint in bytes.
	MaxLen = 9

	// maxShort is the largest bit pattern that fits in fewer than MaxLen bytes.
	maxShort = 0x00ff_ffff_ffff_ffff

	continuation = 0x80
	payloadMask  = 0x7f
)

// Read decodes the varint at the start of b and returns its value and the
// number of bytes it occupies. Bytes past the varint are ignored.
func Read(b []byte) (int64, int, error) {
	var result uint64
	for i := 0; i < MaxLen-1; i++ {
		if i >= len(b) {
			return 0, 0, insufficient(len(b))
		}
		// Use lower 7 bits
		result = result<<7 | uint64(b[i]&payloadMask)
		if b[i]&continuation == 0 {
			return int64(result), i + 1, nil
		}
	}
	if len(b) < MaxLen {
		return 0, 0, insufficient(len(b))
	}
	// 9th byte: use all 8 bits
	result = result<<8 | uint64(b[MaxLen-1])
	return int64(result), MaxLen, nil
}

// ByteLength returns how many bytes the varint at the start of b occupies
// without decoding it.
func ByteLength(b []byte) (int, error) {
	for i := 0; i < MaxLen-1; i++ {
		if i >= len(b) {
			return 0, insufficient(len(b))
		}
		if b[i]&continuation == 0 {
			return i + 1, nil
		}
	}
	if len(b) < MaxLen {
		return 0, insufficient(len(b))
	}
	return MaxLen, nil
}
