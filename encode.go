package varint

import "math/bits"

// Serialize returns the minimal encoding of v. Negative values and values
// with any of the top 8 bits set always take MaxLen bytes.
func Serialize(v int64) []byte {
	var buf [MaxLen]byte
	start := encode(&buf, v)
	out := make([]byte, MaxLen-start)
	copy(out, buf[start:])
	return out
}

// Append appends the encoding of v to dst and returns the extended slice.
func Append(dst []byte, v int64) []byte {
	var buf [MaxLen]byte
	start := encode(&buf, v)
	return append(dst, buf[start:]...)
}

// Put writes the encoding of v into buf and returns the number of bytes
// written. It panics if buf is shorter than Len(v).
func Put(buf []byte, v int64) int {
	var tmp [MaxLen]byte
	start := encode(&tmp, v)
	n := MaxLen - start
	_ = buf[n-1]
	return copy(buf, tmp[start:])
}

// Len returns the number of bytes Serialize(v) would produce.
func Len(v int64) int {
	u := uint64(v)
	if u > maxShort {
		return MaxLen
	}
	if u == 0 {
		return 1
	}
	return (bits.Len64(u) + 6) / 7
}

// encode writes v to the tail of buf and returns the index of the first
// byte used.
func encode(buf *[MaxLen]byte, v int64) int {
	u := uint64(v)
	i := MaxLen
	full := u > maxShort
	if full {
		// the last byte carries all 8 bits
		i--
		buf[i] = byte(u)
		u >>= 8
	}
	for n := 0; n < MaxLen-1; n++ {
		i--
		buf[i] = byte(u & payloadMask)
		u >>= 7
		if i < MaxLen-1 {
			buf[i] |= continuation
		}
		// the 9 byte form always carries all 8 chunks
		if u == 0 && !full {
			break
		}
	}
	return i
}
