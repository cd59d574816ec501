package common

// WipeByteArray zeroes the buffer in place. It is safe to call on nil.
// Use it to scrub password bytes once they are no longer needed.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
