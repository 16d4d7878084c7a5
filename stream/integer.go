package stream

// zigzag maps v to its magnitude followed by a trailing sign bit.
func zigzag(v int64) uint64 {
	if v < 0 {
		return uint64(-v)<<1 | 1
	}

	return uint64(v) << 1
}

// unzigzag reverses zigzag.
func unzigzag(u uint64) int64 {
	v := int64(u >> 1)
	if u&1 == 1 {
		return -v
	}

	return v
}

// appendUint appends u big-endian using the fewest bytes, at least one.
func appendUint(dst []byte, u uint64) []byte {
	n := 1
	for u>>(8*n) != 0 && n < 8 {
		n++
	}

	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(u>>(8*i)))
	}

	return dst
}

// parseUint reads a big-endian unsigned integer.
func parseUint(data []byte) (u uint64) {
	for _, b := range data {
		u = u<<8 | uint64(b)
	}

	return u
}
