package common

// WipeByteArray zeroes b in place, e.g. a password read from the terminal.
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// FirstNonEmpty returns the first non-empty string of values.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
