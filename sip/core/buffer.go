package core

// EnsureLen returns buf resliced to n entries when its capacity allows,
// otherwise a new slice of length n. Contents are not cleared.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Clone returns a copy of src that does not share backing storage.
// A nil or empty src yields nil.
func Clone(src []float64) []float64 {
	if len(src) == 0 {
		return nil
	}
	out := make([]float64, len(src))
	copy(out, src)
	return out
}
