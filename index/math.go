package index

import "math"

// DotProduct computes the inner product of two equal-length vectors.
func DotProduct(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// NormalizeL2 scales a vector to unit length in place. Zero vectors are
// left untouched.
func NormalizeL2(v []float32) {
	var sumSquares float64
	for _, x := range v {
		sumSquares += float64(x) * float64(x)
	}
	if sumSquares == 0 {
		return
	}
	inv := float32(1 / math.Sqrt(sumSquares))
	for i := range v {
		v[i] *= inv
	}
}

// NormalizedCopy returns a unit-length copy of the vector.
func NormalizedCopy(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	NormalizeL2(out)
	return out
}
