package mock

import "hash/fnv"

// DeterministicVector creates a deterministic embedding vector from text.
// It uses FNV hash to ensure the same text always produces the same vector.
func DeterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	for i := 0; i < dim; i++ {
		// Simple pseudo-random generation based on seed and index
		seed = seed*1664525 + 1013904223 // LCG constants
		vector[i] = float32(seed%2000)/1000.0 - 1.0
	}

	// Normalize to unit vector
	var sumSquares float32
	for _, v := range vector {
		sumSquares += v * v
	}
	if sumSquares > 0 {
		inv := float32(1.0) / sqrt32(sumSquares)
		for i := range vector {
			vector[i] *= inv
		}
	}

	return vector
}

func sqrt32(x float32) float32 {
	// Newton iterations are plenty for test vectors.
	if x <= 0 {
		return 0
	}
	guess := x
	for i := 0; i < 16; i++ {
		guess = (guess + x/guess) / 2
	}
	return guess
}
