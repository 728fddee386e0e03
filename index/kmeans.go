package index

import (
	"math"
	"math/rand"
)

const kmeansMaxIterations = 10

// trainKMeans clusters flattened row-major vectors into k centroids with
// Lloyd's algorithm and returns the flattened centroids. The RNG seed is
// fixed so a rebuild over the same rows produces the same clustering.
func trainKMeans(vectors []float32, dim, k int) []float32 {
	n := len(vectors) / dim
	if n < k {
		k = n
	}
	if k == 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(1))

	centroids := make([]float32, k*dim)
	perm := rng.Perm(n)
	for i := 0; i < k; i++ {
		copy(centroids[i*dim:(i+1)*dim], vectors[perm[i]*dim:(perm[i]+1)*dim])
	}

	assignments := make([]int, n)
	counts := make([]int, k)
	sums := make([]float32, k*dim)

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false

		for i := 0; i < n; i++ {
			vec := vectors[i*dim : (i+1)*dim]
			best := nearestCentroid(vec, centroids, dim)
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}

		if !changed && iter > 0 {
			break
		}

		for i := range sums {
			sums[i] = 0
		}
		for i := range counts {
			counts[i] = 0
		}
		for i := 0; i < n; i++ {
			cluster := assignments[i]
			vec := vectors[i*dim : (i+1)*dim]
			for d := 0; d < dim; d++ {
				sums[cluster*dim+d] += vec[d]
			}
			counts[cluster]++
		}

		for j := 0; j < k; j++ {
			if counts[j] > 0 {
				scale := 1.0 / float32(counts[j])
				for d := 0; d < dim; d++ {
					centroids[j*dim+d] = sums[j*dim+d] * scale
				}
			} else {
				// Re-seed empty clusters from a random row.
				idx := rng.Intn(n)
				copy(centroids[j*dim:(j+1)*dim], vectors[idx*dim:(idx+1)*dim])
			}
		}
	}

	return centroids
}

// nearestCentroid returns the index of the closest centroid by squared
// euclidean distance.
func nearestCentroid(vec, centroids []float32, dim int) int {
	k := len(centroids) / dim
	best := 0
	minDist := float32(math.MaxFloat32)
	for j := 0; j < k; j++ {
		center := centroids[j*dim : (j+1)*dim]
		var d float32
		for i := range vec {
			diff := vec[i] - center[i]
			d += diff * diff
		}
		if d < minDist {
			minDist = d
			best = j
		}
	}
	return best
}
