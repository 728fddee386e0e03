package index

import "sort"

// IVF is an inverted-file index: rows are partitioned across trained
// centroids and a search only scans the lists of the closest clusters.
// Recall is tuned by the probe count rather than exactness.
type IVF struct {
	dim       int
	nlist     int
	nprobe    int
	centroids []float32
	lists     [][]int32 // row positions per cluster
	ids       []int64
	vectors   []float32
}

// BuildIVF trains centroids over the rows and assigns each row to its
// nearest cluster. Vectors are normalized before training.
func BuildIVF(ids []int64, vectors [][]float32, dim int) (*IVF, error) {
	if len(ids) != len(vectors) {
		return nil, ErrLengthMismatch
	}

	n := len(vectors)
	flat := make([]float32, 0, n*dim)
	for _, vec := range vectors {
		if len(vec) != dim {
			return nil, ErrDimensionMismatch
		}
		flat = append(flat, NormalizedCopy(vec)...)
	}

	nlist := NumLists(n)
	if nlist > n {
		nlist = n
	}
	centroids := trainKMeans(flat, dim, nlist)
	nlist = len(centroids) / dim

	lists := make([][]int32, nlist)
	for i := 0; i < n; i++ {
		cluster := nearestCentroid(flat[i*dim:(i+1)*dim], centroids, dim)
		lists[cluster] = append(lists[cluster], int32(i))
	}

	idsCopy := make([]int64, n)
	copy(idsCopy, ids)

	return &IVF{
		dim:       dim,
		nlist:     nlist,
		nprobe:    NumProbes(nlist),
		centroids: centroids,
		lists:     lists,
		ids:       idsCopy,
		vectors:   flat,
	}, nil
}

func (ivf *IVF) Search(query []float32, k int) ([]Match, error) {
	if len(query) != ivf.dim {
		return nil, ErrDimensionMismatch
	}
	if len(ivf.ids) == 0 {
		return nil, nil
	}

	q := NormalizedCopy(query)

	// Rank clusters by centroid distance and probe the closest ones.
	type clusterDist struct {
		cluster int
		dist    float32
	}
	ranked := make([]clusterDist, ivf.nlist)
	for j := 0; j < ivf.nlist; j++ {
		center := ivf.centroids[j*ivf.dim : (j+1)*ivf.dim]
		var d float32
		for i := range q {
			diff := q[i] - center[i]
			d += diff * diff
		}
		ranked[j] = clusterDist{cluster: j, dist: d}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].dist < ranked[j].dist })

	probes := ivf.nprobe
	if probes > len(ranked) {
		probes = len(ranked)
	}

	var candidates []Match
	for _, cd := range ranked[:probes] {
		for _, pos := range ivf.lists[cd.cluster] {
			row := ivf.vectors[int(pos)*ivf.dim : (int(pos)+1)*ivf.dim]
			candidates = append(candidates, Match{ID: ivf.ids[pos], Score: DotProduct(q, row)})
		}
	}
	return topMatches(candidates, k), nil
}

func (ivf *IVF) Reconstruct() ([]int64, [][]float32) {
	ids := make([]int64, len(ivf.ids))
	copy(ids, ivf.ids)

	vectors := make([][]float32, len(ivf.ids))
	for i := range vectors {
		row := make([]float32, ivf.dim)
		copy(row, ivf.vectors[i*ivf.dim:(i+1)*ivf.dim])
		vectors[i] = row
	}
	return ids, vectors
}

func (ivf *IVF) Len() int {
	return len(ivf.ids)
}

func (ivf *IVF) Dim() int {
	return ivf.dim
}
