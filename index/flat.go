package index

// Flat is an exact inner-product index. Every search scans all rows, which
// is fast enough below the IVF threshold.
type Flat struct {
	dim     int
	ids     []int64
	vectors []float32 // row-major, len = len(ids)*dim
}

// NewFlat creates an empty flat index for vectors of the given dimension.
func NewFlat(dim int) *Flat {
	return &Flat{dim: dim}
}

// Add appends rows. Vectors are normalized before storage.
func (f *Flat) Add(ids []int64, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return ErrLengthMismatch
	}
	for i, vec := range vectors {
		if len(vec) != f.dim {
			return ErrDimensionMismatch
		}
		f.ids = append(f.ids, ids[i])
		f.vectors = append(f.vectors, NormalizedCopy(vec)...)
	}
	return nil
}

func (f *Flat) Search(query []float32, k int) ([]Match, error) {
	if len(query) != f.dim {
		return nil, ErrDimensionMismatch
	}
	if len(f.ids) == 0 {
		return nil, nil
	}

	q := NormalizedCopy(query)
	candidates := make([]Match, len(f.ids))
	for i, id := range f.ids {
		row := f.vectors[i*f.dim : (i+1)*f.dim]
		candidates[i] = Match{ID: id, Score: DotProduct(q, row)}
	}
	return topMatches(candidates, k), nil
}

func (f *Flat) Reconstruct() ([]int64, [][]float32) {
	ids := make([]int64, len(f.ids))
	copy(ids, f.ids)

	vectors := make([][]float32, len(f.ids))
	for i := range vectors {
		row := make([]float32, f.dim)
		copy(row, f.vectors[i*f.dim:(i+1)*f.dim])
		vectors[i] = row
	}
	return ids, vectors
}

func (f *Flat) Len() int {
	return len(f.ids)
}

func (f *Flat) Dim() int {
	return f.dim
}
