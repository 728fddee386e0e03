// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package index

import (
	"errors"
	"math"
	"sort"
)

var (
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	ErrEmptyIndex        = errors.New("index is empty")
	ErrLengthMismatch    = errors.New("ids and vectors length mismatch")
)

// IVFThreshold is the row count above which Build produces an IVF index
// instead of a flat one.
const IVFThreshold = 5000

// Match is one search hit: the external ID of a row and its cosine
// similarity to the query.
type Match struct {
	ID    int64
	Score float32
}

// Index is a searchable collection of L2-normalized vectors with external
// 64-bit IDs.
type Index interface {
	// Search returns the k nearest rows by inner product, best first.
	Search(query []float32, k int) ([]Match, error)

	// Reconstruct returns all IDs and vectors in insertion order. The
	// returned slices are copies.
	Reconstruct() ([]int64, [][]float32)

	// Len returns the number of rows.
	Len() int

	// Dim returns the vector dimension.
	Dim() int
}

// Build creates the appropriate index for the collection size: flat exact
// search up to IVFThreshold rows, IVF beyond that. Vectors are normalized
// on insertion.
func Build(ids []int64, vectors [][]float32, dim int) (Index, error) {
	if len(ids) != len(vectors) {
		return nil, ErrLengthMismatch
	}
	if len(vectors) > IVFThreshold {
		return BuildIVF(ids, vectors, dim)
	}
	flat := NewFlat(dim)
	if err := flat.Add(ids, vectors); err != nil {
		return nil, err
	}
	return flat, nil
}

// NumLists returns the IVF cluster count for a collection size.
func NumLists(n int) int {
	nlist := int(math.Sqrt(float64(n)) * 1.5)
	if nlist < 256 {
		nlist = 256
	}
	if nlist > 2048 {
		nlist = 2048
	}
	return nlist
}

// NumProbes returns how many clusters a search visits.
func NumProbes(nlist int) int {
	nprobe := nlist / 4
	if nprobe < 32 {
		nprobe = 32
	}
	return nprobe
}

// topMatches sorts candidates by descending score and truncates to k.
// Ties break on ascending ID so results are stable. Non-positive k yields
// no matches.
func topMatches(candidates []Match, k int) []Match {
	if k <= 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].ID < candidates[j].ID
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}
