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


package lexical

import (
	"math"
	"sort"
	"strings"

	"github.com/poiesic/framesift/nlp"
)

const (
	// MaxFeatures caps the vocabulary at the most frequent terms.
	MaxFeatures = 15000

	// ngramMax is the longest n-gram generated from a document.
	ngramMax = 3

	// maxDocFraction prunes terms that occur in more than this share of
	// documents.
	maxDocFraction = 0.9

	minTokenLength = 2
)

// SparseVector is an L2-normalized sparse row with sorted column indices.
type SparseVector struct {
	Indices []int32
	Values  []float32
}

// Index is a fitted TF-IDF index: the learned vocabulary with its IDF
// weights plus one normalized row per document.
type Index struct {
	terms      []string
	vocabulary map[string]int32
	idf        []float32
	rows       []SparseVector
}

// Fit builds a TF-IDF index over the documents. Row order matches document
// order, so callers map row positions back to their own record order.
func Fit(documents []string) *Index {
	n := len(documents)

	tokenized := make([][]string, n)
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)
	for i, doc := range documents {
		terms := extractTerms(doc)
		tokenized[i] = terms

		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			corpusFreq[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	// Prune ubiquitous terms unless that would empty the vocabulary,
	// which happens with a single document.
	pruned := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if float64(df) <= maxDocFraction*float64(n) {
			pruned = append(pruned, term)
		}
	}
	if len(pruned) == 0 {
		pruned = pruned[:0]
		for term := range docFreq {
			pruned = append(pruned, term)
		}
	}

	if len(pruned) > MaxFeatures {
		sort.Slice(pruned, func(i, j int) bool {
			fi, fj := corpusFreq[pruned[i]], corpusFreq[pruned[j]]
			if fi != fj {
				return fi > fj
			}
			return pruned[i] < pruned[j]
		})
		pruned = pruned[:MaxFeatures]
	}

	// Columns are assigned in term order so the layout is deterministic.
	sort.Strings(pruned)
	vocabulary := make(map[string]int32, len(pruned))
	for i, term := range pruned {
		vocabulary[term] = int32(i)
	}

	idf := make([]float32, len(pruned))
	for i, term := range pruned {
		idf[i] = float32(math.Log(float64(1+n)/float64(1+docFreq[term])) + 1)
	}

	idx := &Index{
		terms:      pruned,
		vocabulary: vocabulary,
		idf:        idf,
		rows:       make([]SparseVector, n),
	}
	for i, terms := range tokenized {
		idx.rows[i] = idx.vectorize(terms)
	}
	return idx
}

// Transform maps free text into the fitted vector space. Terms outside the
// vocabulary are ignored.
func (x *Index) Transform(text string) SparseVector {
	return x.vectorize(extractTerms(text))
}

// Scores returns the cosine similarity of the query text against every
// document row, in row order.
func (x *Index) Scores(query string) []float32 {
	vec := x.Transform(query)
	scores := make([]float32, len(x.rows))
	for i, row := range x.rows {
		scores[i] = sparseDot(vec, row)
	}
	return scores
}

// Len returns the number of document rows.
func (x *Index) Len() int {
	return len(x.rows)
}

// VocabularySize returns the number of learned terms.
func (x *Index) VocabularySize() int {
	return len(x.terms)
}

// vectorize applies sublinear tf weighting, idf scaling and L2
// normalization to a term list.
func (x *Index) vectorize(terms []string) SparseVector {
	tf := make(map[int32]int)
	for _, term := range terms {
		if col, ok := x.vocabulary[term]; ok {
			tf[col]++
		}
	}
	if len(tf) == 0 {
		return SparseVector{}
	}

	indices := make([]int32, 0, len(tf))
	for col := range tf {
		indices = append(indices, col)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	values := make([]float32, len(indices))
	var sumSquares float64
	for i, col := range indices {
		w := (1 + math.Log(float64(tf[col]))) * float64(x.idf[col])
		values[i] = float32(w)
		sumSquares += w * w
	}
	inv := float32(1 / math.Sqrt(sumSquares))
	for i := range values {
		values[i] *= inv
	}

	return SparseVector{Indices: indices, Values: values}
}

// extractTerms tokenizes, removes stopwords and generates unigrams through
// trigrams.
func extractTerms(text string) []string {
	var tokens []string
	for _, token := range nlp.Tokenize(text) {
		if len(token) >= minTokenLength && !isStopword(token) {
			tokens = append(tokens, token)
		}
	}

	var terms []string
	for size := 1; size <= ngramMax; size++ {
		for i := 0; i+size <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+size], " "))
		}
	}
	return terms
}

// sparseDot multiplies two sorted sparse vectors.
func sparseDot(a, b SparseVector) float32 {
	var sum float32
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}
