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


package nlp

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Expander lemmatizes tokens and performs bounded synonym expansion for
// captions and search queries. It is safe for concurrent use.
type Expander struct {
	lemmatizer *golem.Lemmatizer
}

// NewExpander creates an Expander backed by the embedded English dictionary.
func NewExpander() (*Expander, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load english lemmatizer: %w", err)
	}
	return &Expander{lemmatizer: lemmatizer}, nil
}

// Lemma returns the dictionary form of a token, or the token itself when it
// has no dictionary entry.
func (e *Expander) Lemma(token string) string {
	return e.lemmatizer.Lemma(token)
}

// SemanticFeatures extracts searchable terms from a caption. Tokens longer
// than two characters are lemmatized; the first few qualifying tokens are
// then augmented with synonyms. The result preserves first-seen order and
// contains no duplicates.
func (e *Expander) SemanticFeatures(caption string) []string {
	var meaningful []string
	for _, token := range Tokenize(caption) {
		if len(token) > 2 {
			meaningful = append(meaningful, e.Lemma(token))
		}
	}

	features := newOrderedSet()
	for _, token := range meaningful {
		features.add(token)
	}

	// Expansion is capped to keep feature lists from exploding on long
	// multi-prompt captions.
	limit := len(meaningful)
	if limit > maxExpandedTokens {
		limit = maxExpandedTokens
	}
	for _, token := range meaningful[:limit] {
		if !IsVisualTerm(token) && len(token) < minExpandableToken {
			continue
		}
		for _, synonym := range synonymsFor(token) {
			features.add(synonym)
		}
	}

	return features.slice()
}

// ExpandQuery rewrites a search query into a broader form containing the
// original tokens, their synonyms and their lemmas, joined by spaces.
// Returned token order is deterministic for a given query.
func (e *Expander) ExpandQuery(query string) string {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return query
	}

	expanded := newOrderedSet()
	for _, token := range tokens {
		expanded.add(token)
	}
	for _, token := range tokens {
		for _, synonym := range synonymsFor(token) {
			expanded.add(synonym)
		}
		expanded.add(e.Lemma(token))
	}

	return strings.Join(expanded.slice(), " ")
}

// synonymsFor returns up to two entries from each of up to two senses,
// skipping entries shorter than three characters.
func synonymsFor(token string) []string {
	senses, ok := synonymTable[token]
	if !ok {
		return nil
	}

	var out []string
	for i, sense := range senses {
		if i >= maxSensesPerToken {
			break
		}
		for j, entry := range sense {
			if j >= maxLemmasPerSense {
				break
			}
			synonym := strings.ReplaceAll(entry, "_", " ")
			if len(synonym) >= minSynonymLength {
				out = append(out, synonym)
			}
		}
	}
	return out
}
