package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/framesift/ai"
	"github.com/poiesic/framesift/core"
	"github.com/poiesic/framesift/nlp"
	"github.com/poiesic/framesift/storage"
)

const (
	// maxCandidates caps the per-modality candidate pool regardless of topK.
	maxCandidates = 200

	// oversampleFactor widens the candidate pool relative to topK so the
	// fusion stage has enough frames to rerank.
	oversampleFactor = 3

	// lexicalFloor drops TF-IDF scores too weak to count as a signal.
	lexicalFloor = 0.05
)

// Searcher runs multi-modal queries over a loaded index.
type Searcher struct {
	artifacts *storage.Artifacts
	frameByID map[core.ID]int
	encoder   ai.ImageEncoder
	sentence  ai.TextEmbedder
	expander  *nlp.Expander
	weights   core.Weights
	logger    *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithWeights overrides the fusion weights.
// Default is core.DefaultWeights().
func WithWeights(weights core.Weights) Option {
	return func(s *Searcher) error {
		s.weights = weights
		return nil
	}
}

// NewSearcher creates a searcher over the given artifacts. The provider
// must embed queries with the same models that built the index, otherwise
// similarity scores are meaningless.
func NewSearcher(artifacts *storage.Artifacts, provider ai.Provider, opts ...Option) (*Searcher, error) {
	if artifacts == nil {
		return nil, ErrArtifactsRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	expander, err := nlp.NewExpander()
	if err != nil {
		return nil, err
	}

	frameByID := make(map[core.ID]int, len(artifacts.Metadata.Frames))
	for i, frame := range artifacts.Metadata.Frames {
		frameByID[frame.Id] = i
	}

	s := &Searcher{
		artifacts: artifacts,
		frameByID: frameByID,
		encoder:   provider.ImageEncoder(),
		sentence:  provider.SentenceEmbedder(),
		expander:  expander,
		weights:   core.DefaultWeights(),
		logger:    slog.Default().With("component", "searcher"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// IndexedFrameCount returns the number of frames in the loaded index.
func (s *Searcher) IndexedFrameCount() int {
	return len(s.artifacts.Metadata.Frames)
}

// IndexedVideoCount returns the number of videos in the loaded index.
func (s *Searcher) IndexedVideoCount() int {
	return len(s.artifacts.Metadata.Aggregates)
}

// Search returns up to topK videos ranked by multi-modal relevance to the
// query, best first.
func (s *Searcher) Search(ctx context.Context, query string, topK int) ([]core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, query, topK, nil)
}

// SearchWithMonitor runs a search with monitoring. The monitor receives
// callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, topK int, monitor SearchMonitor) ([]core.SearchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	if topK < 0 {
		topK = 0
	}

	if len(s.artifacts.Metadata.Frames) == 0 {
		s.logger.Debug("search against empty index", "query", query)
		return []core.SearchResult{}, nil
	}

	// 1. Query expansion
	expanded := s.expander.ExpandQuery(query)
	monitor.AfterQueryExpansion(expanded)

	searchK := topK * oversampleFactor
	if searchK > maxCandidates {
		searchK = maxCandidates
	}

	candidates := make(map[core.ID]*modalityScores)

	// 2. Visual-space search, original and expanded query
	for _, text := range []string{query, expanded} {
		embedding, err := s.encoder.EmbedImageText(ctx, text)
		if err != nil {
			s.logger.Error("error embedding query in visual space", "query", text, "err", err)
			return nil, err
		}
		matches, err := s.artifacts.VisualIndex.Search(embedding, searchK)
		if err != nil {
			return nil, err
		}
		monitor.AfterVisualSearch(matches)
		mergeMatches(candidates, matches, func(ms *modalityScores, score float64) {
			if score > ms.visual {
				ms.visual = score
			}
		})
	}

	// 3. Caption-space search, original and expanded query
	for _, text := range []string{query, expanded} {
		embedding, err := s.embedCaptionQuery(ctx, text)
		if err != nil {
			s.logger.Error("error embedding query in caption space", "query", text, "err", err)
			return nil, err
		}
		matches, err := s.artifacts.TextIndex.Search(embedding, searchK)
		if err != nil {
			return nil, err
		}
		monitor.AfterTextSearch(matches)
		mergeMatches(candidates, matches, func(ms *modalityScores, score float64) {
			if score > ms.text {
				ms.text = score
			}
		})
	}

	// 4. Lexical search, original and expanded query
	for _, text := range []string{query, expanded} {
		s.mergeLexical(candidates, text, searchK)
	}
	monitor.AfterLexicalSearch(len(candidates))

	// 5. Multi-modal fusion
	frameScores := make(map[core.ID]float64, len(candidates))
	for id, ms := range candidates {
		frameScores[id] = fuse(s.weights, ms)
	}
	monitor.AfterFusion(frameScores)

	// 6. Per-video aggregation with temporal clustering
	results := s.rankVideos(frameScores, topK)
	monitor.Finish(results)

	return results, nil
}

// SearchInDirectory searches the whole index, then keeps only videos that
// live under dir. The underlying search oversamples so that a directory
// holding a minority of the library can still fill topK results.
func (s *Searcher) SearchInDirectory(ctx context.Context, query, dir string, topK int) ([]core.SearchResult, error) {
	if topK < 0 {
		topK = 0
	}
	all, err := s.Search(ctx, query, topK*oversampleFactor)
	if err != nil {
		return nil, err
	}

	filtered := make([]core.SearchResult, 0, topK)
	for _, result := range all {
		if !UnderDirectory(dir, result.VideoPath) {
			continue
		}
		filtered = append(filtered, result)
		if len(filtered) == topK {
			break
		}
	}
	return filtered, nil
}

// HasVideosFromDirectory reports whether the index contains at least one
// video under dir.
func (s *Searcher) HasVideosFromDirectory(dir string) bool {
	for _, agg := range s.artifacts.Metadata.Aggregates {
		if UnderDirectory(dir, agg.VideoPath) {
			return true
		}
	}
	return false
}

// CountVideosInDirectory returns the number of unique indexed videos
// under dir.
func (s *Searcher) CountVideosInDirectory(dir string) int {
	count := 0
	for _, agg := range s.artifacts.Metadata.Aggregates {
		if UnderDirectory(dir, agg.VideoPath) {
			count++
		}
	}
	return count
}

// embedCaptionQuery embeds text in the caption space: the sentence encoder
// when one is configured, the image encoder's text branch otherwise. This
// mirrors the fallback used at indexing time so query and index vectors
// always share a space.
func (s *Searcher) embedCaptionQuery(ctx context.Context, text string) ([]float32, error) {
	if s.sentence != nil {
		return s.sentence.EmbedText(ctx, text)
	}
	return s.encoder.EmbedImageText(ctx, text)
}

// mergeLexical scores every indexed frame against the query text and folds
// the strongest searchK rows above the floor into the candidate set.
func (s *Searcher) mergeLexical(candidates map[core.ID]*modalityScores, text string, searchK int) {
	scores := s.artifacts.Lexical.Scores(text)
	top := topRows(scores, searchK, lexicalFloor)
	for _, row := range top {
		if row >= len(s.artifacts.Metadata.Frames) {
			continue
		}
		id := s.artifacts.Metadata.Frames[row].Id
		ms := candidates[id]
		if ms == nil {
			ms = &modalityScores{}
			candidates[id] = ms
		}
		if score := float64(scores[row]); score > ms.lexical {
			ms.lexical = score
		}
	}
}
