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


package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/framesift/ai"
	"github.com/poiesic/framesift/ai/openai"
	"github.com/poiesic/framesift/media"
	"github.com/poiesic/framesift/nlp"
	"github.com/poiesic/framesift/storage/badgercache"
)

// maxWorkers caps the worker pool. Each worker holds its own provider
// connection and annotating is model-bound, so more workers only add
// contention on the model endpoints.
const maxWorkers = 3

// ProviderFactory creates a model provider from a configuration. The
// default uses the OpenAI-compatible provider; tests inject mocks.
type ProviderFactory func(config *ai.Config) (ai.Provider, error)

// Progress reports one completed video during an indexing run.
type Progress struct {
	Completed  int
	Total      int
	VideoPath  string
	FrameCount int
}

// ProgressFunc receives progress updates. It may be called from worker
// goroutines.
type ProgressFunc func(Progress)

// Indexer orchestrates a full indexing run.
type Indexer struct {
	config      *ai.Config
	factory     ProviderFactory
	sampler     *media.Sampler
	workers     int
	incremental bool
	cacheDir    string
	progress    ProgressFunc
	logger      *slog.Logger
}

// Option configures an Indexer.
type Option func(*Indexer)

// WithWorkers sets the requested worker count. The effective count is
// clamped to [1, 3].
func WithWorkers(n int) Option {
	return func(ix *Indexer) {
		ix.workers = n
	}
}

// WithIncremental controls whether existing artifacts are extended or
// ignored. Default is incremental.
func WithIncremental(incremental bool) Option {
	return func(ix *Indexer) {
		ix.incremental = incremental
	}
}

// WithCacheDir enables the annotation cache at the given directory.
func WithCacheDir(dir string) Option {
	return func(ix *Indexer) {
		ix.cacheDir = dir
	}
}

// WithProgress sets the progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(ix *Indexer) {
		ix.progress = fn
	}
}

// WithSampler overrides the frame sampler.
func WithSampler(sampler *media.Sampler) Option {
	return func(ix *Indexer) {
		ix.sampler = sampler
	}
}

// WithProviderFactory overrides how per-worker providers are created.
func WithProviderFactory(factory ProviderFactory) Option {
	return func(ix *Indexer) {
		ix.factory = factory
	}
}

// New creates an Indexer for the given model configuration.
func New(config *ai.Config, opts ...Option) (*Indexer, error) {
	if config == nil {
		return nil, ErrProviderRequired
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ix := &Indexer{
		config:      config,
		factory:     openai.NewProvider,
		sampler:     media.NewSampler(),
		workers:     maxWorkers,
		incremental: true,
		logger:      slog.Default().With("component", "indexer"),
	}
	for _, opt := range opts {
		opt(ix)
	}

	if ix.workers < 1 {
		ix.workers = 1
	}
	if ix.workers > maxWorkers {
		ix.workers = maxWorkers
	}
	return ix, nil
}

// workerContext is one worker's annotator plus its serialization lock.
// Tasks routed to the same worker run one at a time, mirroring a worker
// that owns its model connections.
type workerContext struct {
	id        int
	annotator *Annotator
	provider  ai.Provider
	mu        sync.Mutex
}

// Run indexes all new videos under videosDir into outputDir. Per-video
// failures are logged and skipped; only whole-run failures (provider
// construction, artifact writes) return an error.
func (ix *Indexer) Run(ctx context.Context, videosDir, outputDir string) error {
	if outputDir == "" {
		return ErrOutputDirRequired
	}

	builder := NewBuilder(outputDir)
	if ix.incremental {
		builder.LoadExisting()
	}

	scan, err := ScanVideos(videosDir)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", videosDir, err)
	}
	if scan.SkippedRaw > 0 {
		ix.logger.Info("excluded raw directories",
			"directories", scan.RawDirs,
			"videos_skipped", scan.SkippedRaw)
	}

	var newVideos []string
	for _, video := range scan.Videos {
		if !builder.HasVideo(video) {
			newVideos = append(newVideos, video)
		}
	}
	maxDepth, totalBytes := TreeStats(newVideos, videosDir)
	ix.logger.Info("video scan complete",
		"found", len(scan.Videos),
		"already_indexed", len(scan.Videos)-len(newVideos),
		"new", len(newVideos),
		"max_depth", maxDepth,
		"total_mb", totalBytes/(1<<20))
	for _, stat := range DirectoryStats(newVideos, videosDir) {
		ix.logger.Debug("videos per directory", "directory", stat.Dir, "count", stat.Count)
	}

	if len(newVideos) == 0 {
		ix.logger.Info("no new videos to index")
		return nil
	}

	workers, cleanup, err := ix.buildWorkers()
	if err != nil {
		return err
	}
	defer cleanup()

	results := make([]*VideoResult, len(newVideos))
	pool, err := ants.NewPool(len(workers))
	if err != nil {
		return err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var completed atomic.Int64
	for i, video := range newVideos {
		i, video := i, video
		worker := workers[i%len(workers)]

		wg.Add(1)
		task := func() {
			defer wg.Done()
			worker.mu.Lock()
			defer worker.mu.Unlock()

			result := ix.processVideo(ctx, worker, video)
			results[i] = result

			done := int(completed.Add(1))
			frameCount := 0
			if result != nil {
				frameCount = len(result.Frames)
			}
			if ix.progress != nil {
				ix.progress(Progress{
					Completed:  done,
					Total:      len(newVideos),
					VideoPath:  video,
					FrameCount: frameCount,
				})
			}
		}
		if err := pool.Submit(task); err != nil {
			// Pool rejected the task; run it on the caller instead of
			// losing the video.
			task()
		}
	}
	wg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	// Append in input order so frame IDs do not depend on completion
	// timing.
	for i, result := range results {
		if result == nil || len(result.Frames) == 0 {
			ix.logger.Warn("video produced no frames", "video", newVideos[i])
			continue
		}
		if err := builder.Append(*result); err != nil {
			return err
		}
	}

	return builder.Finalize()
}

// buildWorkers constructs one provider per worker. Worker 0 gets the
// primary configuration; the rest use the secondary variant without the
// accelerator-bound optional services.
func (ix *Indexer) buildWorkers() ([]*workerContext, func(), error) {
	expander, err := nlp.NewExpander()
	if err != nil {
		return nil, nil, err
	}

	var cache *badgercache.Cache
	if ix.cacheDir != "" {
		cache, err = badgercache.Open(ix.cacheDir, false)
		if err != nil {
			ix.logger.Warn("annotation cache unavailable, continuing without it", "error", err)
			cache = nil
		}
	}

	modelTag := fmt.Sprintf("%s+%s+%s", ix.config.EncoderModel, ix.config.CaptionModel, ix.config.SentenceModel)

	var workers []*workerContext
	cleanup := func() {
		for _, w := range workers {
			w.provider.Close()
		}
		if cache != nil {
			cache.Close()
		}
	}

	for i := 0; i < ix.workers; i++ {
		config := ix.config
		if i > 0 {
			config = ix.config.Secondary()
		}

		logMemory(ix.logger, fmt.Sprintf("before worker %d models", i))
		provider, err := ix.factory(config)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create provider for worker %d: %w", i, err)
		}
		logMemory(ix.logger, fmt.Sprintf("after worker %d models", i))

		workers = append(workers, &workerContext{
			id:        i,
			annotator: NewAnnotator(provider, expander, cache, modelTag),
			provider:  provider,
		})
	}
	return workers, cleanup, nil
}

// processVideo samples and annotates one video. Frame-level failures are
// logged and skipped; the video contributes whatever frames succeeded.
func (ix *Indexer) processVideo(ctx context.Context, worker *workerContext, videoPath string) *VideoResult {
	logger := ix.logger.With("worker", worker.id, "video", videoPath)

	frames, err := ix.sampler.SampleFrames(ctx, videoPath)
	if err != nil {
		logger.Warn("frame sampling aborted", "error", err)
		return nil
	}
	if len(frames) == 0 {
		return nil
	}

	result := &VideoResult{VideoPath: videoPath}
	for frameNum, frame := range frames {
		if ctx.Err() != nil {
			logger.Warn("annotation canceled", "error", ctx.Err())
			return result
		}

		annotation, err := worker.annotator.Annotate(ctx, videoPath, frame, frameNum)
		if err != nil {
			logger.Warn("frame annotation failed", "timestamp", frame.Timestamp, "error", err)
			continue
		}
		result.Frames = append(result.Frames, FrameObservation{
			Timestamp:  frame.Timestamp,
			Annotation: annotation,
		})

		if (frameNum+1)%memoryReclaimEvery == 0 {
			reclaimMemory()
			if (frameNum+1)%memoryReportEvery == 0 {
				logMemory(logger, fmt.Sprintf("annotated %d frames", frameNum+1))
			}
		}
	}

	logger.Info("video annotated", "frames", len(result.Frames), "sampled", len(frames))
	return result
}
