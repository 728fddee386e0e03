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


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/framesift/ai"
	"github.com/poiesic/framesift/ai/openai"
	"github.com/poiesic/framesift/core"
	"github.com/poiesic/framesift/indexer"
	"github.com/poiesic/framesift/media"
	"github.com/poiesic/framesift/search"
	"github.com/poiesic/framesift/storage"
)

// modelFlags configure the AI provider and are shared by every command
// that talks to the model services.
var modelFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "host",
		Usage: "Default model service host URL for all services",
		Value: "http://localhost:11434/v1",
	},
	&cli.StringFlag{
		Name:  "encoder-host",
		Usage: "Image/text encoder host URL (defaults to --host)",
	},
	&cli.StringFlag{
		Name:  "encoder-model",
		Usage: "Image/text encoder model name",
		Value: "clip-vit-base-patch32",
	},
	&cli.StringFlag{
		Name:  "caption-host",
		Usage: "Captioning host URL (defaults to --host)",
	},
	&cli.StringFlag{
		Name:  "caption-model",
		Usage: "Image captioning model name",
		Value: "llava:7b",
	},
	&cli.StringFlag{
		Name:  "sentence-model",
		Usage: "Optional sentence encoder model name",
	},
	&cli.StringFlag{
		Name:  "mood-model",
		Usage: "Optional emotion classification model name",
	},
	&cli.BoolFlag{
		Name:  "accelerated",
		Usage: "Treat model endpoints as accelerator-backed (enables mood analysis)",
	},
}

func main() {
	app := &cli.App{
		Name:  "framesift",
		Usage: "Multi-modal semantic video search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "preprocess",
				Usage:  "Sample, annotate and index all videos under a directory",
				Action: preprocessCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "videos-dir",
						Aliases:  []string{"v"},
						Usage:    "Directory tree containing the videos to index",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "index-dir",
						Aliases: []string{"i"},
						Usage:   "Directory for the index artifacts",
						Value:   "video_index",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of annotation workers",
						Value: 3,
					},
					&cli.IntFlag{
						Name:  "max-frames",
						Usage: "Maximum frames sampled per video",
						Value: media.DefaultMaxFrames,
					},
					&cli.BoolFlag{
						Name:  "rebuild",
						Usage: "Ignore existing artifacts and rebuild from scratch",
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Usage: "Directory for the annotation cache (disabled if empty)",
					},
				}, modelFlags...),
			},
			{
				Name:      "search",
				Usage:     "Search the index; runs an interactive prompt when no query is given",
				ArgsUsage: "[query]",
				Action:    searchCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "index-dir",
						Aliases: []string{"i"},
						Usage:   "Directory holding the index artifacts",
						Value:   "video_index",
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Maximum number of videos to return",
						Value:   20,
					},
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"d"},
						Usage:   "Only return videos under this directory",
					},
				}, modelFlags...),
			},
			{
				Name:   "stats",
				Usage:  "Show index statistics",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "index-dir",
						Aliases: []string{"i"},
						Usage:   "Directory holding the index artifacts",
						Value:   "video_index",
					},
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"d"},
						Usage:   "Restrict the video count to this directory",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func aiConfig(c *cli.Context) *ai.Config {
	host := c.String("host")
	hostOr := func(flag string) string {
		if h := c.String(flag); h != "" {
			return h
		}
		return host
	}

	opts := []ai.ConfigOption{
		ai.WithEncoder(hostOr("encoder-host"), c.String("encoder-model")),
		ai.WithCaptioner(hostOr("caption-host"), c.String("caption-model")),
		ai.WithAccelerated(c.Bool("accelerated")),
	}
	if model := c.String("sentence-model"); model != "" {
		opts = append(opts, ai.WithSentenceEncoder(host, model))
	}
	if model := c.String("mood-model"); model != "" {
		opts = append(opts, ai.WithMoodModel(model))
	}
	return ai.NewConfig(opts...)
}

func preprocessCommand(c *cli.Context) error {
	ctx := context.Background()

	config := aiConfig(c)
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []indexer.Option{
		indexer.WithWorkers(c.Int("workers")),
		indexer.WithIncremental(!c.Bool("rebuild")),
		indexer.WithSampler(media.NewSampler(media.WithMaxFrames(c.Int("max-frames")))),
		indexer.WithProgress(func(p indexer.Progress) {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s (%d frames)\n",
				p.Completed, p.Total, filepath.Base(p.VideoPath), p.FrameCount)
		}),
	}
	if dir := c.String("cache-dir"); dir != "" {
		opts = append(opts, indexer.WithCacheDir(dir))
	}

	ix, err := indexer.New(config, opts...)
	if err != nil {
		return fmt.Errorf("failed to create indexer: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Videos: %s\n", c.String("videos-dir"))
	fmt.Fprintf(os.Stderr, "Index: %s\n", c.String("index-dir"))
	fmt.Fprintln(os.Stderr)

	start := time.Now()
	if err := ix.Run(ctx, c.String("videos-dir"), c.String("index-dir")); err != nil {
		return fmt.Errorf("preprocessing failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Done in %s\n", time.Since(start).Round(time.Second))

	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	config := aiConfig(c)
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	artifacts, err := storage.Load(storage.NewArtifactSet(c.String("index-dir")))
	if err != nil {
		return fmt.Errorf("failed to load index from %s: %w", c.String("index-dir"), err)
	}

	provider, err := openai.NewProvider(config)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer provider.Close()

	searcher, err := search.NewSearcher(artifacts, provider)
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	filterDir := c.String("dir")
	if filterDir != "" && !searcher.HasVideosFromDirectory(filterDir) {
		return fmt.Errorf("no indexed videos under %s", filterDir)
	}

	topK := c.Int("top-k")
	if c.Args().Present() {
		return runSearch(ctx, searcher, strings.Join(c.Args().Slice(), " "), filterDir, topK)
	}

	// Interactive mode
	fmt.Printf("Loaded index with %d videos (%d frames)\n",
		searcher.IndexedVideoCount(), searcher.IndexedFrameCount())
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("query> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "quit" || query == "exit" {
			break
		}
		if err := runSearch(ctx, searcher, query, filterDir, topK); err != nil {
			fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
		}
	}
	return scanner.Err()
}

func runSearch(ctx context.Context, searcher *search.Searcher, query, filterDir string, topK int) error {
	start := time.Now()

	var (
		results []core.SearchResult
		err     error
	)
	if filterDir != "" {
		results, err = searcher.SearchInDirectory(ctx, query, filterDir, topK)
	} else if slog.Default().Enabled(ctx, slog.LevelDebug) {
		results, err = searcher.SearchWithMonitor(ctx, query, topK, search.NewLoggingMonitor(slog.Default()))
	} else {
		results, err = searcher.Search(ctx, query, topK)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Found %d videos in %s\n", len(results), time.Since(start).Round(time.Millisecond))
	for i, hit := range results {
		fmt.Printf("%2d. [%.3f] %s @ %.1fs (%d frames)\n",
			i+1, hit.Score, hit.VideoPath, hit.Timestamp, hit.FrameCount)
		fmt.Printf("    %s\n", hit.Caption)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	artifacts, err := storage.Load(storage.NewArtifactSet(c.String("index-dir")))
	if err != nil {
		return fmt.Errorf("failed to load index from %s: %w", c.String("index-dir"), err)
	}

	fmt.Printf("Indexed videos: %d\n", len(artifacts.Metadata.Aggregates))
	fmt.Printf("Indexed frames: %d\n", len(artifacts.Metadata.Frames))
	fmt.Printf("Visual index:   %d rows, dim %d\n", artifacts.VisualIndex.Len(), artifacts.VisualIndex.Dim())
	fmt.Printf("Text index:     %d rows, dim %d\n", artifacts.TextIndex.Len(), artifacts.TextIndex.Dim())
	fmt.Printf("Vocabulary:     %d terms\n", artifacts.Lexical.VocabularySize())

	if dir := c.String("dir"); dir != "" {
		count := 0
		for _, agg := range artifacts.Metadata.Aggregates {
			if search.UnderDirectory(dir, agg.VideoPath) {
				count++
			}
		}
		fmt.Printf("Videos under %s: %d\n", dir, count)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	return nil
}
