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


package media

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

// DefaultMaxFrames caps how many frames are sampled from a single video.
const DefaultMaxFrames = 60

// Frame is one sampled frame: its timestamp within the video and its
// JPEG-encoded image data.
type Frame struct {
	Timestamp float64
	JPEG      []byte
}

// Sampler extracts frames from video files.
type Sampler struct {
	maxFrames   int
	ffmpegPath  string
	ffprobePath string
	logger      *slog.Logger
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithMaxFrames overrides the per-video frame cap.
func WithMaxFrames(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.maxFrames = n
		}
	}
}

// WithToolPaths overrides the ffmpeg and ffprobe binaries used.
func WithToolPaths(ffmpeg, ffprobe string) Option {
	return func(s *Sampler) {
		s.ffmpegPath = ffmpeg
		s.ffprobePath = ffprobe
	}
}

// NewSampler creates a Sampler with default settings.
func NewSampler(opts ...Option) *Sampler {
	s := &Sampler{
		maxFrames:   DefaultMaxFrames,
		ffmpegPath:  "ffmpeg",
		ffprobePath: "ffprobe",
		logger:      slog.Default().With("component", "frame_sampler"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SampleFrames probes the video and extracts frames at adaptively chosen
// timestamps. An unreadable or streamless file yields no frames and no
// error; indexing continues with the remaining videos.
func (s *Sampler) SampleFrames(ctx context.Context, videoPath string) ([]Frame, error) {
	info, err := Probe(ctx, s.ffprobePath, videoPath)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("skipping unreadable video", "path", videoPath, "error", err)
		return nil, nil
	}

	indices := SampleFrameIndices(info, s.maxFrames)
	s.logger.Debug("sampling video",
		"path", videoPath,
		"duration_seconds", info.Duration,
		"total_frames", info.TotalFrames,
		"sample_count", len(indices))

	frames := make([]Frame, 0, len(indices))
	for _, idx := range indices {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		timestamp := float64(idx) / info.FPS
		jpeg, err := s.extractFrame(ctx, videoPath, timestamp)
		if err != nil {
			s.logger.Warn("failed to extract frame",
				"path", videoPath,
				"timestamp", timestamp,
				"error", err)
			continue
		}
		frames = append(frames, Frame{Timestamp: timestamp, JPEG: jpeg})
	}
	return frames, nil
}

// extractFrame seeks to a timestamp and decodes a single frame as JPEG.
// The seek is placed before the input so ffmpeg uses keyframe seeking.
func (s *Sampler) extractFrame(ctx context.Context, videoPath string, timestamp float64) ([]byte, error) {
	cmd := exec.CommandContext(ctx, s.ffmpegPath,
		"-ss", fmt.Sprintf("%.3f", timestamp),
		"-i", videoPath,
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "mjpeg",
		"-v", "error",
		"-",
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg frame extraction failed: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ffmpeg produced no frame at %.3fs", timestamp)
	}
	return out, nil
}
