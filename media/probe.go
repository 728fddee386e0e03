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
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultFPS is assumed when a container reports no usable frame rate.
const DefaultFPS = 25.0

var ErrNoVideoStream = errors.New("no video stream found")

// VideoInfo describes the first video stream of a file.
type VideoInfo struct {
	FPS         float64
	TotalFrames int
	Duration    float64
}

type ffprobeOutput struct {
	Streams []struct {
		RFrameRate string `json:"r_frame_rate"`
		NbFrames   string `json:"nb_frames"`
		Duration   string `json:"duration"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe inspects a video file with ffprobe. Frame rate falls back to
// DefaultFPS, and total frames is derived from duration when the container
// does not record a frame count.
func Probe(ctx context.Context, ffprobePath, videoPath string) (VideoInfo, error) {
	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=r_frame_rate,nb_frames,duration",
		"-show_entries", "format=duration",
		"-of", "json",
		videoPath,
	)
	out, err := cmd.Output()
	if err != nil {
		return VideoInfo{}, fmt.Errorf("ffprobe failed for %s: %w", videoPath, err)
	}

	var probed ffprobeOutput
	if err := json.Unmarshal(out, &probed); err != nil {
		return VideoInfo{}, fmt.Errorf("failed to parse ffprobe output for %s: %w", videoPath, err)
	}
	if len(probed.Streams) == 0 {
		return VideoInfo{}, fmt.Errorf("%w: %s", ErrNoVideoStream, videoPath)
	}

	stream := probed.Streams[0]

	info := VideoInfo{FPS: parseFrameRate(stream.RFrameRate)}
	if info.FPS <= 0 {
		info.FPS = DefaultFPS
	}

	info.Duration, _ = strconv.ParseFloat(stream.Duration, 64)
	if info.Duration <= 0 {
		info.Duration, _ = strconv.ParseFloat(probed.Format.Duration, 64)
	}

	info.TotalFrames, _ = strconv.Atoi(stream.NbFrames)
	if info.TotalFrames <= 0 && info.Duration > 0 {
		info.TotalFrames = int(info.Duration * info.FPS)
	}
	if info.Duration <= 0 && info.TotalFrames > 0 {
		info.Duration = float64(info.TotalFrames) / info.FPS
	}

	return info, nil
}

// parseFrameRate parses ffprobe rational frame rates such as "30000/1001".
func parseFrameRate(rate string) float64 {
	num, den, found := strings.Cut(rate, "/")
	if !found {
		parsed, _ := strconv.ParseFloat(rate, 64)
		return parsed
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}
