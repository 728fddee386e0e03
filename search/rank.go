package search

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/poiesic/framesift/core"
	"github.com/poiesic/framesift/index"
)

const (
	// consistencyFloor is the per-modality score a frame must clear for
	// that modality to count toward the consistency bonus.
	consistencyFloor = 0.1

	// consistencyBonus is added per extra modality above the floor.
	consistencyBonus = 0.05

	// temporalWindow groups frames within this many seconds into one
	// cluster when scoring a video.
	temporalWindow = 10.0

	// multiClusterBonus is added per extra cluster of matching frames.
	multiClusterBonus = 0.1

	// strongClusterBonus is added per cluster of at least two frames
	// whose average score exceeds strongClusterScore.
	strongClusterBonus = 0.05
	strongClusterScore = 0.3
)

// modalityScores holds the best per-modality similarity of one candidate
// frame across the original and expanded query variants.
type modalityScores struct {
	visual  float64
	text    float64
	lexical float64
}

// fuse combines the per-modality scores into one frame score: a weighted
// sum plus a bonus for frames that score across multiple modalities.
func fuse(w core.Weights, ms *modalityScores) float64 {
	score := w.Visual*ms.visual + w.Text*ms.text + w.Lexical*ms.lexical

	strong := 0
	for _, s := range []float64{ms.visual, ms.text, ms.lexical} {
		if s > consistencyFloor {
			strong++
		}
	}
	if strong > 1 {
		score += consistencyBonus * float64(strong-1)
	}
	return score
}

// mergeMatches folds vector search hits into the candidate set, applying
// fold to each candidate's modality slot.
func mergeMatches(candidates map[core.ID]*modalityScores, matches []index.Match, fold func(*modalityScores, float64)) {
	for _, match := range matches {
		id := core.ID(match.ID)
		ms := candidates[id]
		if ms == nil {
			ms = &modalityScores{}
			candidates[id] = ms
		}
		fold(ms, float64(match.Score))
	}
}

// topRows returns the indices of the k highest scores above floor,
// best first.
func topRows(scores []float32, k int, floor float64) []int {
	rows := make([]int, 0, len(scores))
	for i, s := range scores {
		if float64(s) > floor {
			rows = append(rows, i)
		}
	}
	sort.Slice(rows, func(a, b int) bool {
		if scores[rows[a]] != scores[rows[b]] {
			return scores[rows[a]] > scores[rows[b]]
		}
		return rows[a] < rows[b]
	})
	if len(rows) > k {
		rows = rows[:k]
	}
	return rows
}

// scoredFrame is one matching frame during per-video aggregation.
type scoredFrame struct {
	timestamp float64
	score     float64
	row       int
}

// rankVideos groups fused frame scores by video, scores each video as the
// sum of its frame scores plus temporal clustering bonuses, and returns
// the topK videos best first. Ties rank by path so results are stable
// across runs.
func (s *Searcher) rankVideos(frameScores map[core.ID]float64, topK int) []core.SearchResult {
	byVideo := make(map[string][]scoredFrame)
	for id, score := range frameScores {
		row, ok := s.frameByID[id]
		if !ok {
			continue
		}
		frame := s.artifacts.Metadata.Frames[row]
		byVideo[frame.VideoPath] = append(byVideo[frame.VideoPath], scoredFrame{
			timestamp: frame.Timestamp,
			score:     score,
			row:       row,
		})
	}

	type videoScore struct {
		path  string
		score float64
	}
	ranked := make([]videoScore, 0, len(byVideo))
	for path, frames := range byVideo {
		sort.Slice(frames, func(i, j int) bool {
			return frames[i].timestamp < frames[j].timestamp
		})
		byVideo[path] = frames
		ranked = append(ranked, videoScore{path: path, score: videoScoreOf(frames)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].path < ranked[j].path
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	results := make([]core.SearchResult, 0, len(ranked))
	for _, vs := range ranked {
		frames := byVideo[vs.path]
		best := frames[0]
		for _, f := range frames[1:] {
			if f.score > best.score {
				best = f
			}
		}
		results = append(results, core.SearchResult{
			VideoPath:  vs.path,
			Timestamp:  best.timestamp,
			Caption:    s.artifacts.Metadata.Frames[best.row].Caption,
			Score:      vs.score,
			FrameCount: len(frames),
		})
	}
	return results
}

// videoScoreOf sums the frame scores and adds temporal bonuses: one for
// each extra cluster of matches, and one for each sustained high-scoring
// cluster. Frames must be sorted by timestamp.
func videoScoreOf(frames []scoredFrame) float64 {
	base := 0.0
	for _, f := range frames {
		base += f.score
	}
	if len(frames) < 2 {
		return base
	}

	var clusters [][]scoredFrame
	current := []scoredFrame{frames[0]}
	for _, f := range frames[1:] {
		if f.timestamp-current[len(current)-1].timestamp <= temporalWindow {
			current = append(current, f)
		} else {
			clusters = append(clusters, current)
			current = []scoredFrame{f}
		}
	}
	clusters = append(clusters, current)

	bonus := 0.0
	if len(clusters) > 1 {
		bonus += multiClusterBonus * float64(len(clusters)-1)
	}
	for _, cluster := range clusters {
		sum := 0.0
		for _, f := range cluster {
			sum += f.score
		}
		if len(cluster) >= 2 && sum/float64(len(cluster)) > strongClusterScore {
			bonus += strongClusterBonus
		}
	}
	return base + bonus
}

// UnderDirectory reports whether path equals dir or is nested anywhere
// beneath it. A path that merely shares a name prefix with dir does not
// qualify. Relative dirs resolve against the working directory, since
// indexed paths are always absolute.
func UnderDirectory(dir, path string) bool {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	} else {
		dir = filepath.Clean(dir)
	}
	path = filepath.Clean(path)
	if path == dir {
		return true
	}
	if dir == string(filepath.Separator) {
		return strings.HasPrefix(path, dir)
	}
	return strings.HasPrefix(path, dir+string(filepath.Separator))
}
