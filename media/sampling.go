package media

import "sort"

// SamplingIntervals returns the pair of sampling intervals, in seconds,
// appropriate for a video of the given duration. Short videos are sampled
// densely, long ones sparsely.
func SamplingIntervals(duration float64) []float64 {
	switch {
	case duration <= 5:
		return []float64{0.25, 0.5}
	case duration <= 15:
		return []float64{0.5, 1.0}
	case duration <= 45:
		return []float64{1.0, 2.0}
	case duration <= 120:
		return []float64{2.0, 4.0}
	default:
		return []float64{3.0, 6.0}
	}
}

// SampleFrameIndices computes which frame indices to extract. Each interval
// contributes a stride of frames; the union is sorted and truncated to
// maxFrames. The two strides overlap at their common multiples, so dense
// coverage concentrates near the start of the video.
func SampleFrameIndices(info VideoInfo, maxFrames int) []int {
	if maxFrames <= 0 || info.TotalFrames <= 0 {
		return nil
	}

	points := make(map[int]struct{})
	for _, interval := range SamplingIntervals(info.Duration) {
		step := int(interval * info.FPS)
		if step < 1 {
			step = 1
		}
		limit := maxFrames * step
		if limit > info.TotalFrames {
			limit = info.TotalFrames
		}
		for i := 0; i < limit; i += step {
			points[i] = struct{}{}
		}
	}

	indices := make([]int, 0, len(points))
	for i := range points {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	if len(indices) > maxFrames {
		indices = indices[:maxFrames]
	}
	return indices
}
