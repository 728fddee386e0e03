package core

import "sort"

// BuildVideoAggregates derives per-video summaries from frame records.
// Results are ordered by video path so the output is deterministic.
func BuildVideoAggregates(records []FrameRecord) []VideoAggregate {
	byVideo := make(map[string]*VideoAggregate)
	featureSets := make(map[string]map[string]struct{})

	for i := range records {
		r := &records[i]
		agg, ok := byVideo[r.VideoPath]
		if !ok {
			agg = &VideoAggregate{VideoPath: r.VideoPath}
			byVideo[r.VideoPath] = agg
			featureSets[r.VideoPath] = make(map[string]struct{})
		}

		agg.Captions = append(agg.Captions, r.Caption)
		if r.Mood != "" {
			if agg.MoodCounts == nil {
				agg.MoodCounts = make(map[string]int64)
			}
			agg.MoodCounts[r.Mood]++
		}
		for _, f := range r.SemanticFeatures {
			featureSets[r.VideoPath][f] = struct{}{}
		}
	}

	aggregates := make([]VideoAggregate, 0, len(byVideo))
	for path, agg := range byVideo {
		agg.DominantMood = dominantMood(agg.MoodCounts)
		features := make([]string, 0, len(featureSets[path]))
		for f := range featureSets[path] {
			features = append(features, f)
		}
		sort.Strings(features)
		agg.SemanticFeatures = features
		aggregates = append(aggregates, *agg)
	}

	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].VideoPath < aggregates[j].VideoPath
	})
	return aggregates
}

// dominantMood returns the most frequent mood, breaking ties by name so the
// result does not depend on map iteration order.
func dominantMood(counts map[string]int64) string {
	best := ""
	var bestCount int64
	for _, mood := range sortedMoods(counts) {
		if counts[mood] > bestCount {
			best = mood
			bestCount = counts[mood]
		}
	}
	return best
}

func sortedMoods(counts map[string]int64) []string {
	moods := make([]string, 0, len(counts))
	for mood := range counts {
		moods = append(moods, mood)
	}
	sort.Strings(moods)
	return moods
}
