package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVideoAggregates(t *testing.T) {
	records := []FrameRecord{
		{Id: 0, VideoPath: "/v/b.mp4", Timestamp: 0, Caption: "a dog", SemanticFeatures: []string{"dog", "animal"}, Mood: "happy"},
		{Id: 1, VideoPath: "/v/b.mp4", Timestamp: 1, Caption: "a dog running", SemanticFeatures: []string{"dog", "running"}, Mood: "happy"},
		{Id: 2, VideoPath: "/v/b.mp4", Timestamp: 2, Caption: "grass", SemanticFeatures: []string{"grass"}, Mood: "neutral"},
		{Id: 3, VideoPath: "/v/a.mp4", Timestamp: 0, Caption: "a red car", SemanticFeatures: []string{"red", "car"}},
	}

	aggregates := BuildVideoAggregates(records)
	require.Len(t, aggregates, 2)

	// Ordered by video path.
	assert.Equal(t, "/v/a.mp4", aggregates[0].VideoPath)
	assert.Equal(t, "/v/b.mp4", aggregates[1].VideoPath)

	a := aggregates[0]
	assert.Equal(t, []string{"a red car"}, a.Captions)
	assert.Empty(t, a.DominantMood)
	assert.Equal(t, []string{"car", "red"}, a.SemanticFeatures)

	b := aggregates[1]
	assert.Len(t, b.Captions, 3)
	assert.Equal(t, "happy", b.DominantMood)
	assert.Equal(t, int64(2), b.MoodCounts["happy"])
	assert.Equal(t, []string{"animal", "dog", "grass", "running"}, b.SemanticFeatures)
}

func TestBuildVideoAggregates_Empty(t *testing.T) {
	assert.Empty(t, BuildVideoAggregates(nil))
}

func TestFrameRecordMUS_RoundTrip(t *testing.T) {
	record := FrameRecord{
		Id:               42,
		VideoPath:        "/v/clip.mp4",
		Timestamp:        13.25,
		Caption:          "a woman dancing | What colors are prominent: red and black",
		SemanticFeatures: []string{"woman", "dancing", "red", "black"},
		Mood:             "happy",
	}

	bs := make([]byte, FrameRecordMUS.Size(record))
	n := FrameRecordMUS.Marshal(record, bs)
	require.Equal(t, len(bs), n)

	decoded, n, err := FrameRecordMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, len(bs), n)
	assert.Equal(t, record, decoded)

	skipped, err := FrameRecordMUS.Skip(bs)
	require.NoError(t, err)
	assert.Equal(t, len(bs), skipped)
}

func TestAnnotationMUS_RoundTrip(t *testing.T) {
	annotation := Annotation{
		Caption:          "a person on a beach",
		SemanticFeatures: []string{"person", "beach", "sand"},
		Visual:           []float32{0.1, -0.2, 0.3},
		Text:             []float32{0.4, 0.5},
	}

	bs := make([]byte, AnnotationMUS.Size(annotation))
	n := AnnotationMUS.Marshal(annotation, bs)
	require.Equal(t, len(bs), n)

	decoded, _, err := AnnotationMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, annotation, decoded)
}

func TestVideoAggregateMUS_RoundTrip(t *testing.T) {
	aggregate := VideoAggregate{
		VideoPath:        "/v/clip.mp4",
		Captions:         []string{"a", "b"},
		MoodCounts:       map[string]int64{"happy": 2, "sad": 1},
		DominantMood:     "happy",
		SemanticFeatures: []string{"beach", "person"},
	}

	bs := make([]byte, VideoAggregateMUS.Size(aggregate))
	n := VideoAggregateMUS.Marshal(aggregate, bs)
	require.Equal(t, len(bs), n)

	decoded, _, err := VideoAggregateMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, aggregate, decoded)
}

func TestVideoAggregateMUS_DeterministicBytes(t *testing.T) {
	first := VideoAggregate{
		VideoPath:  "/v/clip.mp4",
		MoodCounts: map[string]int64{},
	}
	second := VideoAggregate{
		VideoPath:  "/v/clip.mp4",
		MoodCounts: map[string]int64{},
	}
	moods := []string{"happy", "sad", "calm", "tense", "neutral"}
	for i, mood := range moods {
		first.MoodCounts[mood] = int64(i + 1)
	}
	for i := len(moods) - 1; i >= 0; i-- {
		second.MoodCounts[moods[i]] = int64(i + 1)
	}

	a := make([]byte, VideoAggregateMUS.Size(first))
	VideoAggregateMUS.Marshal(first, a)
	b := make([]byte, VideoAggregateMUS.Size(second))
	VideoAggregateMUS.Marshal(second, b)
	assert.Equal(t, a, b)
}

func TestVideoAggregateMUS_TruncatedData(t *testing.T) {
	aggregate := VideoAggregate{VideoPath: "/v/clip.mp4"}
	bs := make([]byte, VideoAggregateMUS.Size(aggregate))
	VideoAggregateMUS.Marshal(aggregate, bs)

	_, _, err := VideoAggregateMUS.Unmarshal(bs[:1])
	assert.Error(t, err)
}
