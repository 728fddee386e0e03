package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFrameRecord(t *testing.T) {
	valid := FrameRecord{
		Id:        1,
		VideoPath: "/videos/clips/dance.mp4",
		Timestamp: 2.5,
		Caption:   "a person dancing in a red dress",
	}

	t.Run("valid record", func(t *testing.T) {
		record := valid
		require.NoError(t, ValidateFrameRecord(&record))
	})

	t.Run("nil record", func(t *testing.T) {
		err := ValidateFrameRecord(nil)
		assert.ErrorIs(t, err, ErrInvalidFrameRecord)
	})

	t.Run("empty video path", func(t *testing.T) {
		record := valid
		record.VideoPath = ""
		err := ValidateFrameRecord(&record)
		assert.ErrorIs(t, err, ErrEmptyVideoPath)
	})

	t.Run("relative video path", func(t *testing.T) {
		record := valid
		record.VideoPath = "clips/dance.mp4"
		err := ValidateFrameRecord(&record)
		assert.ErrorIs(t, err, ErrRelativeVideoPath)
	})

	t.Run("negative timestamp", func(t *testing.T) {
		record := valid
		record.Timestamp = -0.1
		err := ValidateFrameRecord(&record)
		assert.ErrorIs(t, err, ErrNegativeTimestamp)
	})

	t.Run("empty caption", func(t *testing.T) {
		record := valid
		record.Caption = ""
		err := ValidateFrameRecord(&record)
		assert.ErrorIs(t, err, ErrEmptyCaption)
	})

	t.Run("empty features and mood are valid", func(t *testing.T) {
		record := valid
		record.SemanticFeatures = nil
		record.Mood = ""
		require.NoError(t, ValidateFrameRecord(&record))
	})
}

func TestValidateWeights(t *testing.T) {
	t.Run("default weights", func(t *testing.T) {
		require.NoError(t, ValidateWeights(DefaultWeights()))
	})

	t.Run("single modality", func(t *testing.T) {
		require.NoError(t, ValidateWeights(Weights{Visual: 1}))
	})

	t.Run("negative weight", func(t *testing.T) {
		err := ValidateWeights(Weights{Visual: -0.1, Text: 0.5, Lexical: 0.6})
		assert.ErrorIs(t, err, ErrInvalidWeights)
	})

	t.Run("all zero", func(t *testing.T) {
		err := ValidateWeights(Weights{})
		assert.ErrorIs(t, err, ErrInvalidWeights)
	})
}
