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


package core

import (
	"fmt"
	"path/filepath"
)

// ValidateFrameRecord validates a FrameRecord according to domain rules.
//
// Validation rules:
//   - VideoPath must be a non-empty absolute path
//   - Timestamp must not be negative
//   - Caption must not be empty (the annotator guarantees a placeholder)
//
// NOT validated (assigned by the index builder):
//   - ID (0 is a valid first ID)
//   - SemanticFeatures and Mood (both may legitimately be empty)
func ValidateFrameRecord(record *FrameRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidFrameRecord)
	}

	if record.VideoPath == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFrameRecord, ErrEmptyVideoPath)
	}

	if !filepath.IsAbs(record.VideoPath) {
		return fmt.Errorf("%w: %w: %s", ErrInvalidFrameRecord, ErrRelativeVideoPath, record.VideoPath)
	}

	if record.Timestamp < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidFrameRecord, ErrNegativeTimestamp)
	}

	if record.Caption == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFrameRecord, ErrEmptyCaption)
	}

	return nil
}

// ValidateWeights validates fusion weights.
// All weights must be non-negative and at least one must be positive.
func ValidateWeights(w Weights) error {
	if w.Visual < 0 || w.Text < 0 || w.Lexical < 0 {
		return fmt.Errorf("%w: weights must be non-negative", ErrInvalidWeights)
	}
	if w.Visual+w.Text+w.Lexical <= 0 {
		return fmt.Errorf("%w: at least one weight must be positive", ErrInvalidWeights)
	}
	return nil
}
