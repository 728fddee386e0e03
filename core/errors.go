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

import "errors"

// Domain validation errors
var (
	// ErrInvalidFrameRecord indicates a FrameRecord failed validation.
	ErrInvalidFrameRecord = errors.New("invalid frame record")

	// ErrEmptyVideoPath indicates the VideoPath field is empty.
	ErrEmptyVideoPath = errors.New("video path cannot be empty")

	// ErrRelativeVideoPath indicates the VideoPath field is not absolute.
	ErrRelativeVideoPath = errors.New("video path must be absolute")

	// ErrNegativeTimestamp indicates a timestamp before the start of the video.
	ErrNegativeTimestamp = errors.New("timestamp cannot be negative")

	// ErrEmptyCaption indicates the Caption field is empty.
	// Captions always fall back to a placeholder, so an empty caption means
	// the annotator contract was violated.
	ErrEmptyCaption = errors.New("caption cannot be empty")

	// ErrInvalidWeights indicates fusion weights failed validation.
	ErrInvalidWeights = errors.New("invalid fusion weights")

	// ErrDimensionMismatch indicates an embedding does not match the
	// dimension established by earlier embeddings in the same run.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
