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


package storage

import "errors"

var (
	// ErrIndexNotFound indicates that one or more index artifacts are
	// missing. At query time this is a configuration error, distinct
	// from an empty result set.
	ErrIndexNotFound = errors.New("index artifacts not found")

	// ErrInvalidArtifact indicates an artifact with a bad magic number.
	ErrInvalidArtifact = errors.New("invalid artifact file")

	// ErrUnsupportedVersion indicates an artifact written by an
	// incompatible format version.
	ErrUnsupportedVersion = errors.New("unsupported artifact version")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")
)
