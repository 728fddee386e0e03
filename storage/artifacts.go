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

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/poiesic/framesift/index"
	"github.com/poiesic/framesift/lexical"
)

// Artifact file names within an index directory.
const (
	VisualIndexFile  = "visual_index.bin"
	TextIndexFile    = "text_index.bin"
	LexicalIndexFile = "lexical_index.bin"
	MetadataFile     = "metadata.bin"
)

// ArtifactSet locates the four index artifacts inside one directory.
type ArtifactSet struct {
	Dir string
}

// NewArtifactSet creates an ArtifactSet rooted at dir.
func NewArtifactSet(dir string) ArtifactSet {
	return ArtifactSet{Dir: dir}
}

func (s ArtifactSet) VisualIndexPath() string {
	return filepath.Join(s.Dir, VisualIndexFile)
}

func (s ArtifactSet) TextIndexPath() string {
	return filepath.Join(s.Dir, TextIndexFile)
}

func (s ArtifactSet) LexicalIndexPath() string {
	return filepath.Join(s.Dir, LexicalIndexFile)
}

func (s ArtifactSet) MetadataPath() string {
	return filepath.Join(s.Dir, MetadataFile)
}

func (s ArtifactSet) paths() []string {
	return []string{
		s.VisualIndexPath(),
		s.TextIndexPath(),
		s.LexicalIndexPath(),
		s.MetadataPath(),
	}
}

// Exists reports whether all four artifacts are present. A partial set
// counts as absent.
func (s ArtifactSet) Exists() bool {
	for _, path := range s.paths() {
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}

// Artifacts is a fully loaded index: both vector indices, the lexical
// index and the metadata store. Rows are aligned across all four.
type Artifacts struct {
	VisualIndex index.Index
	TextIndex   index.Index
	Lexical     *lexical.Index
	Metadata    *Metadata
}

// Save writes all four artifacts atomically: every artifact is written to
// a temporary file in the same directory, and the live files are replaced
// only after all writes succeed. A failed run never leaves a half-written
// set behind.
func Save(set ArtifactSet, artifacts *Artifacts) error {
	if err := os.MkdirAll(set.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create index directory %s: %w", set.Dir, err)
	}

	var visualBuf, textBuf bytes.Buffer
	if err := index.WriteIndex(&visualBuf, artifacts.VisualIndex); err != nil {
		return fmt.Errorf("failed to serialize visual index: %w", err)
	}
	if err := index.WriteIndex(&textBuf, artifacts.TextIndex); err != nil {
		return fmt.Errorf("failed to serialize text index: %w", err)
	}

	payloads := map[string][]byte{
		set.VisualIndexPath():  visualBuf.Bytes(),
		set.TextIndexPath():    textBuf.Bytes(),
		set.LexicalIndexPath(): artifacts.Lexical.Marshal(),
		set.MetadataPath():     MarshalMetadata(artifacts.Metadata),
	}

	var tmpPaths []string
	cleanup := func() {
		for _, tmp := range tmpPaths {
			os.Remove(tmp)
		}
	}

	for path, payload := range payloads {
		tmp := path + ".tmp"
		if err := writeArtifact(tmp, payload); err != nil {
			cleanup()
			return err
		}
		tmpPaths = append(tmpPaths, tmp)
	}

	for path := range payloads {
		if err := os.Rename(path+".tmp", path); err != nil {
			cleanup()
			return fmt.Errorf("failed to replace artifact %s: %w", path, err)
		}
	}

	slog.Default().With("component", "artifact_store").Info("index artifacts written",
		"directory", set.Dir,
		"frames", len(artifacts.Metadata.Frames),
		"next_id", artifacts.Metadata.NextID)
	return nil
}

// Load reads all four artifacts. Missing files yield ErrIndexNotFound.
func Load(set ArtifactSet) (*Artifacts, error) {
	if !set.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, set.Dir)
	}

	visualPayload, err := readArtifact(set.VisualIndexPath())
	if err != nil {
		return nil, err
	}
	visualIndex, err := index.ReadIndex(bytes.NewReader(visualPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to load visual index: %w", err)
	}

	textPayload, err := readArtifact(set.TextIndexPath())
	if err != nil {
		return nil, err
	}
	textIndex, err := index.ReadIndex(bytes.NewReader(textPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to load text index: %w", err)
	}

	lexicalPayload, err := readArtifact(set.LexicalIndexPath())
	if err != nil {
		return nil, err
	}
	lexicalIndex, err := lexical.UnmarshalIndex(lexicalPayload)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexical index: %w", err)
	}

	metadataPayload, err := readArtifact(set.MetadataPath())
	if err != nil {
		return nil, err
	}
	metadata, err := UnmarshalMetadata(metadataPayload)
	if err != nil {
		return nil, fmt.Errorf("failed to load metadata: %w", err)
	}

	return &Artifacts{
		VisualIndex: visualIndex,
		TextIndex:   textIndex,
		Lexical:     lexicalIndex,
		Metadata:    metadata,
	}, nil
}
