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


package indexer

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// videoExtensions lists the recognized video container extensions.
var videoExtensions = map[string]struct{}{
	".mp4": {}, ".mov": {}, ".mkv": {}, ".avi": {}, ".webm": {},
	".wmv": {}, ".flv": {}, ".m4v": {}, ".3gp": {}, ".ogv": {},
}

// rawDirName marks directories holding unprocessed source footage. Any
// path with a segment of this name (case-insensitive) is excluded from
// indexing but reported, so exclusions stay visible.
const rawDirName = "raw"

// ScanResult is the outcome of a recursive video scan.
type ScanResult struct {
	// Videos holds absolute, deduplicated paths sorted lexically.
	Videos []string

	// RawDirs lists the excluded raw directories, relative to the root.
	RawDirs []string

	// SkippedRaw counts videos found inside raw directories.
	SkippedRaw int
}

// ScanVideos recursively finds video files under root. Directories named
// "raw" (any casing) are excluded from the result but counted.
func ScanVideos(root string) (ScanResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return ScanResult{}, err
	}

	seen := make(map[string]struct{})
	rawDirs := make(map[string]struct{})
	var result ScanResult

	err = filepath.WalkDir(absRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		inRaw := underRawDir(absRoot, path)
		if entry.IsDir() {
			if strings.EqualFold(entry.Name(), rawDirName) {
				rel, relErr := filepath.Rel(absRoot, path)
				if relErr == nil {
					rawDirs[rel] = struct{}{}
				}
			}
			return nil
		}

		if !IsVideoFile(path) {
			return nil
		}
		if inRaw {
			result.SkippedRaw++
			return nil
		}
		if _, dup := seen[path]; !dup {
			seen[path] = struct{}{}
			result.Videos = append(result.Videos, path)
		}
		return nil
	})
	if err != nil {
		return ScanResult{}, err
	}

	sort.Strings(result.Videos)
	for dir := range rawDirs {
		result.RawDirs = append(result.RawDirs, dir)
	}
	sort.Strings(result.RawDirs)
	return result, nil
}

// IsVideoFile reports whether the path has a recognized video extension.
func IsVideoFile(path string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// underRawDir reports whether any path segment below root is a raw
// directory.
func underRawDir(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if strings.EqualFold(part, rawDirName) {
			return true
		}
	}
	return false
}

// DirectoryCount pairs a subdirectory with the number of videos inside it.
type DirectoryCount struct {
	Dir   string
	Count int
}

// DirectoryStats groups video paths by their directory relative to root,
// sorted by directory name. Videos directly inside root are reported under
// ".".
func DirectoryStats(videos []string, root string) []DirectoryCount {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil
	}

	counts := make(map[string]int)
	for _, video := range videos {
		rel, err := filepath.Rel(absRoot, filepath.Dir(video))
		if err != nil {
			rel = filepath.Dir(video)
		}
		counts[rel]++
	}

	stats := make([]DirectoryCount, 0, len(counts))
	for dir, count := range counts {
		stats = append(stats, DirectoryCount{Dir: dir, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Dir < stats[j].Dir })
	return stats
}

// TreeStats returns the deepest video nesting level relative to root and the
// combined size of the given videos. Unreadable files count as depth only.
func TreeStats(videos []string, root string) (maxDepth int, totalBytes int64) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return 0, 0
	}

	for _, video := range videos {
		rel, err := filepath.Rel(absRoot, video)
		if err != nil {
			continue
		}
		depth := strings.Count(rel, string(filepath.Separator))
		if depth > maxDepth {
			maxDepth = depth
		}
		if info, err := os.Stat(video); err == nil {
			totalBytes += info.Size()
		}
	}
	return maxDepth, totalBytes
}
