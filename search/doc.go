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


// Package search implements multi-modal video search over a built index.
//
// The Searcher type runs a multi-stage query pipeline that combines:
//   - Visual similarity via the image-encoder embedding space
//   - Caption similarity via the sentence embedding space
//   - Lexical similarity via the TF-IDF index
//
// Queries are expanded with synonyms before embedding, per-frame scores
// are fused across modalities with a consistency bonus, and frames are
// aggregated into per-video results with a temporal clustering bonus so
// that videos with sustained or recurring matches rank above videos with
// a single lucky frame.
package search
