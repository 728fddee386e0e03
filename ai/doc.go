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


// Package ai provides abstractions for the model services used by framesift.
//
// This package defines interfaces for the neural models involved in indexing
// and search: the image encoder (visual embeddings plus a text branch), the
// image-to-text captioner, the optional dedicated sentence encoder, and the
// optional mood analyzer. The core pipeline depends only on these
// abstractions, never on a concrete model client.
//
// Optional capabilities follow an explicit presence model: a Provider decides
// at construction time whether the sentence encoder and mood analyzer exist,
// and exposes nil for absent ones. Callers select the fallback path once
// (for example, caption embedding via the image encoder's text branch) rather
// than probing per call.
//
// # Implementation Packages
//
//   - ai/openai: production implementation against OpenAI-compatible APIs
//   - ai/mock: deterministic test doubles
//
// Public constructors in the implementation packages return the interface
// types to enforce abstraction; mock constructors return concrete types so
// tests can inject behavior and assert call counts.
package ai
