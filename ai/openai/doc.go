// Package openai implements the ai interfaces against OpenAI-compatible
// services (Ollama, LocalAI, vLLM, infinity and similar local servers).
//
// Captioning and mood analysis use vision chat completions; text embeddings
// use the embeddings API. Image embeddings are posted to the embeddings
// endpoint with a base64 data URI, the convention used by CLIP-serving
// OpenAI-compatible servers.
package openai
