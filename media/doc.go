// Package media probes video files and samples frames from them as JPEG
// images. It shells out to ffprobe and ffmpeg, which must be on PATH (or
// configured explicitly), rather than linking a decoder.
//
// Sampling is adaptive: shorter videos are sampled densely, longer ones
// sparsely, with a hard cap on frames per video. The sampling plan itself
// is computed by pure functions so it can be tested without media files.
package media
