package indexer

import (
	"log/slog"
	"runtime"
	"runtime/debug"
)

const (
	// memoryReclaimEvery controls how often a worker returns freed memory
	// to the OS while annotating frames.
	memoryReclaimEvery = 10

	// memoryReportEvery controls how often a worker logs its memory usage.
	memoryReportEvery = 20
)

// logMemory records current heap usage at a pipeline checkpoint.
func logMemory(logger *slog.Logger, checkpoint string) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	logger.Debug("memory checkpoint",
		"checkpoint", checkpoint,
		"heap_alloc_mb", stats.HeapAlloc/(1024*1024),
		"heap_sys_mb", stats.HeapSys/(1024*1024),
		"num_gc", stats.NumGC)
}

// reclaimMemory forces a collection and returns freed pages to the OS.
// Decoded frames are large and short-lived, so waiting for the background
// collector lets resident memory climb during long runs.
func reclaimMemory() {
	debug.FreeOSMemory()
}
