package search

import (
	"log/slog"

	"github.com/poiesic/framesift/core"
	"github.com/poiesic/framesift/index"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterQueryExpansion(expanded string)
	AfterVisualSearch(matches []index.Match)
	AfterTextSearch(matches []index.Match)
	AfterLexicalSearch(candidates int)
	AfterFusion(frameScores map[core.ID]float64)
	Finish(results []core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                    {}
func (n *noopMonitor) AfterQueryExpansion(_ string)      {}
func (n *noopMonitor) AfterVisualSearch(_ []index.Match) {}
func (n *noopMonitor) AfterTextSearch(_ []index.Match)   {}
func (n *noopMonitor) AfterLexicalSearch(_ int)          {}
func (n *noopMonitor) AfterFusion(_ map[core.ID]float64) {}
func (n *noopMonitor) Finish(_ []core.SearchResult)      {}

// NewLoggingMonitor returns a monitor that logs every search stage at
// debug level.
func NewLoggingMonitor(logger *slog.Logger) SearchMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingMonitor{logger: logger}
}

type loggingMonitor struct {
	logger *slog.Logger
}

func (m *loggingMonitor) Start(query string) {
	m.logger.Debug("search started", "query", query)
}

func (m *loggingMonitor) AfterQueryExpansion(expanded string) {
	m.logger.Debug("query expanded", "expanded", expanded)
}

func (m *loggingMonitor) AfterVisualSearch(matches []index.Match) {
	m.logger.Debug("visual search", "matches", len(matches))
}

func (m *loggingMonitor) AfterTextSearch(matches []index.Match) {
	m.logger.Debug("text search", "matches", len(matches))
}

func (m *loggingMonitor) AfterLexicalSearch(candidates int) {
	m.logger.Debug("lexical search merged", "candidates", candidates)
}

func (m *loggingMonitor) AfterFusion(frameScores map[core.ID]float64) {
	m.logger.Debug("fusion complete", "frames", len(frameScores))
}

func (m *loggingMonitor) Finish(results []core.SearchResult) {
	m.logger.Debug("search finished", "videos", len(results))
}
