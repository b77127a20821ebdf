// Package tui provides an interactive terminal user interface for cinematch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Recommend ranks the corpus against a picked title.
	Recommend driving.RecommendService

	// Corpus exposes the loaded movie corpus for title suggestions.
	Corpus driving.CorpusService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(recommend driving.RecommendService, corpus driving.CorpusService) *Ports {
	return &Ports{
		Recommend: recommend,
		Corpus:    corpus,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Recommend == nil {
		return ErrMissingRecommendService
	}
	if p.Corpus == nil {
		return ErrMissingCorpusService
	}
	return nil
}
