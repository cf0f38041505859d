package services

import (
	"context"
	"fmt"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driven"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driving"
)

// Ensure GraphService implements the interface.
var _ driving.GraphReader = (*GraphService)(nil)

// GraphService reads the persisted corpus graph. Every call loads the
// latest saved state, so a concurrent watch loop's updates become
// visible as soon as they are flushed.
type GraphService struct {
	stateStore driven.IndexStateStore
	rootID     string
}

// NewGraphService creates a graph reader. rootID identifies the
// workspace root for summaries and may be empty.
func NewGraphService(stateStore driven.IndexStateStore, rootID string) *GraphService {
	return &GraphService{stateStore: stateStore, rootID: rootID}
}

// Summary returns corpus-wide statistics and the root's direct children.
func (s *GraphService) Summary(ctx context.Context) (*domain.GraphSummary, error) {
	graph, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.GraphSummary{
		TotalPages:       graph.NodeCount(),
		TotalConnections: graph.EdgeCount(),
	}
	if s.rootID != "" && graph.HasNode(s.rootID) {
		summary.RootID = s.rootID
		summary.RootTitle = graph.Title(s.rootID)
		summary.RootChildren = graph.Children(s.rootID)
	}
	return summary, nil
}

// Children returns the direct children of a page recorded in the graph.
func (s *GraphService) Children(ctx context.Context, id string) ([]domain.PageRef, error) {
	graph, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if !graph.HasNode(id) {
		return nil, fmt.Errorf("%w: page %s is not in the graph", domain.ErrNotFound, id)
	}
	return graph.Children(id), nil
}

func (s *GraphService) load(ctx context.Context) (*domain.Graph, error) {
	state, err := s.stateStore.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load index state: %w", err)
	}
	return state.Graph, nil
}
