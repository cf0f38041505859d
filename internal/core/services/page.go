package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driven"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driving"
)

// Ensure PageService implements the interface.
var _ driving.PageReader = (*PageService)(nil)

// PageService reads single pages live from the source.
type PageService struct {
	fetcher driven.PageFetcher
}

// NewPageService creates a page reader.
func NewPageService(fetcher driven.PageFetcher) *PageService {
	return &PageService{fetcher: fetcher}
}

// Read fetches one page and returns its rendered form.
func (s *PageService) Read(ctx context.Context, id string) (*domain.Page, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: page id is empty", domain.ErrInvalidInput)
	}

	page, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch page %s: %w", id, err)
	}
	return page, nil
}
