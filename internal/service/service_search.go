package service

import (
	"context"
	"fmt"

	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/models"
)

// searchService is the concrete implementation of SearchService. It is a
// thin orchestration layer over the upstream search provider; result shaping
// (field extraction, description truncation) lives in the adapter.
type searchService struct {
	provider SearchProvider
	logger   *logger.Logger
}

// NewSearchService constructs a SearchService backed by the given provider.
func NewSearchService(provider SearchProvider, logger *logger.Logger) SearchService {
	return &searchService{
		provider: provider,
		logger:   logger,
	}
}

// Search queries the upstream API with a keyword and a location, either of
// which may be empty. Provider failures are passed through wrapped so the
// handler layer can map them to an upstream-failure response.
func (s *searchService) Search(ctx context.Context, what, where string) ([]models.SearchResult, error) {
	log := logger.FromContext(ctx)

	results, err := s.provider.Search(ctx, what, where)
	if err != nil {
		log.Err(err).Str("what", what).Str("where", where).Msg("upstream job search failed")
		return nil, fmt.Errorf("upstream job search failed: %w", err)
	}

	return results, nil
}
