package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/internal/mock"
	"github.com/dmarrero/jobtrack/models"
)

func TestSearchService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mock.NewMockSearchProvider(ctrl)
	svc := NewSearchService(mockProvider, logger.Nop())
	ctx := context.Background()

	results := []models.SearchResult{
		{Title: "Go Developer", Company: "Initech", Location: "Austin, TX"},
	}
	mockProvider.EXPECT().Search(ctx, "golang", "Texas").Return(results, nil)

	got, err := svc.Search(ctx, "golang", "Texas")

	require.NoError(t, err)
	assert.Equal(t, results, got)
}

func TestSearchService_Search_ProviderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mock.NewMockSearchProvider(ctrl)
	svc := NewSearchService(mockProvider, logger.Nop())
	ctx := context.Background()

	mockProvider.EXPECT().Search(ctx, "golang", "").Return(nil, assert.AnError)

	_, err := svc.Search(ctx, "golang", "")

	require.ErrorIs(t, err, assert.AnError)
}
