// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Marrero

// Package adapter provides outbound integrations with external services.
//
// The only integration at the moment is the USAJobs search API
// ([NewUSAJobsAdapter]). Any upstream failure is normalised to
// [ErrSearchUnavailable] so callers can use [errors.Is] without inspecting
// transport details.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmarrero/jobtrack/internal/config"
	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/internal/utils"
	"github.com/dmarrero/jobtrack/models"
)

// descriptionLimit caps the summary text carried into a search result.
// Upstream summaries routinely run to several thousand characters.
const descriptionLimit = 350

// USAJobsAdapter queries the USAJobs search API over HTTP.
type USAJobsAdapter struct {
	client *utils.HTTPClient

	host           string
	apiKey         string
	userAgent      string
	resultsPerPage int

	logger *logger.Logger
}

// searchResponse mirrors the envelope of the upstream search payload. Only
// the fields carried into [models.SearchResult] are declared.
type searchResponse struct {
	SearchResult struct {
		SearchResultItems []struct {
			MatchedObjectDescriptor struct {
				PositionTitle           string `json:"PositionTitle"`
				OrganizationName        string `json:"OrganizationName"`
				PositionLocationDisplay string `json:"PositionLocationDisplay"`
				PositionURI             string `json:"PositionURI"`
				UserArea                struct {
					Details struct {
						JobSummary string `json:"JobSummary"`
					} `json:"Details"`
				} `json:"UserArea"`
			} `json:"MatchedObjectDescriptor"`
		} `json:"SearchResultItems"`
	} `json:"SearchResult"`
}

// NewUSAJobsAdapter constructs a search adapter from the given settings.
// The upstream authenticates every call with three headers: Host,
// User-Agent (the email the key was registered with) and Authorization-Key.
func NewUSAJobsAdapter(cfg config.Search, logger *logger.Logger) *USAJobsAdapter {
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &USAJobsAdapter{
		client:         client,
		host:           cfg.Host,
		apiKey:         cfg.APIKey,
		userAgent:      cfg.UserAgent,
		resultsPerPage: cfg.ResultsPerPage,
		logger:         logger,
	}
}

// Search queries the upstream API with a keyword and a location, either of
// which may be empty, and flattens the response envelope into search
// results. Summaries are truncated to a display-friendly length.
//
// Returns ErrSearchUnavailable wrapped with the transport detail on any
// upstream failure.
func (a *USAJobsAdapter) Search(ctx context.Context, what, where string) ([]models.SearchResult, error) {
	log := logger.FromContext(ctx)

	params := map[string]string{
		"ResultsPerPage": fmt.Sprintf("%d", a.resultsPerPage),
	}
	if what != "" {
		params["Keyword"] = what
	}
	if where != "" {
		params["LocationName"] = where
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Host", a.host).
		SetHeader("User-Agent", a.userAgent).
		SetHeader("Authorization-Key", a.apiKey).
		SetQueryParams(params).
		Get("")
	if err != nil {
		log.Err(err).Str("what", what).Str("where", where).Msg("search request failed")
		return nil, fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}
	if resp.IsError() {
		log.Error().
			Int("status", resp.StatusCode()).
			Str("what", what).
			Str("where", where).
			Msg("search request rejected upstream")
		return nil, fmt.Errorf("%w: upstream returned %d", ErrSearchUnavailable, resp.StatusCode())
	}

	var payload searchResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		log.Err(err).Msg("search response could not be decoded")
		return nil, fmt.Errorf("%w: decoding response: %w", ErrSearchUnavailable, err)
	}

	results := make([]models.SearchResult, 0, len(payload.SearchResult.SearchResultItems))
	for _, item := range payload.SearchResult.SearchResultItems {
		descriptor := item.MatchedObjectDescriptor
		results = append(results, models.SearchResult{
			Title:       descriptor.PositionTitle,
			Company:     descriptor.OrganizationName,
			Location:    descriptor.PositionLocationDisplay,
			URL:         descriptor.PositionURI,
			Description: truncate(descriptor.UserArea.Details.JobSummary, descriptionLimit),
		})
	}

	return results, nil
}

// truncate shortens s to at most limit runes with a trailing ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + "..."
}
