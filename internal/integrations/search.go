package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/jobmatch/internal/config"
	"github.com/jonathan/jobmatch/internal/logger"
	"go.uber.org/zap"
)

// Fixed search parameters.
const (
	SearchQuery = "VBA"
	searchTop   = 5
	searchKeep  = 3
)

// SearchFields are the index fields selected, in output order.
var SearchFields = []string{"adc_category_c", "chunk"}

// SearchHit is one search result.
type SearchHit struct {
	Score    float64        `json:"score"`
	Document map[string]any `json:"document"`
}

// SearchResult holds the kept hits and their line-formatted rendering.
type SearchResult struct {
	Results         []SearchHit `json:"results"`
	FormattedOutput []string    `json:"formatted_output"`
}

// SearchClient queries an Azure AI Search index over its REST API.
type SearchClient struct {
	endpoint   string
	apiKey     string
	index      string
	apiVersion string
	httpClient *http.Client
	log        *zap.Logger
}

// NewSearchClient creates a client for the configured index. A nil httpClient uses a client
// with a 30 second timeout.
func NewSearchClient(cfg config.SearchConfig, httpClient *http.Client, log *zap.Logger) (*SearchClient, error) {
	if !cfg.Configured() {
		return nil, &ErrNotConfigured{Integration: NameSearch}
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &SearchClient{
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		index:      cfg.IndexName,
		apiVersion: cfg.APIVersion,
		httpClient: httpClient,
		log:        logger.WithIntegration(log, NameSearch, "", ""),
	}, nil
}

type searchRequest struct {
	Search string `json:"search"`
	Select string `json:"select"`
	Top    int    `json:"top"`
}

type searchResponse struct {
	Value []map[string]any `json:"value"`
}

// Search runs the fixed query and keeps the first three hits.
func (c *SearchClient) Search(ctx context.Context) (*SearchResult, error) {
	body, err := json.Marshal(searchRequest{
		Search: SearchQuery,
		Select: strings.Join(SearchFields, ","),
		Top:    searchTop,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/indexes/%s/docs/search?api-version=%s",
		c.endpoint, url.PathEscape(c.index), url.QueryEscape(c.apiVersion))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	c.log.Debug("searching index", zap.String("index", c.index), zap.String("query", SearchQuery))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("search returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	hits := make([]SearchHit, 0, searchKeep)
	for _, raw := range decoded.Value {
		if len(hits) >= searchKeep {
			break
		}
		hits = append(hits, toHit(raw))
	}

	c.log.Info("search completed", zap.Int("results", len(hits)))

	return &SearchResult{
		Results:         hits,
		FormattedOutput: FormatSearchHits(hits),
	}, nil
}

// toHit splits the "@search.*" annotations from the document fields.
func toHit(raw map[string]any) SearchHit {
	hit := SearchHit{Document: make(map[string]any, len(raw))}
	for k, v := range raw {
		if k == "@search.score" {
			if score, ok := v.(float64); ok {
				hit.Score = score
			}
			continue
		}
		if strings.HasPrefix(k, "@search.") {
			continue
		}
		hit.Document[k] = v
	}
	return hit
}

// FormatSearchHits renders hits as "_____i_____" separators followed by "field: value" lines
// in SearchFields order.
func FormatSearchHits(hits []SearchHit) []string {
	lines := make([]string, 0, len(hits)*(len(SearchFields)+1))
	for i, hit := range hits {
		lines = append(lines, fmt.Sprintf("_____%d_____", i))
		for _, field := range SearchFields {
			v, ok := hit.Document[field]
			if !ok {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s: %v", field, v))
		}
	}
	return lines
}
