// Package search implements provider lookups against a Typesense-compatible
// search index over HTTP.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"rituality/config"
	domainErrors "rituality/internal/domain/errors"
	"rituality/internal/domain/service"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
)

// client talks to the external search index. One collection per provider type.
type client struct {
	baseURL              string
	apiKey               string
	designerCollection   string
	contractorCollection string
	httpClient           *http.Client
}

// Option configures the search client.
type Option func(*client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *client) {
		cl.httpClient = c
	}
}

// New creates a SearchService backed by the configured index.
func New(cfg *config.Config, opts ...Option) service.SearchService {
	var searchCfg config.SearchConfig
	if cfg.Search != nil {
		searchCfg = *cfg.Search
	}

	c := &client{
		baseURL:              strings.TrimRight(searchCfg.BaseURL, "/"),
		apiKey:               searchCfg.APIKey,
		designerCollection:   searchCfg.DesignerCollection,
		contractorCollection: searchCfg.ContractorCollection,
		httpClient:           http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SearchDesigners queries the designer collection.
func (c *client) SearchDesigners(ctx context.Context, query service.ProviderQuery) (*service.ProviderSearchResult, error) {
	return c.search(ctx, c.designerCollection, "styles", query)
}

// SearchContractors queries the contractor collection.
func (c *client) SearchContractors(ctx context.Context, query service.ProviderQuery) (*service.ProviderSearchResult, error) {
	return c.search(ctx, c.contractorCollection, "trades", query)
}

// typesenseResponse is the subset of the index response we consume.
type typesenseResponse struct {
	Found int `json:"found"`
	Page  int `json:"page"`
	Hits  []struct {
		Document service.ProviderHit `json:"document"`
	} `json:"hits"`
}

func (c *client) search(ctx context.Context, collection, tagField string, query service.ProviderQuery) (*service.ProviderSearchResult, error) {
	page := query.Page
	if page < 1 {
		page = defaultPage
	}
	perPage := query.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}

	q := query.Query
	if q == "" {
		q = "*"
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("query_by", "name,city,"+tagField)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("filter_by", c.buildFilter(tagField, query))

	endpoint := fmt.Sprintf("%s/collections/%s/documents/search?%s", c.baseURL, collection, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("X-TYPESENSE-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainErrors.ErrExternalService.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domainErrors.ErrExternalService.WithDetails(fmt.Sprintf("search index status %d", resp.StatusCode))
	}

	var decoded typesenseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, domainErrors.ErrExternalService.WithDetails("malformed search index response")
	}

	hits := make([]service.ProviderHit, 0, len(decoded.Hits))
	for _, hit := range decoded.Hits {
		hits = append(hits, hit.Document)
	}

	return &service.ProviderSearchResult{
		Hits:    hits,
		Found:   decoded.Found,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// buildFilter assembles the filter_by expression. Verified-only is always
// forced; clients cannot opt out of it.
func (c *client) buildFilter(tagField string, query service.ProviderQuery) string {
	filters := []string{"verified:=true"}

	if query.City != "" {
		filters = append(filters, "city:="+quoteFilterValue(query.City))
	}
	if len(query.Tags) > 0 {
		quoted := make([]string, 0, len(query.Tags))
		for _, tag := range query.Tags {
			quoted = append(quoted, quoteFilterValue(tag))
		}
		filters = append(filters, fmt.Sprintf("%s:=[%s]", tagField, strings.Join(quoted, ",")))
	}
	if query.BudgetMin > 0 {
		filters = append(filters, fmt.Sprintf("budget_max:>=%d", query.BudgetMin))
	}
	if query.BudgetMax > 0 {
		filters = append(filters, fmt.Sprintf("budget_min:<=%d", query.BudgetMax))
	}

	return strings.Join(filters, " && ")
}

// quoteFilterValue backtick-quotes a client-supplied value so filter
// operators inside it match literally instead of being parsed. The index
// offers no escape for backticks inside a quoted value, so they are dropped.
func quoteFilterValue(value string) string {
	return "`" + strings.ReplaceAll(value, "`", "") + "`"
}
