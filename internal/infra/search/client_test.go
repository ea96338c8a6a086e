package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"rituality/config"
	domainErrors "rituality/internal/domain/errors"
	"rituality/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSearchConfig(baseURL string) *config.Config {
	return &config.Config{
		Search: &config.SearchConfig{
			BaseURL:              baseURL,
			APIKey:               "test-key",
			DesignerCollection:   "designers",
			ContractorCollection: "contractors",
		},
	}
}

func TestClient_VerifiedFilterAlwaysForced(t *testing.T) {
	var gotFilter, gotKey, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("filter_by")
		gotKey = r.Header.Get("X-TYPESENSE-API-KEY")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"found": 0, "page": 1, "hits": []}`))
	}))
	defer server.Close()

	svc := New(testSearchConfig(server.URL))

	_, err := svc.SearchDesigners(context.Background(), service.ProviderQuery{Query: "scandi"})
	require.NoError(t, err)

	assert.Equal(t, "verified:=true", gotFilter)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "/collections/designers/documents/search", gotPath)
}

func TestClient_PaginationDefaults(t *testing.T) {
	var gotPage, gotPerPage string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		gotPerPage = r.URL.Query().Get("per_page")
		_, _ = w.Write([]byte(`{"found": 0, "page": 1, "hits": []}`))
	}))
	defer server.Close()

	svc := New(testSearchConfig(server.URL))

	result, err := svc.SearchContractors(context.Background(), service.ProviderQuery{})
	require.NoError(t, err)

	assert.Equal(t, "1", gotPage)
	assert.Equal(t, "20", gotPerPage)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.PerPage)
}

func TestClient_QueryFilters(t *testing.T) {
	var gotFilter string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("filter_by")
		_, _ = w.Write([]byte(`{"found": 0, "page": 1, "hits": []}`))
	}))
	defer server.Close()

	svc := New(testSearchConfig(server.URL))

	_, err := svc.SearchDesigners(context.Background(), service.ProviderQuery{
		City:      "Oslo",
		Tags:      []string{"scandinavian", "minimalist"},
		BudgetMin: 1000,
		BudgetMax: 5000,
	})
	require.NoError(t, err)

	assert.Contains(t, gotFilter, "city:=`Oslo`")
	assert.Contains(t, gotFilter, "styles:=[`scandinavian`,`minimalist`]")
	assert.Contains(t, gotFilter, "budget_max:>=1000")
	assert.Contains(t, gotFilter, "budget_min:<=5000")
}

func TestClient_FilterOperatorsInValuesMatchLiterally(t *testing.T) {
	var gotFilter string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("filter_by")
		_, _ = w.Write([]byte(`{"found": 0, "page": 1, "hits": []}`))
	}))
	defer server.Close()

	svc := New(testSearchConfig(server.URL))

	// Operators in client values must stay inside the quoted literal; the
	// disjunct here would otherwise widen the result past verified rows.
	_, err := svc.SearchDesigners(context.Background(), service.ProviderQuery{
		City: "Berlin || verified:=false",
		Tags: []string{"scandi && verified:=false"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"verified:=true && city:=`Berlin || verified:=false` && styles:=[`scandi && verified:=false`]",
		gotFilter)
}

func TestClient_BackticksStrippedFromFilterValues(t *testing.T) {
	var gotFilter string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("filter_by")
		_, _ = w.Write([]byte(`{"found": 0, "page": 1, "hits": []}`))
	}))
	defer server.Close()

	svc := New(testSearchConfig(server.URL))

	_, err := svc.SearchContractors(context.Background(), service.ProviderQuery{
		City: "Oslo` || verified:=false || city:=`",
	})
	require.NoError(t, err)

	assert.Equal(t, "verified:=true && city:=`Oslo || verified:=false || city:=`", gotFilter)
}

func TestClient_ParsesHits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"found": 1,
			"page": 1,
			"hits": [
				{"document": {"id": "abc", "name": "Studio North", "city": "Oslo", "tags": ["scandinavian"], "verified": true}}
			]
		}`))
	}))
	defer server.Close()

	svc := New(testSearchConfig(server.URL))

	result, err := svc.SearchDesigners(context.Background(), service.ProviderQuery{Query: "north"})
	require.NoError(t, err)

	require.Len(t, result.Hits, 1)
	assert.Equal(t, "Studio North", result.Hits[0].Name)
	assert.True(t, result.Hits[0].Verified)
	assert.Equal(t, 1, result.Found)
}

func TestClient_IndexFailureMapsToExternalServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := New(testSearchConfig(server.URL))

	_, err := svc.SearchDesigners(context.Background(), service.ProviderQuery{Query: "x"})
	require.Error(t, err)

	var appErr domainErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EXTERNAL_SERVICE_ERROR", appErr.ErrorCode())
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
}
