package service

import "context"

// ProviderQuery is a free-text search over the external provider index.
type ProviderQuery struct {
	Query     string
	City      string
	Tags      []string // Styles for designers, trades for contractors.
	BudgetMin int
	BudgetMax int
	Page      int // Defaults to 1.
	PerPage   int // Defaults to 20.
}

// ProviderHit is one document returned by the search index.
type ProviderHit struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Tags      []string `json:"tags"`
	BudgetMin int      `json:"budget_min"`
	BudgetMax int      `json:"budget_max"`
	Verified  bool     `json:"verified"`
	AvatarURL string   `json:"avatar_url"`
}

// ProviderSearchResult is the paginated outcome of one index query.
type ProviderSearchResult struct {
	Hits    []ProviderHit `json:"hits"`
	Found   int           `json:"found"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

// SearchService delegates provider search to the external index.
// Public-facing lookups always force the verified-only filter.
type SearchService interface {
	// SearchDesigners queries the designer collection.
	SearchDesigners(ctx context.Context, query ProviderQuery) (*ProviderSearchResult, error)

	// SearchContractors queries the contractor collection.
	SearchContractors(ctx context.Context, query ProviderQuery) (*ProviderSearchResult, error)
}

// PushSender delivers best-effort push notifications to user devices.
type PushSender interface {
	// SendToTokens pushes one message to the given FCM tokens. Failures are
	// reported but must never fail the triggering business operation.
	SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) error
}

// ObjectStore persists uploaded files in a blob bucket.
type ObjectStore interface {
	// Put writes the object and returns nothing; keys are caller-chosen.
	Put(ctx context.Context, key, contentType string, data []byte) error

	// URL builds the public URL for a stored key.
	URL(key string) string
}
