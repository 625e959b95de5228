package ports

import (
	"context"

	"github.com/centralmgmt/portal/internal/core/domain/search"
)

// SearchService fans a query out across entity stores and returns a merged,
// relevance-ranked result list. An empty types slice means all entity types.
type SearchService interface {
	Search(ctx context.Context, query string, types []string) ([]*search.Result, error)
}
