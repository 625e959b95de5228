package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/centralmgmt/portal/internal/core/domain/search"
	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// SearchService fans read queries out to the domain stores, scores matches
// against weighted fields and merges the results into one ranked list. Each
// entity type contributes at most the first searchWorkingSetSize records.
type SearchService struct {
	inventorySvc ports.InventoryService
	orderSvc     ports.OrderService
	weights      search.Weights
	logger       *logrus.Logger
}

func NewSearchService(inventorySvc ports.InventoryService, orderSvc ports.OrderService, weights search.Weights, logger *logrus.Logger) ports.SearchService {
	return &SearchService{inventorySvc: inventorySvc, orderSvc: orderSvc, weights: weights, logger: logger}
}

func (s *SearchService) Search(ctx context.Context, query string, types []string) ([]*search.Result, error) {
	lowerQuery := strings.ToLower(query)
	results := make([]*search.Result, 0)

	if wantType(types, search.TypeInventory) {
		hits, err := s.searchInventory(ctx, lowerQuery)
		if err != nil {
			return nil, err
		}
		results = append(results, hits...)
	}

	if wantType(types, search.TypeOrder) {
		hits, err := s.searchOrders(ctx, lowerQuery)
		if err != nil {
			return nil, err
		}
		results = append(results, hits...)
	}

	// Ties keep scan order; only relevance ranks.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"query": query, "results": len(results)}).Debug("search completed")
	}
	return results, nil
}

func (s *SearchService) searchInventory(ctx context.Context, lowerQuery string) ([]*search.Result, error) {
	items, _, err := s.inventorySvc.ListItems(ctx, 1, searchWorkingSetSize, "")
	if err != nil {
		return nil, err
	}

	hits := make([]*search.Result, 0)
	for _, item := range items {
		relevance := 0.0
		if strings.Contains(strings.ToLower(item.Name), lowerQuery) {
			relevance += s.weights.InventoryName
		}
		if strings.Contains(strings.ToLower(item.SKU), lowerQuery) {
			relevance += s.weights.InventorySKU
		}
		if strings.Contains(strings.ToLower(item.Category), lowerQuery) {
			relevance += s.weights.InventoryCategory
		}
		if relevance == 0 {
			continue
		}

		hits = append(hits, &search.Result{
			ID:          item.ID,
			Type:        search.TypeInventory,
			Title:       item.Name,
			Description: fmt.Sprintf("%s • %d %s in stock", item.Location, item.Quantity, item.Unit),
			Link:        "/inventory/" + item.ID.String(),
			Relevance:   relevance,
		})
	}
	return hits, nil
}

func (s *SearchService) searchOrders(ctx context.Context, lowerQuery string) ([]*search.Result, error) {
	orders, _, err := s.orderSvc.ListOrders(ctx, 1, searchWorkingSetSize, "")
	if err != nil {
		return nil, err
	}

	hits := make([]*search.Result, 0)
	for _, o := range orders {
		relevance := 0.0
		if strings.Contains(strings.ToLower(o.OrderNumber), lowerQuery) {
			relevance += s.weights.OrderNumber
		}
		if o.Vendor != "" && strings.Contains(strings.ToLower(o.Vendor), lowerQuery) {
			relevance += s.weights.OrderVendor
		}
		for _, li := range o.Items {
			if strings.Contains(strings.ToLower(li.Name), lowerQuery) {
				relevance += s.weights.OrderItemName
				break
			}
		}
		if relevance == 0 {
			continue
		}

		hits = append(hits, &search.Result{
			ID:          o.ID,
			Type:        search.TypeOrder,
			Title:       o.OrderNumber,
			Description: fmt.Sprintf("%s • $%.2f", o.Status, o.TotalAmount),
			Link:        "/orders/" + o.ID.String(),
			Relevance:   relevance,
		})
	}
	return hits, nil
}

func wantType(types []string, t search.ResultType) bool {
	if len(types) == 0 {
		return true
	}
	for _, v := range types {
		if v == string(t) {
			return true
		}
	}
	return false
}
