package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/vendaflow/pos-api/internal/config"
	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/repository"
	"github.com/vendaflow/pos-api/internal/utils"
)

// Receivables are indexed per tenant and per month of due date, so that
// old months can be dropped wholesale after archival.

type searchRepository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewSearchRepository(client *opensearch.Client, config *config.OpenSearchConfig) repository.SearchRepository {
	return &searchRepository{
		client: client,
		config: config,
	}
}

func (r *searchRepository) indexTime(receivable *domain.Receivable) time.Time {
	if !receivable.DueDate.IsZero() {
		return receivable.DueDate
	}
	return time.Now()
}

func (r *searchRepository) Index(ctx context.Context, receivable *domain.Receivable) error {
	t := r.indexTime(receivable)
	indexName := r.config.GetIndexName(receivable.TenantID, t)

	if err := r.CreateIndex(ctx, receivable.TenantID, t); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(receivable)
	if err != nil {
		return fmt.Errorf("failed to marshal receivable: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      indexName,
		DocumentID: receivable.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *searchRepository) BulkIndex(ctx context.Context, receivables []domain.Receivable) error {
	if len(receivables) == 0 {
		return nil
	}

	// Group receivables by tenant and due month
	groups := make(map[string][]domain.Receivable)
	for _, receivable := range receivables {
		indexName := r.config.GetIndexName(receivable.TenantID, r.indexTime(&receivable))
		groups[indexName] = append(groups[indexName], receivable)
	}

	for indexName, group := range groups {
		if err := r.bulkIndexGroup(ctx, indexName, group); err != nil {
			return fmt.Errorf("failed to bulk index group for index %s: %w", indexName, err)
		}
	}

	return nil
}

func (r *searchRepository) bulkIndexGroup(ctx context.Context, indexName string, receivables []domain.Receivable) error {
	if len(receivables) > 0 {
		first := receivables[0]
		if err := r.CreateIndex(ctx, first.TenantID, r.indexTime(&first)); err != nil {
			return fmt.Errorf("failed to ensure index exists: %w", err)
		}
	}

	var bulkBody strings.Builder
	for _, receivable := range receivables {
		action := map[string]any{
			"index": map[string]any{
				"_index": indexName,
				"_id":    receivable.ID,
			},
		}
		actionLine, err := json.Marshal(action)
		if err != nil {
			return fmt.Errorf("failed to marshal action: %w", err)
		}
		bulkBody.Write(actionLine)
		bulkBody.WriteString("\n")

		docLine, err := json.Marshal(receivable)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		bulkBody.Write(docLine)
		bulkBody.WriteString("\n")
	}

	req := opensearchapi.BulkRequest{
		Body: strings.NewReader(bulkBody.String()),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to execute bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk request failed: %s", res.String())
	}

	return nil
}

func (r *searchRepository) Search(ctx context.Context, filter *domain.ReceivableFilter) ([]domain.Receivable, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant ID from context: %w", err)
	}

	query := r.buildSearchQuery(filter)

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexPattern(tenantID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return []domain.Receivable{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.Receivable `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var receivables []domain.Receivable
	for _, hit := range searchResult.Hits.Hits {
		receivables = append(receivables, hit.Source)
	}

	return receivables, nil
}

// buildSearchQuery constructs the OpenSearch query based on the filter
func (r *searchRepository) buildSearchQuery(filter *domain.ReceivableFilter) map[string]any {
	must := make([]map[string]any, 0)

	// Full-text fields
	textMatches := map[string]string{
		"customer_name": filter.CustomerName,
		"description":   filter.Description,
	}
	for field, value := range textMatches {
		if value != "" {
			must = append(must, createMatchQuery(field, value))
		}
	}

	// Paid is a tri-state filter: nil means both paid and open
	if filter.Paid != nil {
		must = append(must, map[string]any{
			"term": map[string]any{
				"paid": *filter.Paid,
			},
		})
	}

	if !filter.DueStart.IsZero() || !filter.DueEnd.IsZero() {
		must = append(must, createDueRangeQuery(filter.DueStart, filter.DueEnd))
	}

	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query["from"] = (filter.Page - 1) * filter.PageSize
		query["size"] = filter.PageSize
	}

	// Soonest due first
	query["sort"] = []map[string]any{
		{
			"due_date": map[string]any{
				"order": "asc",
			},
		},
	}

	return query
}

func createMatchQuery(field, value string) map[string]any {
	return map[string]any{
		"match": map[string]any{
			field: value,
		},
	}
}

func createDueRangeQuery(start, end time.Time) map[string]any {
	dueRange := make(map[string]any)
	if !start.IsZero() {
		dueRange["gte"] = start
	}
	if !end.IsZero() {
		dueRange["lte"] = end
	}
	return map[string]any{
		"range": map[string]any{
			"due_date": dueRange,
		},
	}
}

// getIndexMapping returns the mapping for the receivable index
func (r *searchRepository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"tenant_id": { "type": "keyword" },
				"order_id": { "type": "keyword" },
				"customer_id": { "type": "keyword" },
				"customer_name": { "type": "text" },
				"description": { "type": "text" },
				"total_amount": { "type": "double" },
				"installment_number": { "type": "integer" },
				"total_installments": { "type": "integer" },
				"amount": { "type": "double" },
				"due_date": { "type": "date" },
				"paid": { "type": "boolean" },
				"paid_at": { "type": "date" },
				"payment_method": { "type": "keyword" },
				"notes": { "type": "text" },
				"created_at": { "type": "date" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

func (r *searchRepository) CreateIndex(ctx context.Context, tenantID string, t time.Time) error {
	indexName := r.config.GetIndexName(tenantID, t)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil // Index already exists
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(r.getIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}

func (r *searchRepository) DeleteIndex(ctx context.Context, tenantID string) error {
	indexName := r.config.GetIndexPattern(tenantID)

	delete := opensearchapi.IndicesDeleteRequest{
		Index: []string{indexName},
	}

	res, err := delete.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error deleting index: %s", res.String())
	}

	return nil
}
