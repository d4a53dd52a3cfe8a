package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
)

// Params are the filters the advisor extracts from a question. Category and
// MaxPrice are optional; zero values mean "no filter".
type Params struct {
	Keyword  string
	Category string
	MaxPrice int64
	Limit    int
}

// Catalog looks up products in the Elasticsearch catalog index.
type Catalog struct {
	client *elasticsearch.Client
	index  string
}

func NewCatalog(client *elasticsearch.Client, index string) *Catalog {
	if strings.TrimSpace(index) == "" {
		index = "products"
	}
	return &Catalog{client: client, index: index}
}

// Search returns the matching records together with a short human-readable
// note about the result set. The note ends up verbatim in the answer prompt.
func (c *Catalog) Search(ctx context.Context, params Params) ([]Record, string, error) {
	if c == nil || c.client == nil {
		return nil, "", fmt.Errorf("catalog client unavailable")
	}

	body, err := json.Marshal(buildSearchQuery(params))
	if err != nil {
		return nil, "", fmt.Errorf("encode search query: %w", err)
	}

	res, err := c.client.Search(
		c.client.Search.WithContext(ctx),
		c.client.Search.WithIndex(c.index),
		c.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, "", fmt.Errorf("search products: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		raw, _ := io.ReadAll(res.Body)
		return nil, "", fmt.Errorf("search status %s: %s", res.Status(), strings.TrimSpace(string(raw)))
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source Record `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, "", fmt.Errorf("decode search response: %w", err)
	}

	records := make([]Record, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		records = append(records, hit.Source)
	}

	return records, resultNote(params, len(records)), nil
}

// buildSearchQuery assembles the bool query: a multi_match over the text
// fields (match_all for an empty keyword), plus optional category and price
// ceiling filters.
func buildSearchQuery(params Params) map[string]any {
	var must any
	if strings.TrimSpace(params.Keyword) == "" {
		must = map[string]any{"match_all": map[string]any{}}
	} else {
		must = map[string]any{
			"multi_match": map[string]any{
				"query":  params.Keyword,
				"fields": []string{"name^2", "brand", "description"},
			},
		}
	}

	filters := make([]any, 0, 2)
	if params.Category != "" {
		filters = append(filters, map[string]any{
			"term": map[string]any{"category": params.Category},
		})
	}
	if params.MaxPrice > 0 {
		filters = append(filters, map[string]any{
			"range": map[string]any{
				"price": map[string]any{"lte": params.MaxPrice},
			},
		})
	}

	boolQuery := map[string]any{"must": must}
	if len(filters) > 0 {
		boolQuery["filter"] = filters
	}

	size := params.Limit
	if size <= 0 {
		size = 5
	}

	return map[string]any{
		"query": map[string]any{"bool": boolQuery},
		"size":  size,
	}
}

func resultNote(params Params, count int) string {
	if count == 0 {
		return "No products matched the current filters."
	}
	parts := make([]string, 0, 2)
	if params.Category != "" {
		parts = append(parts, fmt.Sprintf("category %q", params.Category))
	}
	if params.MaxPrice > 0 {
		parts = append(parts, fmt.Sprintf("price up to %d", params.MaxPrice))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Found %d matching products in the catalog.", count)
	}
	return fmt.Sprintf("Found %d matching products in the catalog (%s).", count, strings.Join(parts, ", "))
}
