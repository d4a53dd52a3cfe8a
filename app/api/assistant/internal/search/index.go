package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
)

// EnsureCatalogIndex creates the product index with its attribute mapping when
// it does not exist yet. An existing index is left untouched.
func EnsureCatalogIndex(ctx context.Context, client *elasticsearch.Client, indexName string) error {
	if client == nil || strings.TrimSpace(indexName) == "" {
		return fmt.Errorf("missing elasticsearch client or index name")
	}

	existsRes, err := client.Indices.Exists(
		[]string{indexName},
		client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("check index existence: %w", err)
	}
	defer existsRes.Body.Close()

	if existsRes.StatusCode != http.StatusNotFound {
		if existsRes.IsError() {
			raw, _ := io.ReadAll(existsRes.Body)
			return fmt.Errorf("index existence status %s: %s", existsRes.Status(), strings.TrimSpace(string(raw)))
		}
		return nil
	}

	body, err := json.Marshal(catalogIndexDefinition())
	if err != nil {
		return fmt.Errorf("encode index definition: %w", err)
	}

	createRes, err := client.Indices.Create(
		indexName,
		client.Indices.Create.WithContext(ctx),
		client.Indices.Create.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		raw, _ := io.ReadAll(createRes.Body)
		return fmt.Errorf("create index status %s: %s", createRes.Status(), strings.TrimSpace(string(raw)))
	}

	return nil
}

func catalogIndexDefinition() map[string]any {
	return map[string]any{
		"settings": map[string]any{
			"number_of_shards":   1,
			"number_of_replicas": 0,
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"name": map[string]any{
					"type": "text",
					"fields": map[string]any{
						"keyword": map[string]any{
							"type":         "keyword",
							"ignore_above": 256,
						},
					},
				},
				"brand": map[string]any{
					"type": "text",
					"fields": map[string]any{
						"keyword": map[string]any{
							"type":         "keyword",
							"ignore_above": 256,
						},
					},
				},
				"category": map[string]any{
					"type": "keyword",
				},
				"price": map[string]any{
					"type": "long",
				},
				"description": map[string]any{
					"type": "text",
				},
				"specifications": map[string]any{
					"properties": map[string]any{
						"rating": map[string]any{
							"type": "float",
						},
					},
				},
			},
		},
	}
}
