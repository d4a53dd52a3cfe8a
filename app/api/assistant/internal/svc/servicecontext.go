// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"
	"strings"

	"BelanjaAI/app/api/assistant/internal/advisor"
	"BelanjaAI/app/api/assistant/internal/config"
	"BelanjaAI/app/api/assistant/internal/generate"
	"BelanjaAI/app/api/assistant/internal/search"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/zeromicro/go-zero/core/logx"
)

const placeholderAPIKey = "your-gemini-api-key-here"

type ServiceContext struct {
	Config  config.Config
	Advisor *advisor.Advisor
}

// NewServiceContext builds the collaborators exactly once. Any construction
// failure here is fatal: the service must not come up half-initialized.
func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	key := strings.TrimSpace(c.Gemini.APIKey)
	if key == "" || key == placeholderAPIKey {
		logx.Errorw("gemini api key missing or still the placeholder")
		panic("gemini api key is not configured")
	}

	gemini, err := generate.NewGemini(context.Background(), key)
	if err != nil {
		logx.Errorw("init gemini client failed", logx.Field("err", err))
		panic(err)
	}
	logx.Infow("gemini client initialized")

	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: c.Elastic.Addresses,
		Username:  c.Elastic.Username,
		Password:  c.Elastic.Password,
	})
	if err != nil {
		logx.Errorw("init elasticsearch client failed", logx.Field("err", err))
		panic(err)
	}
	logx.Infow("elasticsearch client initialized", logx.Field("addresses", c.Elastic.Addresses))

	indexName := strings.TrimSpace(c.Elastic.IndexName)
	if indexName == "" {
		indexName = "products"
	}
	if err := search.EnsureCatalogIndex(context.Background(), esClient, indexName); err != nil {
		logx.Errorw("ensure catalog index failed", logx.Field("err", err), logx.Field("index", indexName))
	}

	catalog := search.NewCatalog(esClient, indexName)

	return &ServiceContext{
		Config:  c,
		Advisor: advisor.New(gemini, catalog),
	}
}
