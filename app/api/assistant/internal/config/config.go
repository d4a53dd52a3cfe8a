// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	Gemini  GeminiConf
	Elastic ElasticConf

	LogConf logx.LogConf
}

// GeminiConf carries the one required credential. Startup refuses the
// placeholder value shipped in the sample config.
type GeminiConf struct {
	APIKey string
}

type ElasticConf struct {
	Addresses []string
	Username  string `json:",optional"`
	Password  string `json:",optional"`
	IndexName string `json:",optional"`
}
