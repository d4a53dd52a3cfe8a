// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	assistant "BelanjaAI/app/api/assistant/internal/handler/assistant"
	"BelanjaAI/app/api/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/ask",
				Handler: assistant.AskHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/ask/context",
				Handler: assistant.AskWithContextHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/assistant"),
	)
}
