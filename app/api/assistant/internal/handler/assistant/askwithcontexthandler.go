// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package assistant

import (
	"net/http"

	"BelanjaAI/app/api/assistant/internal/logic/assistant"
	"BelanjaAI/app/api/assistant/internal/svc"
	"BelanjaAI/app/api/assistant/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func AskWithContextHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AskWithContextRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := assistant.NewAskWithContextLogic(r.Context(), svcCtx)
		resp, err := l.AskWithContext(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
