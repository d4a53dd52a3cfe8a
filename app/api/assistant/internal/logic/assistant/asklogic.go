// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package assistant

import (
	"context"

	"BelanjaAI/app/api/assistant/internal/svc"
	"BelanjaAI/app/api/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type AskLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAskLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AskLogic {
	return &AskLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Ask never fails: the advisor maps every internal error to its fixed
// fallback answer, so this endpoint always returns 200 with some text.
func (l *AskLogic) Ask(req *types.AskRequest) (resp *types.AskResponse, err error) {
	answer := l.svcCtx.Advisor.Answer(l.ctx, req.Question)

	resp = &types.AskResponse{Answer: answer}
	return
}
