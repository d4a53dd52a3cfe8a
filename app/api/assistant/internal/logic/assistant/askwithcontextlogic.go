// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package assistant

import (
	"context"

	"BelanjaAI/app/api/assistant/internal/svc"
	"BelanjaAI/app/api/assistant/internal/types"
	"BelanjaAI/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type AskWithContextLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAskWithContextLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AskWithContextLogic {
	return &AskWithContextLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// AskWithContext surfaces generation failures to the caller, unlike Ask.
func (l *AskWithContextLogic) AskWithContext(req *types.AskWithContextRequest) (resp *types.AskResponse, err error) {
	answer, err := l.svcCtx.Advisor.AnswerFromContext(l.ctx, req.Context)
	if err != nil {
		l.Logger.Error("logic: answer from context failed: ", err)
		return nil, errors.New(int(errno.AnswerGenerationError), err.Error())
	}

	resp = &types.AskResponse{Answer: answer}
	return
}
