package advisor

import (
	"context"

	"BelanjaAI/app/api/assistant/internal/search"

	"github.com/zeromicro/go-zero/core/logx"
)

const (
	searchLimit = 5

	answerModel  = "gemini-2.0-flash"
	contextModel = "gemini-1.5-flash"
)

// fallbackAnswer is what every failed Answer call degrades to.
const fallbackAnswer = "Maaf, sistem sedang mengalami gangguan. Silakan coba beberapa saat lagi."

// Generator produces text from a prompt with a given model.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// ProductLookup searches the catalog with the extracted filters and returns
// the matching records plus a short note describing the result set.
type ProductLookup interface {
	Search(ctx context.Context, params search.Params) ([]search.Record, string, error)
}

// Advisor interprets free-text shopping questions, grounds them with catalog
// matches and drives the generation call. Both collaborators are set once at
// construction; Advisor itself holds no per-request state.
type Advisor struct {
	gen    Generator
	lookup ProductLookup
}

func New(gen Generator, lookup ProductLookup) *Advisor {
	return &Advisor{gen: gen, lookup: lookup}
}

// Answer turns a question into a natural-language answer, optionally informed
// by up to five matched products. It never fails: any lookup or generation
// error is logged and mapped to the fixed apology string.
func (a *Advisor) Answer(ctx context.Context, question string) string {
	log := logx.WithContext(ctx)
	log.Infof("answering question: %q", question)

	params := search.Params{
		Keyword:  question,
		Category: detectCategory(question),
		MaxPrice: detectMaxPrice(question),
		Limit:    searchLimit,
	}

	records, note, err := a.lookup.Search(ctx, params)
	if err != nil {
		log.Errorf("Error generating AI response: %v", err)
		return fallbackAnswer
	}

	prompt := wrapAnswerPrompt(buildContext(question, note, search.NormalizeAll(records)))

	answer, err := a.gen.Generate(ctx, answerModel, prompt)
	if err != nil {
		log.Errorf("Error generating AI response: %v", err)
		return fallbackAnswer
	}

	log.Infof("answer generated: category=%q maxPrice=%d products=%d", params.Category, params.MaxPrice, len(records))
	return answer
}

// AnswerFromContext is the legacy single-shot path: the caller supplies the
// grounding context and gets the raw generation result. Unlike Answer it does
// NOT swallow failures; a generation error is logged and returned to the
// caller. Existing callers depend on this asymmetry, so do not unify the two
// contracts.
func (a *Advisor) AnswerFromContext(ctx context.Context, contextText string) (string, error) {
	log := logx.WithContext(ctx)

	answer, err := a.gen.Generate(ctx, contextModel, wrapContextPrompt(contextText))
	if err != nil {
		log.Errorf("Error generating AI response from context: %v", err)
		return "", err
	}
	return answer, nil
}
