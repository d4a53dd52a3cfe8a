// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type AskRequest struct {
	Question string `json:"question,optional"`
}

type AskWithContextRequest struct {
	Context string `json:"context,optional"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}
