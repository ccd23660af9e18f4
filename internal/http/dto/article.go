package dto

import (
	"time"

	"pressdesk.app/unassigned/internal/model"
	"pressdesk.app/unassigned/internal/service"
)

type ArticleResponse struct {
	ID              int64     `json:"id,string"`
	JournalID       int64     `json:"journal_id,string"`
	Title           string    `json:"title"`
	Stage           string    `json:"stage"`
	CrosscheckID    *string   `json:"crosscheck_id,omitempty"`
	CrosscheckScore *int32    `json:"crosscheck_score,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToArticleResponse(a *model.Article) *ArticleResponse {
	return &ArticleResponse{
		ID:              a.ID,
		JournalID:       a.JournalID,
		Title:           a.Title,
		Stage:           string(a.Stage),
		CrosscheckID:    a.CrosscheckID,
		CrosscheckScore: a.CrosscheckScore,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

type ListArticlesResponse struct {
	Articles []ArticleResponse `json:"articles"`
}

func ToListArticlesResponse(articles []model.Article) ListArticlesResponse {
	out := ListArticlesResponse{Articles: make([]ArticleResponse, 0, len(articles))}
	for i := range articles {
		out.Articles = append(out.Articles, *ToArticleResponse(&articles[i]))
	}
	return out
}

type AccountResponse struct {
	ID    int64  `json:"id,string"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToAccountResponse(a *model.Account) *AccountResponse {
	return &AccountResponse{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}

type ArticleDetailResponse struct {
	Article        *ArticleResponse     `json:"article"`
	Assignments    []AssignmentResponse `json:"assignments"`
	Editors        []AccountResponse    `json:"editors"`
	SectionEditors []AccountResponse    `json:"section_editors"`
}

func ToArticleDetailResponse(d *service.ArticleDetail) ArticleDetailResponse {
	resp := ArticleDetailResponse{
		Article:        ToArticleResponse(d.Article),
		Assignments:    make([]AssignmentResponse, 0, len(d.Assignments)),
		Editors:        make([]AccountResponse, 0, len(d.Editors)),
		SectionEditors: make([]AccountResponse, 0, len(d.SectionEditors)),
	}
	for i := range d.Assignments {
		resp.Assignments = append(resp.Assignments, *ToAssignmentResponse(&d.Assignments[i]))
	}
	for i := range d.Editors {
		resp.Editors = append(resp.Editors, *ToAccountResponse(&d.Editors[i]))
	}
	for i := range d.SectionEditors {
		resp.SectionEditors = append(resp.SectionEditors, *ToAccountResponse(&d.SectionEditors[i]))
	}
	return resp
}

type SubmitCrosscheckRequest struct {
	FileURL string `json:"file_url" binding:"required,url,max=2048"`
}
