package dto

import (
	"time"

	"pressdesk.app/unassigned/internal/model"
)

type CreateAssignmentRequest struct {
	EditorID       int64  `json:"editor_id,string" binding:"required"`
	AssignmentType string `json:"assignment_type" binding:"required,oneof=editor section-editor"`
}

type AssignmentResponse struct {
	ID             int64      `json:"id,string"`
	ArticleID      int64      `json:"article_id,string"`
	EditorID       int64      `json:"editor_id,string"`
	AssignmentType string     `json:"assignment_type"`
	Notified       bool       `json:"notified"`
	NotifiedAt     *time.Time `json:"notified_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToAssignmentResponse(a *model.EditorAssignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:             a.ID,
		ArticleID:      a.ArticleID,
		EditorID:       a.EditorID,
		AssignmentType: string(a.AssignmentType),
		Notified:       a.Notified,
		NotifiedAt:     a.NotifiedAt,
		CreatedAt:      a.CreatedAt,
	}
}

// NotifyRequest acknowledges an assignment. Skip true means the sender chose
// not to compose a message; Message is ignored in that case.
type NotifyRequest struct {
	Message *string `json:"message,omitempty" binding:"omitempty,max=10000"`
	Skip    bool    `json:"skip"`
}

type NotificationPreviewResponse struct {
	Message string `json:"message"`
}
