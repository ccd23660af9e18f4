package model

import "time"

// AssignmentType distinguishes the editorial role an assignment grants on
// one article. The (article, editor) pair is unique regardless of type.
type AssignmentType string

const (
	AssignmentTypeEditor        AssignmentType = "editor"
	AssignmentTypeSectionEditor AssignmentType = "section-editor"
)

func (t AssignmentType) Valid() bool {
	return t == AssignmentTypeEditor || t == AssignmentTypeSectionEditor
}

// EditorAssignment binds one editor to one article. Notified flips to true
// exactly once, via the notification step; NotifiedAt is only set when a
// message was actually sent, not when the sender skipped composing one.
type EditorAssignment struct {
	ID             int64          `json:"id"`
	ArticleID      int64          `json:"article_id"`
	EditorID       int64          `json:"editor_id"`
	AssignmentType AssignmentType `json:"assignment_type"`
	Notified       bool           `json:"notified"`
	NotifiedAt     *time.Time     `json:"notified_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}
