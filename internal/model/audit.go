package model

import "time"

type AuditEntry struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	EditorID  *int64    `json:"editor_id,omitempty"`
	ActorID   *int64    `json:"actor_id,omitempty"`
	Action    string    `json:"action"`
	Detail    *string   `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
