package model

import "time"

// Stage is a step in the editorial workflow. Only StageUnassigned is acted
// on by this service; later stages belong to downstream workflow services.
type Stage string

const (
	StageUnassigned Stage = "unassigned"
	StageAssigned   Stage = "assigned"
	StageReview     Stage = "review"
)

type Article struct {
	ID              int64     `json:"id"`
	JournalID       int64     `json:"journal_id"`
	Title           string    `json:"title"`
	Stage           Stage     `json:"stage"`
	CrosscheckID    *string   `json:"crosscheck_id,omitempty"`
	CrosscheckScore *int32    `json:"crosscheck_score,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
