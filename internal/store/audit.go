package store

import (
	"context"

	"pressdesk.app/unassigned/core/db/sqlc"
	"pressdesk.app/unassigned/internal/model"
)

type auditStore struct {
	queries *sqlc.Queries
}

func newAuditStore(queries *sqlc.Queries) AuditStore {
	return &auditStore{queries: queries}
}

func (s *auditStore) Append(ctx context.Context, entry *model.AuditEntry) error {
	row, err := s.queries.CreateAuditEntry(ctx, sqlc.CreateAuditEntryParams{
		ID:        entry.ID,
		ArticleID: entry.ArticleID,
		EditorID:  entry.EditorID,
		ActorID:   entry.ActorID,
		Action:    entry.Action,
		Detail:    entry.Detail,
	})
	if err != nil {
		return err
	}
	*entry = *toAuditModel(row)
	return nil
}

func (s *auditStore) ListByArticle(ctx context.Context, articleID int64) ([]model.AuditEntry, error) {
	rows, err := s.queries.ListAuditEntriesByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	result := make([]model.AuditEntry, len(rows))
	for i, row := range rows {
		result[i] = *toAuditModel(row)
	}
	return result, nil
}

func toAuditModel(row sqlc.AuditLog) *model.AuditEntry {
	return &model.AuditEntry{
		ID:        row.ID,
		ArticleID: row.ArticleID,
		EditorID:  row.EditorID,
		ActorID:   row.ActorID,
		Action:    row.Action,
		Detail:    row.Detail,
		CreatedAt: row.CreatedAt.Time,
	}
}
