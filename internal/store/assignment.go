package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"pressdesk.app/unassigned/core/db/sqlc"
	"pressdesk.app/unassigned/internal/model"
)

type assignmentStore struct {
	queries *sqlc.Queries
}

func newAssignmentStore(queries *sqlc.Queries) AssignmentStore {
	return &assignmentStore{queries: queries}
}

// Create inserts the assignment. The insert carries
// ON CONFLICT (article_id, editor_id) DO NOTHING, so the uniqueness check and
// the insert are one statement: when the pair already holds an assignment of
// any type no row comes back and ErrConflict is returned.
func (s *assignmentStore) Create(ctx context.Context, assignment *model.EditorAssignment) error {
	row, err := s.queries.CreateEditorAssignment(ctx, sqlc.CreateEditorAssignmentParams{
		ID:             assignment.ID,
		ArticleID:      assignment.ArticleID,
		EditorID:       assignment.EditorID,
		AssignmentType: string(assignment.AssignmentType),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrConflict
		}
		return err
	}
	*assignment = *toAssignmentModel(row)
	return nil
}

func (s *assignmentStore) Get(ctx context.Context, articleID, editorID int64) (*model.EditorAssignment, error) {
	row, err := s.queries.GetEditorAssignment(ctx, sqlc.GetEditorAssignmentParams{
		ArticleID: articleID,
		EditorID:  editorID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toAssignmentModel(row), nil
}

func (s *assignmentStore) GetUnnotified(ctx context.Context, articleID, editorID int64) (*model.EditorAssignment, error) {
	row, err := s.queries.GetUnnotifiedEditorAssignment(ctx, sqlc.GetUnnotifiedEditorAssignmentParams{
		ArticleID: articleID,
		EditorID:  editorID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toAssignmentModel(row), nil
}

func (s *assignmentStore) ListByArticle(ctx context.Context, articleID int64) ([]model.EditorAssignment, error) {
	rows, err := s.queries.ListEditorAssignmentsByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	result := make([]model.EditorAssignment, len(rows))
	for i, row := range rows {
		result[i] = *toAssignmentModel(row)
	}
	return result, nil
}

func (s *assignmentStore) Delete(ctx context.Context, articleID, editorID int64) error {
	affected, err := s.queries.DeleteEditorAssignment(ctx, sqlc.DeleteEditorAssignmentParams{
		ArticleID: articleID,
		EditorID:  editorID,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkNotified flips the notified flag. The update predicate includes
// notified = FALSE, so the guard and the mutation are atomic: a second call
// for the same assignment matches no row and returns ErrNotFound.
// notifiedAt stays nil when the notification was skipped.
func (s *assignmentStore) MarkNotified(ctx context.Context, id int64, notifiedAt *time.Time) (*model.EditorAssignment, error) {
	var ts pgtype.Timestamptz
	if notifiedAt != nil {
		ts = pgtype.Timestamptz{Time: *notifiedAt, Valid: true}
	}

	row, err := s.queries.MarkEditorAssignmentNotified(ctx, sqlc.MarkEditorAssignmentNotifiedParams{
		ID:         id,
		NotifiedAt: ts,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toAssignmentModel(row), nil
}

func toAssignmentModel(row sqlc.EditorAssignment) *model.EditorAssignment {
	var notifiedAt *time.Time
	if row.NotifiedAt.Valid {
		t := row.NotifiedAt.Time
		notifiedAt = &t
	}

	return &model.EditorAssignment{
		ID:             row.ID,
		ArticleID:      row.ArticleID,
		EditorID:       row.EditorID,
		AssignmentType: model.AssignmentType(row.AssignmentType),
		Notified:       row.Notified,
		NotifiedAt:     notifiedAt,
		CreatedAt:      row.CreatedAt.Time,
	}
}
