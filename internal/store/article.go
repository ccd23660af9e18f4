package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pressdesk.app/unassigned/core/db/sqlc"
	"pressdesk.app/unassigned/internal/model"
)

type articleStore struct {
	queries *sqlc.Queries
}

func newArticleStore(queries *sqlc.Queries) ArticleStore {
	return &articleStore{queries: queries}
}

func (s *articleStore) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	row, err := s.queries.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toArticleModel(row), nil
}

func (s *articleStore) ListByStage(ctx context.Context, journalID int64, stage model.Stage) ([]model.Article, error) {
	rows, err := s.queries.ListArticlesByStage(ctx, sqlc.ListArticlesByStageParams{
		JournalID: journalID,
		Stage:     string(stage),
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Article, len(rows))
	for i, row := range rows {
		result[i] = *toArticleModel(row)
	}
	return result, nil
}

func (s *articleStore) UpdateCrosscheck(ctx context.Context, id int64, crosscheckID *string, score *int32) (*model.Article, error) {
	row, err := s.queries.UpdateArticleCrosscheck(ctx, sqlc.UpdateArticleCrosscheckParams{
		ID:              id,
		CrosscheckID:    crosscheckID,
		CrosscheckScore: score,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toArticleModel(row), nil
}

func toArticleModel(row sqlc.Article) *model.Article {
	return &model.Article{
		ID:              row.ID,
		JournalID:       row.JournalID,
		Title:           row.Title,
		Stage:           model.Stage(row.Stage),
		CrosscheckID:    row.CrosscheckID,
		CrosscheckScore: row.CrosscheckScore,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
