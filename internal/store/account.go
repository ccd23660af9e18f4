package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pressdesk.app/unassigned/core/db/sqlc"
	"pressdesk.app/unassigned/internal/model"
)

type accountStore struct {
	queries *sqlc.Queries
}

func newAccountStore(queries *sqlc.Queries) AccountStore {
	return &accountStore{queries: queries}
}

func (s *accountStore) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	row, err := s.queries.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toAccountModel(row), nil
}

func (s *accountStore) UpsertByWorkOSID(ctx context.Context, account *model.Account) error {
	row, err := s.queries.UpsertAccountByWorkOSID(ctx, sqlc.UpsertAccountByWorkOSIDParams{
		ID:       account.ID,
		Name:     account.Name,
		Email:    account.Email,
		WorkosID: account.WorkOSID,
	})
	if err != nil {
		return err
	}
	*account = *toAccountModel(row)
	return nil
}

func (s *accountStore) ListRoles(ctx context.Context, accountID, journalID int64) ([]string, error) {
	return s.queries.ListAccountRoles(ctx, sqlc.ListAccountRolesParams{
		AccountID: accountID,
		JournalID: journalID,
	})
}

func (s *accountStore) ListRoleHolders(ctx context.Context, journalID int64, role string, articleID int64) ([]model.Account, error) {
	rows, err := s.queries.ListRoleHoldersExcludingAssigned(ctx, sqlc.ListRoleHoldersExcludingAssignedParams{
		JournalID: journalID,
		Role:      role,
		ArticleID: articleID,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Account, len(rows))
	for i, row := range rows {
		result[i] = *toAccountModel(row)
	}
	return result, nil
}

func toAccountModel(row sqlc.Account) *model.Account {
	return &model.Account{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		WorkOSID:  row.WorkosID,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
