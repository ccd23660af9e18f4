package service_test

import (
	"context"
	"time"

	"pressdesk.app/unassigned/internal/model"
	"pressdesk.app/unassigned/internal/service"
	"pressdesk.app/unassigned/internal/store"
)

type mockArticleStore struct {
	getByIDFn          func(ctx context.Context, id int64) (*model.Article, error)
	listByStageFn      func(ctx context.Context, journalID int64, stage model.Stage) ([]model.Article, error)
	updateCrosscheckFn func(ctx context.Context, id int64, crosscheckID *string, score *int32) (*model.Article, error)
}

func (m *mockArticleStore) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockArticleStore) ListByStage(ctx context.Context, journalID int64, stage model.Stage) ([]model.Article, error) {
	if m.listByStageFn != nil {
		return m.listByStageFn(ctx, journalID, stage)
	}
	return []model.Article{}, nil
}

func (m *mockArticleStore) UpdateCrosscheck(ctx context.Context, id int64, crosscheckID *string, score *int32) (*model.Article, error) {
	if m.updateCrosscheckFn != nil {
		return m.updateCrosscheckFn(ctx, id, crosscheckID, score)
	}
	return nil, store.ErrNotFound
}

type mockAccountStore struct {
	getByIDFn         func(ctx context.Context, id int64) (*model.Account, error)
	upsertFn          func(ctx context.Context, account *model.Account) error
	listRolesFn       func(ctx context.Context, accountID, journalID int64) ([]string, error)
	listRoleHoldersFn func(ctx context.Context, journalID int64, role string, articleID int64) ([]model.Account, error)
}

func (m *mockAccountStore) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockAccountStore) UpsertByWorkOSID(ctx context.Context, account *model.Account) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, account)
	}
	return nil
}

func (m *mockAccountStore) ListRoles(ctx context.Context, accountID, journalID int64) ([]string, error) {
	if m.listRolesFn != nil {
		return m.listRolesFn(ctx, accountID, journalID)
	}
	return []string{}, nil
}

func (m *mockAccountStore) ListRoleHolders(ctx context.Context, journalID int64, role string, articleID int64) ([]model.Account, error) {
	if m.listRoleHoldersFn != nil {
		return m.listRoleHoldersFn(ctx, journalID, role, articleID)
	}
	return []model.Account{}, nil
}

type mockAssignmentStore struct {
	createFn        func(ctx context.Context, assignment *model.EditorAssignment) error
	getFn           func(ctx context.Context, articleID, editorID int64) (*model.EditorAssignment, error)
	getUnnotifiedFn func(ctx context.Context, articleID, editorID int64) (*model.EditorAssignment, error)
	listByArticleFn func(ctx context.Context, articleID int64) ([]model.EditorAssignment, error)
	deleteFn        func(ctx context.Context, articleID, editorID int64) error
	markNotifiedFn  func(ctx context.Context, id int64, notifiedAt *time.Time) (*model.EditorAssignment, error)
	createCalls     int
	deleteCalls     int
}

func (m *mockAssignmentStore) Create(ctx context.Context, assignment *model.EditorAssignment) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, assignment)
	}
	return nil
}

func (m *mockAssignmentStore) Get(ctx context.Context, articleID, editorID int64) (*model.EditorAssignment, error) {
	if m.getFn != nil {
		return m.getFn(ctx, articleID, editorID)
	}
	return nil, store.ErrNotFound
}

func (m *mockAssignmentStore) GetUnnotified(ctx context.Context, articleID, editorID int64) (*model.EditorAssignment, error) {
	if m.getUnnotifiedFn != nil {
		return m.getUnnotifiedFn(ctx, articleID, editorID)
	}
	return nil, store.ErrNotFound
}

func (m *mockAssignmentStore) ListByArticle(ctx context.Context, articleID int64) ([]model.EditorAssignment, error) {
	if m.listByArticleFn != nil {
		return m.listByArticleFn(ctx, articleID)
	}
	return []model.EditorAssignment{}, nil
}

func (m *mockAssignmentStore) Delete(ctx context.Context, articleID, editorID int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, articleID, editorID)
	}
	return nil
}

func (m *mockAssignmentStore) MarkNotified(ctx context.Context, id int64, notifiedAt *time.Time) (*model.EditorAssignment, error) {
	if m.markNotifiedFn != nil {
		return m.markNotifiedFn(ctx, id, notifiedAt)
	}
	return nil, store.ErrNotFound
}

type mockAuditStore struct {
	appendFn    func(ctx context.Context, entry *model.AuditEntry) error
	appendCalls int
}

func (m *mockAuditStore) Append(ctx context.Context, entry *model.AuditEntry) error {
	m.appendCalls++
	if m.appendFn != nil {
		return m.appendFn(ctx, entry)
	}
	return nil
}

func (m *mockAuditStore) ListByArticle(ctx context.Context, articleID int64) ([]model.AuditEntry, error) {
	return []model.AuditEntry{}, nil
}

type mockStoreProvider struct {
	assignments store.AssignmentStore
	audit       store.AuditStore
}

func (m *mockStoreProvider) Assignments() store.AssignmentStore {
	return m.assignments
}

func (m *mockStoreProvider) Audit() store.AuditStore {
	return m.audit
}

type mockTxRunner struct {
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	return fn(&mockStoreProvider{})
}

type mockChecker struct {
	submitFn     func(ctx context.Context, articleID int64, title string, fileURL string) (string, error)
	fetchScoreFn func(ctx context.Context, reportID string) (*int32, error)
}

func (m *mockChecker) Submit(ctx context.Context, articleID int64, title string, fileURL string) (string, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, articleID, title, fileURL)
	}
	return "", nil
}

func (m *mockChecker) FetchScore(ctx context.Context, reportID string) (*int32, error) {
	if m.fetchScoreFn != nil {
		return m.fetchScoreFn(ctx, reportID)
	}
	return nil, nil
}
