package store

import (
	"context"
	"errors"
	"time"

	"pressdesk.app/unassigned/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist, or exists
// but fails a state guard (e.g. the assignment was already notified).
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when creating an assignment for an
// (article, editor) pair that already has one, regardless of type.
var ErrConflict = errors.New("already exists")

// ArticleStore defines the contract for article data access. Articles are
// owned by the submission system; this service reads them and only mutates
// the crosscheck report fields.
type ArticleStore interface {
	GetByID(ctx context.Context, id int64) (*model.Article, error)
	ListByStage(ctx context.Context, journalID int64, stage model.Stage) ([]model.Article, error)
	UpdateCrosscheck(ctx context.Context, id int64, crosscheckID *string, score *int32) (*model.Article, error)
}

// AccountStore defines the contract for account and role data access.
// Accounts and role grants are owned by the identity system; read-only here
// apart from the login upsert.
type AccountStore interface {
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	UpsertByWorkOSID(ctx context.Context, account *model.Account) error
	ListRoles(ctx context.Context, accountID, journalID int64) ([]string, error)
	// ListRoleHolders returns accounts holding role in the journal that are
	// not already assigned to the article.
	ListRoleHolders(ctx context.Context, journalID int64, role string, articleID int64) ([]model.Account, error)
}

// AssignmentStore defines the contract for editor-assignment bookkeeping.
// Create and MarkNotified are atomic with their guards: concurrent creates
// for one pair yield one success and one ErrConflict, concurrent notifies
// one success and one ErrNotFound.
type AssignmentStore interface {
	Create(ctx context.Context, assignment *model.EditorAssignment) error
	Get(ctx context.Context, articleID, editorID int64) (*model.EditorAssignment, error)
	GetUnnotified(ctx context.Context, articleID, editorID int64) (*model.EditorAssignment, error)
	ListByArticle(ctx context.Context, articleID int64) ([]model.EditorAssignment, error)
	Delete(ctx context.Context, articleID, editorID int64) error
	MarkNotified(ctx context.Context, id int64, notifiedAt *time.Time) (*model.EditorAssignment, error)
}

// AuditStore defines the contract for the append-only audit trail.
type AuditStore interface {
	Append(ctx context.Context, entry *model.AuditEntry) error
	ListByArticle(ctx context.Context, articleID int64) ([]model.AuditEntry, error)
}

// SessionStore defines the contract for session data access.
type SessionStore interface {
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) error
}
