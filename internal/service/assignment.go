package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"pressdesk.app/unassigned/common/id"
	"pressdesk.app/unassigned/common/logger"
	"pressdesk.app/unassigned/internal/event"
	"pressdesk.app/unassigned/internal/model"
	"pressdesk.app/unassigned/internal/notify"
	"pressdesk.app/unassigned/internal/store"
)

var (
	ErrArticleNotFound    = errors.New("article not found")
	ErrEditorNotFound     = errors.New("editor not found")
	ErrAssignmentNotFound = errors.New("no matching assignment")

	// ErrRoleMismatch means the target editor holds neither the editor nor
	// the section-editor role in the article's journal. No mutation occurred.
	ErrRoleMismatch = errors.New("editor lacks a qualifying role")

	// ErrAlreadyAssigned means the (article, editor) pair already holds an
	// assignment, of any type. No mutation occurred and no event was raised.
	ErrAlreadyAssigned = errors.New("editor already assigned to article")

	// ErrEventDelivery wraps a listener failure raised after the store
	// mutation committed. The state change stands; only the remainder of the
	// request failed, and the caller may retry the notification step.
	ErrEventDelivery = errors.New("event delivery failed")
)

// AssignmentService is the editor-assignment workflow. One (article, editor)
// relationship moves Unassigned → Assigned → Notified; unassigning deletes
// the record and collapses back to Unassigned.
type AssignmentService interface {
	Assign(ctx context.Context, articleID, editorID int64, assignmentType model.AssignmentType, actorID int64) (*model.EditorAssignment, error)
	Unassign(ctx context.Context, articleID, editorID int64, actorID int64) error
	Notify(ctx context.Context, articleID, editorID int64, message *string, skip bool, actorID int64) (*model.EditorAssignment, error)
	ProposedMessage(ctx context.Context, articleID, editorID int64) (string, error)
}

type assignmentService struct {
	articleStore    store.ArticleStore
	accountStore    store.AccountStore
	assignmentStore store.AssignmentStore
	txRunner        TxRunner
	dispatcher      *event.Dispatcher
}

func NewAssignmentService(
	articleStore store.ArticleStore,
	accountStore store.AccountStore,
	assignmentStore store.AssignmentStore,
	txRunner TxRunner,
	dispatcher *event.Dispatcher,
) AssignmentService {
	return &assignmentService{
		articleStore:    articleStore,
		accountStore:    accountStore,
		assignmentStore: assignmentStore,
		txRunner:        txRunner,
		dispatcher:      dispatcher,
	}
}

func (s *assignmentService) Assign(ctx context.Context, articleID, editorID int64, assignmentType model.AssignmentType, actorID int64) (*model.EditorAssignment, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ArticleID: logger.Ptr(articleID),
		EditorID:  logger.Ptr(editorID),
		Component: "unassigned.workflow",
	})

	article, err := s.articleStore.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("getting article: %w", err)
	}

	editor, err := s.accountStore.GetByID(ctx, editorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEditorNotFound
		}
		return nil, fmt.Errorf("getting editor: %w", err)
	}

	roles, err := s.accountStore.ListRoles(ctx, editor.ID, article.JournalID)
	if err != nil {
		return nil, fmt.Errorf("listing editor roles: %w", err)
	}
	if !slices.Contains(roles, model.RoleEditor) && !slices.Contains(roles, model.RoleSectionEditor) {
		slog.WarnContext(ctx, "assignment rejected: editor lacks qualifying role", "journal_id", article.JournalID)
		return nil, ErrRoleMismatch
	}

	assignment := &model.EditorAssignment{
		ID:             id.New(),
		ArticleID:      article.ID,
		EditorID:       editor.ID,
		AssignmentType: assignmentType,
	}

	if err := s.assignmentStore.Create(ctx, assignment); err != nil {
		if errors.Is(err, store.ErrConflict) {
			slog.InfoContext(ctx, "duplicate assignment attempted")
			return nil, ErrAlreadyAssigned
		}
		return nil, fmt.Errorf("creating assignment: %w", err)
	}

	slog.InfoContext(ctx, "editor assigned",
		"assignment_id", assignment.ID,
		"assignment_type", assignment.AssignmentType,
		"actor_id", actorID,
	)

	// The assignment is committed; the initial raise always carries
	// skip=true because no message exists yet. A listener failure here
	// fails the request but never rolls back the assignment.
	if err := s.dispatcher.Raise(ctx, event.ArticleAssigned, event.AssignmentEvent{
		Article:         article,
		Assignment:      assignment,
		ActorID:         &actorID,
		Skip:            true,
		Acknowledgement: false,
	}); err != nil {
		return assignment, fmt.Errorf("%w: %v", ErrEventDelivery, err)
	}

	return assignment, nil
}

func (s *assignmentService) Unassign(ctx context.Context, articleID, editorID int64, actorID int64) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ArticleID: logger.Ptr(articleID),
		EditorID:  logger.Ptr(editorID),
		Component: "unassigned.workflow",
	})

	// Delete and audit commit together: an unassignment without its trail
	// (or the reverse) never becomes visible.
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Assignments().Delete(ctx, articleID, editorID); err != nil {
			return err
		}

		detail := fmt.Sprintf("account %d unassigned editor %d from article %d", actorID, editorID, articleID)
		entry := &model.AuditEntry{
			ID:        id.New(),
			ArticleID: articleID,
			EditorID:  &editorID,
			ActorID:   &actorID,
			Action:    "editor_unassigned",
			Detail:    &detail,
		}
		if err := stores.Audit().Append(ctx, entry); err != nil {
			return fmt.Errorf("appending audit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("unassigning editor: %w", err)
	}

	slog.InfoContext(ctx, "editor unassigned", "actor_id", actorID)
	return nil
}

func (s *assignmentService) Notify(ctx context.Context, articleID, editorID int64, message *string, skip bool, actorID int64) (*model.EditorAssignment, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ArticleID: logger.Ptr(articleID),
		EditorID:  logger.Ptr(editorID),
		Component: "unassigned.workflow",
	})

	article, err := s.articleStore.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("getting article: %w", err)
	}

	assignment, err := s.assignmentStore.GetUnnotified(ctx, articleID, editorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("getting unnotified assignment: %w", err)
	}

	// notified_at records an actual send; a skipped notification flips the
	// flag without a timestamp.
	var notifiedAt *time.Time
	if !skip {
		now := time.Now()
		notifiedAt = &now
	}

	// The notified=false predicate inside MarkNotified is the duplicate
	// guard: the loser of a concurrent race lands here with ErrNotFound.
	updated, err := s.assignmentStore.MarkNotified(ctx, assignment.ID, notifiedAt)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("marking assignment notified: %w", err)
	}

	slog.InfoContext(ctx, "editor notified",
		"assignment_id", updated.ID,
		"skip", skip,
		"actor_id", actorID,
	)

	var content *string
	if !skip {
		content = message
	}

	if err := s.dispatcher.Raise(ctx, event.ArticleAssignedAcknowledge, event.AssignmentEvent{
		Article:         article,
		Assignment:      updated,
		Message:         content,
		ActorID:         &actorID,
		Skip:            skip,
		Acknowledgement: true,
	}); err != nil {
		return updated, fmt.Errorf("%w: %v", ErrEventDelivery, err)
	}

	return updated, nil
}

// ProposedMessage renders the default notification body for the compose
// form. It uses the same un-notified guard as Notify so a preview for an
// already-notified assignment reports there is nothing to do.
func (s *assignmentService) ProposedMessage(ctx context.Context, articleID, editorID int64) (string, error) {
	article, err := s.articleStore.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrArticleNotFound
		}
		return "", fmt.Errorf("getting article: %w", err)
	}

	editor, err := s.accountStore.GetByID(ctx, editorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrEditorNotFound
		}
		return "", fmt.Errorf("getting editor: %w", err)
	}

	assignment, err := s.assignmentStore.GetUnnotified(ctx, articleID, editorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrAssignmentNotFound
		}
		return "", fmt.Errorf("getting unnotified assignment: %w", err)
	}

	return notify.Content(article, editor, assignment)
}
