package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pressdesk.app/unassigned/common/logger"
	"pressdesk.app/unassigned/internal/model"
	"pressdesk.app/unassigned/internal/plagiarism"
	"pressdesk.app/unassigned/internal/store"
)

// ErrCrosscheckDisabled is returned when the similarity-check integration is
// not configured for this deployment.
var ErrCrosscheckDisabled = errors.New("crosscheck integration is not configured")

// ArticleDetail bundles everything the assignment screen needs for one
// article: the submission itself, who already handles it, and who could.
type ArticleDetail struct {
	Article        *model.Article
	Assignments    []model.EditorAssignment
	Editors        []model.Account
	SectionEditors []model.Account
}

// ArticleService reads the unassigned queue and manages the crosscheck
// report attached to a submission.
type ArticleService interface {
	ListUnassigned(ctx context.Context, journalID int64) ([]model.Article, error)
	Detail(ctx context.Context, articleID int64) (*ArticleDetail, error)
	SubmitCrosscheck(ctx context.Context, articleID int64, fileURL string) (*model.Article, error)
}

type articleService struct {
	articleStore    store.ArticleStore
	accountStore    store.AccountStore
	assignmentStore store.AssignmentStore
	checker         plagiarism.Checker // nil when the integration is disabled
}

func NewArticleService(
	articleStore store.ArticleStore,
	accountStore store.AccountStore,
	assignmentStore store.AssignmentStore,
	checker plagiarism.Checker,
) ArticleService {
	return &articleService{
		articleStore:    articleStore,
		accountStore:    accountStore,
		assignmentStore: assignmentStore,
		checker:         checker,
	}
}

func (s *articleService) ListUnassigned(ctx context.Context, journalID int64) ([]model.Article, error) {
	articles, err := s.articleStore.ListByStage(ctx, journalID, model.StageUnassigned)
	if err != nil {
		return nil, fmt.Errorf("listing unassigned articles: %w", err)
	}
	return articles, nil
}

func (s *articleService) Detail(ctx context.Context, articleID int64) (*ArticleDetail, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ArticleID: logger.Ptr(articleID),
		Component: "unassigned.articles",
	})

	article, err := s.articleStore.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("getting article: %w", err)
	}

	article = s.refreshCrosscheckScore(ctx, article)

	assignments, err := s.assignmentStore.ListByArticle(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}

	// Candidate lists exclude anyone already assigned, so the screen never
	// offers a pick that would bounce off the uniqueness constraint.
	editors, err := s.accountStore.ListRoleHolders(ctx, article.JournalID, model.RoleEditor, article.ID)
	if err != nil {
		return nil, fmt.Errorf("listing candidate editors: %w", err)
	}
	sectionEditors, err := s.accountStore.ListRoleHolders(ctx, article.JournalID, model.RoleSectionEditor, article.ID)
	if err != nil {
		return nil, fmt.Errorf("listing candidate section editors: %w", err)
	}

	return &ArticleDetail{
		Article:        article,
		Assignments:    assignments,
		Editors:        editors,
		SectionEditors: sectionEditors,
	}, nil
}

// refreshCrosscheckScore fetches and persists a pending similarity score.
// Failures are logged and swallowed: the detail view must not break because
// the scoring service is slow or down.
func (s *articleService) refreshCrosscheckScore(ctx context.Context, article *model.Article) *model.Article {
	if s.checker == nil || article.CrosscheckID == nil || article.CrosscheckScore != nil {
		return article
	}

	score, err := s.checker.FetchScore(ctx, *article.CrosscheckID)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch crosscheck score", "error", err)
		return article
	}
	if score == nil {
		return article
	}

	updated, err := s.articleStore.UpdateCrosscheck(ctx, article.ID, article.CrosscheckID, score)
	if err != nil {
		slog.ErrorContext(ctx, "failed to persist crosscheck score", "error", err)
		return article
	}
	slog.InfoContext(ctx, "crosscheck score received", "score", *score)
	return updated
}

func (s *articleService) SubmitCrosscheck(ctx context.Context, articleID int64, fileURL string) (*model.Article, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ArticleID: logger.Ptr(articleID),
		Component: "unassigned.articles",
	})

	if s.checker == nil {
		return nil, ErrCrosscheckDisabled
	}

	article, err := s.articleStore.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("getting article: %w", err)
	}

	reportID, err := s.checker.Submit(ctx, article.ID, article.Title, fileURL)
	if err != nil {
		return nil, fmt.Errorf("submitting crosscheck document: %w", err)
	}

	updated, err := s.articleStore.UpdateCrosscheck(ctx, article.ID, &reportID, nil)
	if err != nil {
		return nil, fmt.Errorf("saving crosscheck report id: %w", err)
	}

	slog.InfoContext(ctx, "crosscheck document submitted", "report_id", reportID)
	return updated, nil
}
