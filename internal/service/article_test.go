package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pressdesk.app/unassigned/internal/model"
	"pressdesk.app/unassigned/internal/service"
	"pressdesk.app/unassigned/internal/store"
)

var _ = Describe("ArticleService", func() {
	var (
		svc             service.ArticleService
		mockArticles    *mockArticleStore
		mockAccounts    *mockAccountStore
		mockAssignments *mockAssignmentStore
		checker         *mockChecker
		ctx             context.Context
	)

	newService := func() service.ArticleService {
		return service.NewArticleService(mockArticles, mockAccounts, mockAssignments, checker)
	}

	BeforeEach(func() {
		ctx = context.Background()
		mockArticles = &mockArticleStore{}
		mockAccounts = &mockAccountStore{}
		mockAssignments = &mockAssignmentStore{}
		checker = &mockChecker{}
		svc = newService()
	})

	Describe("ListUnassigned", func() {
		It("returns only articles in the unassigned stage", func() {
			mockArticles.listByStageFn = func(_ context.Context, journalID int64, stage model.Stage) ([]model.Article, error) {
				Expect(journalID).To(Equal(int64(7)))
				Expect(stage).To(Equal(model.StageUnassigned))
				return []model.Article{{ID: 1}, {ID: 2}}, nil
			}

			articles, err := svc.ListUnassigned(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(articles).To(HaveLen(2))
		})
	})

	Describe("Detail", func() {
		article := &model.Article{ID: 100, JournalID: 7, Title: "Deep Currents"}

		BeforeEach(func() {
			mockArticles.getByIDFn = func(_ context.Context, id int64) (*model.Article, error) {
				if id == article.ID {
					a := *article
					return &a, nil
				}
				return nil, store.ErrNotFound
			}
		})

		It("bundles assignments and candidate lists excluding assigned accounts", func() {
			mockAssignments.listByArticleFn = func(_ context.Context, articleID int64) ([]model.EditorAssignment, error) {
				return []model.EditorAssignment{{ID: 1, ArticleID: articleID, EditorID: 200}}, nil
			}
			mockAccounts.listRoleHoldersFn = func(_ context.Context, journalID int64, role string, articleID int64) ([]model.Account, error) {
				Expect(journalID).To(Equal(article.JournalID))
				Expect(articleID).To(Equal(article.ID))
				switch role {
				case model.RoleEditor:
					return []model.Account{{ID: 201}}, nil
				case model.RoleSectionEditor:
					return []model.Account{{ID: 301}, {ID: 302}}, nil
				}
				return nil, nil
			}

			detail, err := svc.Detail(ctx, article.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Assignments).To(HaveLen(1))
			Expect(detail.Editors).To(HaveLen(1))
			Expect(detail.SectionEditors).To(HaveLen(2))
		})

		It("returns ErrArticleNotFound for an unknown article", func() {
			_, err := svc.Detail(ctx, 404)
			Expect(err).To(MatchError(service.ErrArticleNotFound))
		})

		It("fetches and persists a pending crosscheck score", func() {
			reportID := "rpt-1"
			article.CrosscheckID = &reportID
			score := int32(17)
			checker.fetchScoreFn = func(_ context.Context, id string) (*int32, error) {
				Expect(id).To(Equal(reportID))
				return &score, nil
			}

			var persisted *int32
			mockArticles.updateCrosscheckFn = func(_ context.Context, id int64, crosscheckID *string, s *int32) (*model.Article, error) {
				persisted = s
				a := *article
				a.CrosscheckScore = s
				return &a, nil
			}

			detail, err := svc.Detail(ctx, article.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(persisted).NotTo(BeNil())
			Expect(*detail.Article.CrosscheckScore).To(Equal(score))
		})

		It("serves the detail view even when the scoring service is down", func() {
			reportID := "rpt-1"
			article.CrosscheckID = &reportID
			checker.fetchScoreFn = func(_ context.Context, _ string) (*int32, error) {
				return nil, errors.New("connection refused")
			}

			detail, err := svc.Detail(ctx, article.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Article.CrosscheckScore).To(BeNil())
		})
	})

	Describe("SubmitCrosscheck", func() {
		article := &model.Article{ID: 100, JournalID: 7, Title: "Deep Currents"}

		BeforeEach(func() {
			mockArticles.getByIDFn = func(_ context.Context, id int64) (*model.Article, error) {
				if id == article.ID {
					a := *article
					return &a, nil
				}
				return nil, store.ErrNotFound
			}
		})

		It("submits the document and stores the report id", func() {
			checker.submitFn = func(_ context.Context, articleID int64, title, fileURL string) (string, error) {
				Expect(articleID).To(Equal(article.ID))
				Expect(title).To(Equal(article.Title))
				Expect(fileURL).To(Equal("https://files.example.org/100.pdf"))
				return "rpt-9", nil
			}
			mockArticles.updateCrosscheckFn = func(_ context.Context, id int64, crosscheckID *string, score *int32) (*model.Article, error) {
				Expect(*crosscheckID).To(Equal("rpt-9"))
				Expect(score).To(BeNil())
				a := *article
				a.CrosscheckID = crosscheckID
				return &a, nil
			}

			updated, err := svc.SubmitCrosscheck(ctx, article.ID, "https://files.example.org/100.pdf")
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated.CrosscheckID).To(Equal("rpt-9"))
		})

		It("returns ErrCrosscheckDisabled when no checker is configured", func() {
			checker = nil
			svc = service.NewArticleService(mockArticles, mockAccounts, mockAssignments, nil)

			_, err := svc.SubmitCrosscheck(ctx, article.ID, "https://files.example.org/100.pdf")
			Expect(err).To(MatchError(service.ErrCrosscheckDisabled))
		})
	})
})
