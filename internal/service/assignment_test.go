package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pressdesk.app/unassigned/common/id"
	"pressdesk.app/unassigned/internal/event"
	"pressdesk.app/unassigned/internal/model"
	"pressdesk.app/unassigned/internal/service"
	"pressdesk.app/unassigned/internal/store"
)

var _ = Describe("AssignmentService", func() {
	var (
		svc             service.AssignmentService
		mockArticles    *mockArticleStore
		mockAccounts    *mockAccountStore
		mockAssignments *mockAssignmentStore
		mockAudit       *mockAuditStore
		dispatcher      *event.Dispatcher
		raised          []event.AssignmentEvent
		raisedNames     []string
		ctx             context.Context

		article = &model.Article{ID: 100, JournalID: 7, Title: "Deep Currents", Stage: model.StageUnassigned}
		editor  = &model.Account{ID: 200, Name: "Robin Okafor", Email: "robin@example.org"}
	)

	recordEvents := func() {
		dispatcher.Register(event.ArticleAssigned, func(_ context.Context, e event.AssignmentEvent) error {
			raised = append(raised, e)
			raisedNames = append(raisedNames, event.ArticleAssigned)
			return nil
		})
		dispatcher.Register(event.ArticleAssignedAcknowledge, func(_ context.Context, e event.AssignmentEvent) error {
			raised = append(raised, e)
			raisedNames = append(raisedNames, event.ArticleAssignedAcknowledge)
			return nil
		})
	}

	BeforeEach(func() {
		ctx = context.Background()
		mockArticles = &mockArticleStore{
			getByIDFn: func(_ context.Context, id int64) (*model.Article, error) {
				if id == article.ID {
					return article, nil
				}
				return nil, store.ErrNotFound
			},
		}
		mockAccounts = &mockAccountStore{
			getByIDFn: func(_ context.Context, id int64) (*model.Account, error) {
				if id == editor.ID {
					return editor, nil
				}
				return nil, store.ErrNotFound
			},
			listRolesFn: func(_ context.Context, accountID, journalID int64) ([]string, error) {
				return []string{model.RoleEditor}, nil
			},
		}
		mockAssignments = &mockAssignmentStore{}
		mockAudit = &mockAuditStore{}
		dispatcher = event.NewDispatcher()
		raised = nil
		raisedNames = nil

		svc = service.NewAssignmentService(
			mockArticles,
			mockAccounts,
			mockAssignments,
			&mockTxRunner{
				withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
					return fn(&mockStoreProvider{assignments: mockAssignments, audit: mockAudit})
				},
			},
			dispatcher,
		)
		Expect(id.Init(1)).To(Succeed())
	})

	Describe("Assign", func() {
		It("creates the assignment and raises article_assigned", func() {
			recordEvents()

			assignment, err := svc.Assign(ctx, article.ID, editor.ID, model.AssignmentTypeEditor, 999)
			Expect(err).NotTo(HaveOccurred())
			Expect(assignment.ArticleID).To(Equal(article.ID))
			Expect(assignment.EditorID).To(Equal(editor.ID))
			Expect(assignment.AssignmentType).To(Equal(model.AssignmentTypeEditor))
			Expect(mockAssignments.createCalls).To(Equal(1))

			Expect(raisedNames).To(Equal([]string{event.ArticleAssigned}))
			Expect(raised[0].Skip).To(BeTrue())
			Expect(raised[0].Acknowledgement).To(BeFalse())
			Expect(raised[0].Article).To(Equal(article))
			Expect(*raised[0].ActorID).To(Equal(int64(999)))
		})

		It("accepts a section editor holding only the section-editor role", func() {
			mockAccounts.listRolesFn = func(_ context.Context, _, journalID int64) ([]string, error) {
				Expect(journalID).To(Equal(article.JournalID))
				return []string{model.RoleSectionEditor}, nil
			}
			recordEvents()

			assignment, err := svc.Assign(ctx, article.ID, editor.ID, model.AssignmentTypeSectionEditor, 999)
			Expect(err).NotTo(HaveOccurred())
			Expect(assignment.AssignmentType).To(Equal(model.AssignmentTypeSectionEditor))
		})

		It("returns ErrAlreadyAssigned on a duplicate pair without raising", func() {
			mockAssignments.createFn = func(_ context.Context, _ *model.EditorAssignment) error {
				return store.ErrConflict
			}
			recordEvents()

			_, err := svc.Assign(ctx, article.ID, editor.ID, model.AssignmentTypeSectionEditor, 999)
			Expect(err).To(MatchError(service.ErrAlreadyAssigned))
			Expect(raised).To(BeEmpty())
		})

		It("returns ErrRoleMismatch without creating anything", func() {
			mockAccounts.listRolesFn = func(_ context.Context, _, _ int64) ([]string, error) {
				return []string{model.RoleSeniorEditor}, nil
			}
			recordEvents()

			_, err := svc.Assign(ctx, article.ID, editor.ID, model.AssignmentTypeEditor, 999)
			Expect(err).To(MatchError(service.ErrRoleMismatch))
			Expect(mockAssignments.createCalls).To(BeZero())
			Expect(raised).To(BeEmpty())
		})

		It("returns ErrArticleNotFound for an unknown article", func() {
			_, err := svc.Assign(ctx, 404, editor.ID, model.AssignmentTypeEditor, 999)
			Expect(err).To(MatchError(service.ErrArticleNotFound))
		})

		It("returns ErrEditorNotFound for an unknown editor", func() {
			_, err := svc.Assign(ctx, article.ID, 404, model.AssignmentTypeEditor, 999)
			Expect(err).To(MatchError(service.ErrEditorNotFound))
		})

		It("keeps the committed assignment when a listener fails", func() {
			dispatcher.Register(event.ArticleAssigned, func(_ context.Context, _ event.AssignmentEvent) error {
				return errors.New("queue unreachable")
			})

			assignment, err := svc.Assign(ctx, article.ID, editor.ID, model.AssignmentTypeEditor, 999)
			Expect(err).To(MatchError(service.ErrEventDelivery))
			Expect(assignment).NotTo(BeNil())
			Expect(mockAssignments.createCalls).To(Equal(1))
		})
	})

	Describe("Unassign", func() {
		It("deletes the assignment and writes an audit entry in one transaction", func() {
			var audited *model.AuditEntry
			mockAudit.appendFn = func(_ context.Context, entry *model.AuditEntry) error {
				audited = entry
				return nil
			}

			err := svc.Unassign(ctx, article.ID, editor.ID, 999)
			Expect(err).NotTo(HaveOccurred())
			Expect(mockAssignments.deleteCalls).To(Equal(1))
			Expect(mockAudit.appendCalls).To(Equal(1))
			Expect(audited.Action).To(Equal("editor_unassigned"))
			Expect(*audited.EditorID).To(Equal(editor.ID))
			Expect(*audited.ActorID).To(Equal(int64(999)))
		})

		It("returns ErrAssignmentNotFound when no assignment exists", func() {
			mockAssignments.deleteFn = func(_ context.Context, _, _ int64) error {
				return store.ErrNotFound
			}

			err := svc.Unassign(ctx, article.ID, editor.ID, 999)
			Expect(err).To(MatchError(service.ErrAssignmentNotFound))
			Expect(mockAudit.appendCalls).To(BeZero())
		})

		It("raises no events", func() {
			recordEvents()

			Expect(svc.Unassign(ctx, article.ID, editor.ID, 999)).To(Succeed())
			Expect(raised).To(BeEmpty())
		})
	})

	Describe("Notify", func() {
		pending := func() *model.EditorAssignment {
			return &model.EditorAssignment{
				ID:             55,
				ArticleID:      article.ID,
				EditorID:       editor.ID,
				AssignmentType: model.AssignmentTypeEditor,
			}
		}

		BeforeEach(func() {
			mockAssignments.getUnnotifiedFn = func(_ context.Context, articleID, editorID int64) (*model.EditorAssignment, error) {
				if articleID == article.ID && editorID == editor.ID {
					return pending(), nil
				}
				return nil, store.ErrNotFound
			}
			mockAssignments.markNotifiedFn = func(_ context.Context, id int64, notifiedAt *time.Time) (*model.EditorAssignment, error) {
				a := pending()
				a.Notified = true
				a.NotifiedAt = notifiedAt
				return a, nil
			}
		})

		It("marks the assignment notified and raises one acknowledgement", func() {
			recordEvents()
			message := "Please review the attached submission."

			updated, err := svc.Notify(ctx, article.ID, editor.ID, &message, false, 999)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Notified).To(BeTrue())
			Expect(updated.NotifiedAt).NotTo(BeNil())

			Expect(raisedNames).To(Equal([]string{event.ArticleAssignedAcknowledge}))
			Expect(raised[0].Acknowledgement).To(BeTrue())
			Expect(raised[0].Skip).To(BeFalse())
			Expect(*raised[0].Message).To(Equal(message))
		})

		It("skips sending: no timestamp, no message, skip flag set", func() {
			recordEvents()

			updated, err := svc.Notify(ctx, article.ID, editor.ID, nil, true, 999)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Notified).To(BeTrue())
			Expect(updated.NotifiedAt).To(BeNil())

			Expect(raisedNames).To(Equal([]string{event.ArticleAssignedAcknowledge}))
			Expect(raised[0].Skip).To(BeTrue())
			Expect(raised[0].Message).To(BeNil())
		})

		It("drops the message when skip is set even if one was provided", func() {
			recordEvents()
			message := "never sent"

			_, err := svc.Notify(ctx, article.ID, editor.ID, &message, true, 999)
			Expect(err).NotTo(HaveOccurred())
			Expect(raised[0].Message).To(BeNil())
		})

		It("returns ErrAssignmentNotFound for an already-notified assignment", func() {
			mockAssignments.getUnnotifiedFn = func(_ context.Context, _, _ int64) (*model.EditorAssignment, error) {
				return nil, store.ErrNotFound
			}
			recordEvents()

			_, err := svc.Notify(ctx, article.ID, editor.ID, nil, true, 999)
			Expect(err).To(MatchError(service.ErrAssignmentNotFound))
			Expect(raised).To(BeEmpty())
		})

		It("returns ErrAssignmentNotFound when losing the mark-notified race", func() {
			mockAssignments.markNotifiedFn = func(_ context.Context, _ int64, _ *time.Time) (*model.EditorAssignment, error) {
				return nil, store.ErrNotFound
			}
			recordEvents()

			_, err := svc.Notify(ctx, article.ID, editor.ID, nil, false, 999)
			Expect(err).To(MatchError(service.ErrAssignmentNotFound))
			Expect(raised).To(BeEmpty())
		})

		It("keeps the notified state when a listener fails", func() {
			dispatcher.Register(event.ArticleAssignedAcknowledge, func(_ context.Context, _ event.AssignmentEvent) error {
				return errors.New("stream down")
			})

			updated, err := svc.Notify(ctx, article.ID, editor.ID, nil, true, 999)
			Expect(err).To(MatchError(service.ErrEventDelivery))
			Expect(updated).NotTo(BeNil())
			Expect(updated.Notified).To(BeTrue())
		})
	})

	Describe("ProposedMessage", func() {
		It("renders the default notification text", func() {
			mockAssignments.getUnnotifiedFn = func(_ context.Context, _, _ int64) (*model.EditorAssignment, error) {
				return &model.EditorAssignment{AssignmentType: model.AssignmentTypeEditor}, nil
			}

			msg, err := svc.ProposedMessage(ctx, article.ID, editor.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(msg).To(ContainSubstring("Dear Robin Okafor"))
			Expect(msg).To(ContainSubstring(`assigned as editor of "Deep Currents"`))
		})

		It("returns ErrAssignmentNotFound once notified", func() {
			mockAssignments.getUnnotifiedFn = func(_ context.Context, _, _ int64) (*model.EditorAssignment, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.ProposedMessage(ctx, article.ID, editor.ID)
			Expect(err).To(MatchError(service.ErrAssignmentNotFound))
		})
	})

	Describe("full workflow", func() {
		It("assigns then notifies with a composed message", func() {
			recordEvents()

			var created *model.EditorAssignment
			mockAssignments.createFn = func(_ context.Context, a *model.EditorAssignment) error {
				created = a
				return nil
			}
			mockAssignments.getUnnotifiedFn = func(_ context.Context, _, _ int64) (*model.EditorAssignment, error) {
				return created, nil
			}
			mockAssignments.markNotifiedFn = func(_ context.Context, id int64, notifiedAt *time.Time) (*model.EditorAssignment, error) {
				Expect(id).To(Equal(created.ID))
				created.Notified = true
				created.NotifiedAt = notifiedAt
				return created, nil
			}

			_, err := svc.Assign(ctx, article.ID, editor.ID, model.AssignmentTypeEditor, 999)
			Expect(err).NotTo(HaveOccurred())

			message := "Please review"
			updated, err := svc.Notify(ctx, article.ID, editor.ID, &message, false, 999)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Notified).To(BeTrue())

			Expect(raisedNames).To(Equal([]string{
				event.ArticleAssigned,
				event.ArticleAssignedAcknowledge,
			}))
			Expect(*raised[1].Message).To(Equal("Please review"))
		})
	})
})
