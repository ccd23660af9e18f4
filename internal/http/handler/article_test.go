package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pressdesk.app/unassigned/internal/http/handler"
	"pressdesk.app/unassigned/internal/model"
	"pressdesk.app/unassigned/internal/service"
)

var _ = Describe("ArticleHandler", func() {
	var (
		router *gin.Engine
		svc    *mockArticleService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockArticleService{}
		h := handler.NewArticleHandler(svc)

		router.GET("/journals/:journal_id/unassigned", h.ListUnassigned)
		router.GET("/articles/:article_id", h.Detail)
		router.POST("/articles/:article_id/crosscheck", h.SubmitCrosscheck)
	})

	Describe("ListUnassigned", func() {
		It("returns the journal's unassigned articles", func() {
			svc.listUnassignedFn = func(_ context.Context, journalID int64) ([]model.Article, error) {
				Expect(journalID).To(Equal(int64(7)))
				return []model.Article{
					{ID: 1, JournalID: 7, Title: "First", Stage: model.StageUnassigned},
					{ID: 2, JournalID: 7, Title: "Second", Stage: model.StageUnassigned},
				}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/journals/7/unassigned", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string][]map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["articles"]).To(HaveLen(2))
			Expect(resp["articles"][0]["id"]).To(Equal("1"))
		})

		It("returns 400 for a malformed journal id", func() {
			req := httptest.NewRequest(http.MethodGet, "/journals/abc/unassigned", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Detail", func() {
		It("returns the article with assignments and candidates", func() {
			svc.detailFn = func(_ context.Context, articleID int64) (*service.ArticleDetail, error) {
				return &service.ArticleDetail{
					Article:        &model.Article{ID: articleID, JournalID: 7, Title: "Deep Currents"},
					Assignments:    []model.EditorAssignment{{ID: 1, ArticleID: articleID, EditorID: 200}},
					Editors:        []model.Account{{ID: 201, Name: "A"}},
					SectionEditors: []model.Account{{ID: 301, Name: "B"}},
				}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/articles/100", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["assignments"]).To(HaveLen(1))
			Expect(resp["editors"]).To(HaveLen(1))
			Expect(resp["section_editors"]).To(HaveLen(1))
		})

		It("returns 404 for an unknown article", func() {
			svc.detailFn = func(_ context.Context, _ int64) (*service.ArticleDetail, error) {
				return nil, service.ErrArticleNotFound
			}

			req := httptest.NewRequest(http.MethodGet, "/articles/404", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("SubmitCrosscheck", func() {
		postCrosscheck := func(body string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/articles/100/crosscheck", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w
		}

		It("returns 202 with the pending report", func() {
			svc.submitCrosscheckFn = func(_ context.Context, articleID int64, fileURL string) (*model.Article, error) {
				Expect(fileURL).To(Equal("https://files.example.org/100.pdf"))
				reportID := "rpt-9"
				return &model.Article{ID: articleID, CrosscheckID: &reportID}, nil
			}

			w := postCrosscheck(`{"file_url":"https://files.example.org/100.pdf"}`)

			Expect(w.Code).To(Equal(http.StatusAccepted))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["crosscheck_id"]).To(Equal("rpt-9"))
		})

		It("returns 503 when crosscheck is not configured", func() {
			svc.submitCrosscheckFn = func(_ context.Context, _ int64, _ string) (*model.Article, error) {
				return nil, service.ErrCrosscheckDisabled
			}

			w := postCrosscheck(`{"file_url":"https://files.example.org/100.pdf"}`)
			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		})

		It("returns 400 without a file url", func() {
			w := postCrosscheck(`{}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
