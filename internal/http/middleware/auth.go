package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"pressdesk.app/unassigned/internal/model"
	"pressdesk.app/unassigned/internal/service"
	"pressdesk.app/unassigned/internal/store"
)

type contextKey string

const (
	sessionCookieName              = "unassigned_session"
	accountContextKey   contextKey = "account"
	sessionIDContextKey contextKey = "session_id"
)

func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := getSessionID(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		account, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrAccountNotFound) {
				clearSessionCookie(c)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			return
		}

		ctx := WithAccount(c.Request.Context(), account)
		ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole gates a route on the caller holding one of the given roles in
// the journal the request targets. The journal comes from the :journal_id
// param when present, otherwise from the :article_id param's article. Runs
// after RequireAuth.
func RequireRole(articles store.ArticleStore, accounts store.AccountStore, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := GetAccount(c.Request.Context())
		if account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		journalID, ok := resolveJournalID(c, articles)
		if !ok {
			return
		}

		held, err := accounts.ListRoles(c.Request.Context(), account.ID, journalID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to check roles"})
			return
		}

		for _, role := range roles {
			if slices.Contains(held, role) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}

func resolveJournalID(c *gin.Context, articles store.ArticleStore) (int64, bool) {
	if raw := c.Param("journal_id"); raw != "" {
		journalID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid journal id"})
			return 0, false
		}
		return journalID, true
	}

	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return 0, false
	}

	article, err := articles.GetByID(c.Request.Context(), articleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return 0, false
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load article"})
		return 0, false
	}
	return article.JournalID, true
}

// WithAccount returns a context carrying the authenticated account.
func WithAccount(ctx context.Context, account *model.Account) context.Context {
	return context.WithValue(ctx, accountContextKey, account)
}

func GetAccount(ctx context.Context) *model.Account {
	account, _ := ctx.Value(accountContextKey).(*model.Account)
	return account
}

func GetSessionID(ctx context.Context) int64 {
	sessionID, _ := ctx.Value(sessionIDContextKey).(int64)
	return sessionID
}

func getSessionID(c *gin.Context) (int64, error) {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(cookie, 10, 64)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(
		sessionCookieName,
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
}
