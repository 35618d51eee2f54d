package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"accounts-api/internal/domain"
)

// contextUserKey is where authRequired stores the resolved user.
const contextUserKey = "auth.user"

// authRequired resolves the session for the current request: token from
// the access_token cookie, falling back to a bearer Authorization
// header, decoded and mapped to a live user record. Every failure mode
// collapses to a single 401; only store unavailability differs (503).
// The lookup hits the store on every request so a deleted user is
// locked out immediately, valid token or not.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := extractToken(c)
		if tok == "" {
			abortUnauthenticated(c)
			return
		}

		subject, err := h.tokens.Decode(tok)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		userID, err := strconv.ParseInt(subject, 10, 64)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		user, err := h.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrStoreUnavailable) {
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": domain.ErrStoreUnavailable.Error()})
				return
			}
			abortUnauthenticated(c)
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if tok, err := c.Cookie(cookieName); err == nil && tok != "" {
		return tok
	}
	auth := c.GetHeader("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthenticated.Error()})
}

// currentUser returns the user attached by authRequired, or nil.
func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return user
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: true,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		// Wildcard origins cannot be combined with credentials.
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request handled")
	}
}
