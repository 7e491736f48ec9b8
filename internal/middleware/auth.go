package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chevoisiatesalvati/guess-what/internal/services"
)

// bearerToken reads the session token from the Authorization header, or from
// ?token= on websocket upgrades where browsers cannot set headers. The
// second result is the client-facing problem when there is no token.
func bearerToken(c *gin.Context) (string, string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if token := c.Query("token"); token != "" {
			return token, ""
		}
		return "", "Authorization header required"
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != "Bearer" || token == "" {
		return "", "Invalid authorization format"
	}
	return token, ""
}

// AuthMiddleware validates the app session token and exposes the Farcaster
// id, session id and wallet address to handlers.
func AuthMiddleware(jwtService *services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, problem := bearerToken(c)
		if problem != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": problem})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("session_id", claims.SessionID)
		c.Set("address", claims.Address)

		c.Next()
	}
}

// RateLimiter is the part of the Redis service the rate limit needs.
type RateLimiter interface {
	CheckRateLimit(ctx context.Context, userID int64, action string, limit int, window time.Duration) (bool, error)
}

type rateRule struct {
	suffix string
	action string
	limit  int
}

// Guess submissions are limited inside the game handler.
var rateRules = []rateRule{
	{"/admin/tx", "admin_tx", services.DefaultRateLimitAdmin},
	{"/admin/games/calldata", "admin_calldata", services.DefaultRateLimitAdmin},
	{"/calldata", "calldata", 60},
	{"/play/guess", "play_guess", 120},
}

func RateLimitMiddleware(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		if userID == 0 {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		for _, rule := range rateRules {
			if !strings.HasSuffix(path, rule.suffix) {
				continue
			}

			allowed, err := limiter.CheckRateLimit(c.Request.Context(), userID, rule.action, rule.limit, time.Minute)
			if err != nil || !allowed {
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
					"error":       "Rate limit exceeded",
					"retry_after": time.Minute.Seconds(),
				})
				return
			}
			break
		}

		c.Next()
	}
}
