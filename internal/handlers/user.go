package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/services"
)

type UserHandler struct {
	redisService *services.RedisService
}

func NewUserHandler(redisService *services.RedisService) *UserHandler {
	return &UserHandler{
		redisService: redisService,
	}
}

// session loads the caller's session and answers 401 when it is gone.
func (h *UserHandler) session(c *gin.Context) (*models.UserSession, bool) {
	fid := c.GetInt64("user_id")
	sessionID := c.GetString("session_id")
	if fid == 0 || sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	session, err := h.redisService.GetUserSession(c.Request.Context(), fid, sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid", "details": err.Error()})
		return nil, false
	}
	return session, true
}

// GetCurrentUser returns the signed-in Farcaster user. The stored profile
// wins over the session copy so renames show up without signing in again.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	user := session.User
	if latest, err := h.redisService.GetUser(c.Request.Context(), session.ID); err == nil {
		user = *latest
	}

	c.JSON(http.StatusOK, gin.H{
		"user":           user,
		"wallet_address": c.GetString("address"),
		"session": gin.H{
			"session_id":    session.SessionID,
			"created_at":    session.CreatedAt,
			"last_accessed": session.LastAccessed,
		},
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.redisService.DeleteUserSession(ctx, session.ID, session.SessionID); err != nil {
		respondError(c, "Failed to logout", err)
		return
	}
	if addr := session.User.Address; addr != "" {
		_ = h.redisService.InvalidatePlayerStats(ctx, addr)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
