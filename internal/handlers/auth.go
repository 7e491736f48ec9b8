package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/decred/slog"
	"github.com/gin-gonic/gin"

	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/services"
)

type AuthHandler struct {
	redisService *services.RedisService
	jwtService   *services.JWTService
	verifier     *services.QuickAuthVerifier
	// allowUnverified lets development builds sign in without a quick
	// auth key.
	allowUnverified bool
	log             slog.Logger
}

func NewAuthHandler(redisService *services.RedisService, jwtService *services.JWTService, verifier *services.QuickAuthVerifier, allowUnverified bool, log slog.Logger) *AuthHandler {
	return &AuthHandler{
		redisService:    redisService,
		jwtService:      jwtService,
		verifier:        verifier,
		allowUnverified: allowUnverified,
		log:             logging.OrDisabled(log),
	}
}

// SignIn exchanges a Farcaster quick auth token for a session token.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if err := h.verify(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Invalid authentication",
			"details": err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	now := time.Now()

	user := &models.User{
		FID:         req.FID,
		Username:    req.Username,
		DisplayName: req.DisplayName,
		PfpURL:      req.PfpURL,
		ReferrerFID: req.ReferrerFID,
		CreatedAt:   now.Unix(),
		UpdatedAt:   now.Unix(),
	}
	if req.Address != "" {
		addr, _ := models.ParseAddress(req.Address)
		user.Address = addr.Hex()
	}
	if existing, err := h.redisService.GetUser(ctx, req.FID); err == nil {
		user.CreatedAt = existing.CreatedAt
		if user.ReferrerFID == 0 {
			user.ReferrerFID = existing.ReferrerFID
		}
	}

	if err := h.redisService.StoreUser(ctx, user); err != nil {
		h.log.Errorf("Failed to store user %d: %v", user.FID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store user"})
		return
	}

	session := &models.UserSession{
		ID:           user.FID,
		SessionID:    models.GenerateSessionID(),
		User:         *user,
		CreatedAt:    now,
		LastAccessed: now,
	}
	if err := h.redisService.StoreUserSession(ctx, session, services.TTLUserSession); err != nil {
		h.log.Errorf("Failed to create session for %d: %v", user.FID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(user.FID, session.SessionID, user.Address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	h.log.Infof("User %d signed in", user.FID)
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"user":       user,
	})
}

func (h *AuthHandler) verify(req *models.SignInRequest) error {
	if h.verifier == nil {
		if !h.allowUnverified {
			return services.ErrQuickAuthNotEnabled
		}
		h.log.Warnf("Quick auth is not configured, accepting fid %d unverified", req.FID)
		return nil
	}

	fid, err := h.verifier.Verify(req.Token)
	if err != nil {
		return err
	}
	if fid != req.FID {
		return fmt.Errorf("token subject %d does not match fid %d", fid, req.FID)
	}
	return nil
}
