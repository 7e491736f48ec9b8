package handlers

import (
	"net/http"
	"sync"

	"github.com/decred/slog"
	"github.com/gin-gonic/gin"

	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/services"
)

// PlayHandler serves the in-memory demo game. Every signed in user gets
// their own view and backend.
type PlayHandler struct {
	newBackend func() *services.LocalBackend
	resolver   *services.PrizeResolver
	log        slog.Logger

	mu       sync.Mutex
	sessions map[int64]*playSession
}

type playSession struct {
	view    *services.GameView
	backend *services.LocalBackend
}

type GuessRequest struct {
	Guess string `json:"guess" binding:"required"`
}

func NewPlayHandler(newBackend func() *services.LocalBackend, resolver *services.PrizeResolver, log slog.Logger) *PlayHandler {
	return &PlayHandler{
		newBackend: newBackend,
		resolver:   resolver,
		log:        logging.OrDisabled(log),
		sessions:   make(map[int64]*playSession),
	}
}

func (h *PlayHandler) session(c *gin.Context) *playSession {
	userID := c.GetInt64("user_id")

	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[userID]
	if !ok {
		backend := h.newBackend()
		s = &playSession{
			backend: backend,
			view: services.NewGameView(services.GameViewConfig{
				Backend:  backend,
				Resolver: h.resolver,
				Player:   c.GetString("address"),
				Log:      h.log,
			}),
		}
		h.sessions[userID] = s
	}
	return s
}

func (h *PlayHandler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, h.session(c).view.Snapshot())
}

// Start begins a new round, ending the current one first.
func (h *PlayHandler) Start(c *gin.Context) {
	s := h.session(c)

	if err := s.view.Next(c.Request.Context()); err != nil {
		respondError(c, "Failed to start game", err)
		return
	}

	c.JSON(http.StatusOK, s.view.Snapshot())
}

func (h *PlayHandler) Guess(c *gin.Context) {
	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	s := h.session(c)
	s.view.SetInput(req.Guess)

	result, err := s.view.Submit(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to submit guess", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result,
		"view":   s.view.Snapshot(),
	})
}

func (h *PlayHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.session(c).backend.Stats()})
}
