package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/decred/slog"
	"github.com/gin-gonic/gin"

	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/og"
	"github.com/chevoisiatesalvati/guess-what/internal/sharing"
)

type OGHandler struct {
	sharing     *sharing.Builder
	association sharing.AccountAssociation
	log         slog.Logger
}

func NewOGHandler(builder *sharing.Builder, association sharing.AccountAssociation, log slog.Logger) *OGHandler {
	return &OGHandler{
		sharing:     builder,
		association: association,
		log:         logging.OrDisabled(log),
	}
}

// GameWin renders the preview card embedded in shared win casts.
func (h *OGHandler) GameWin(c *gin.Context) {
	gameID := c.Query("gameId")
	prize := c.DefaultQuery("prize", "0")

	card := og.WinCard{
		GameID: gameID,
		Prize:  prize,
		Player: c.Query("player"),
		ShareURL: h.sharing.URL(sharing.Data{
			Kind:   sharing.KindGameWin,
			GameID: gameID,
			Prize:  prize,
		}),
	}

	var buf bytes.Buffer
	if err := og.RenderWin(&buf, card); err != nil {
		h.log.Errorf("Failed to render win image for game %s: %v", gameID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate image",
			"details": err.Error(),
		})
		return
	}

	c.Header("Cache-Control", "public, max-age=86400, immutable")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *OGHandler) Manifest(c *gin.Context) {
	c.JSON(http.StatusOK, h.sharing.Manifest(h.association))
}

// ShareLinks builds the share text and links for one moment, described by
// the query string.
func (h *OGHandler) ShareLinks(c *gin.Context) {
	kind := sharing.Kind(c.Param("kind"))
	switch kind {
	case sharing.KindGameWin, sharing.KindAchievement, sharing.KindLeaderboard, sharing.KindChallenge:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown share kind"})
		return
	}

	accuracy, _ := strconv.ParseFloat(c.Query("accuracy"), 64)
	games, _ := strconv.ParseUint(c.Query("games"), 10, 64)
	position, _ := strconv.Atoi(c.Query("position"))

	c.JSON(http.StatusOK, h.sharing.Links(sharing.Data{
		Kind:        kind,
		GameID:      c.Query("gameId"),
		Prize:       c.Query("prize"),
		Player:      c.Query("player"),
		Accuracy:    accuracy,
		GamesPlayed: games,
		Position:    position,
		Achievement: c.Query("achievement"),
	}))
}
