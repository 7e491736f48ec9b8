package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/decred/slog"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/network"
	"github.com/chevoisiatesalvati/guess-what/internal/services"
	"github.com/chevoisiatesalvati/guess-what/internal/words"
)

type GameHandler struct {
	contract     *services.ContractService
	relay        *services.GuessRelay
	redisService *services.RedisService
	network      network.Network
	log          slog.Logger
}

func NewGameHandler(contract *services.ContractService, relay *services.GuessRelay, redisService *services.RedisService, net network.Network, log slog.Logger) *GameHandler {
	return &GameHandler{
		contract:     contract,
		relay:        relay,
		redisService: redisService,
		network:      net,
		log:          logging.OrDisabled(log),
	}
}

func (h *GameHandler) GetActiveCount(c *gin.Context) {
	count := h.contract.GetActiveGamesCount(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *GameHandler) GetRandomGame(c *gin.Context) {
	ctx := c.Request.Context()

	if h.contract.GetActiveGamesCount(ctx) == 0 {
		respondError(c, "No active games", services.ErrNoActiveGames)
		return
	}

	info, err := h.contract.GetGameInfo(ctx, h.contract.GetRandomActiveGame(ctx))
	if err != nil {
		respondError(c, "Failed to load game", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": models.NewGame(info)})
}

func (h *GameHandler) GetGame(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	info, err := h.contract.GetGameInfo(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, "Failed to load game", err)
		return
	}
	// unknown ids read back as an empty struct
	if info.TopWord == "" && (info.EntryFee == nil || info.EntryFee.Sign() == 0) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"game":      models.NewGame(info),
		"available": info.Available(),
	})
}

func (h *GameHandler) GetGuessCallData(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	guess := c.Query("guess")
	if words.Normalize(guess) == "" {
		respondError(c, "Invalid guess", services.ErrEmptyGuess)
		return
	}

	call, err := h.relay.Prepare(c.Request.Context(), gameID, guess)
	if err != nil {
		respondError(c, "Failed to prepare guess", err)
		return
	}

	c.JSON(http.StatusOK, h.callDataResponse(call))
}

func (h *GameHandler) SubmitGuess(c *gin.Context) {
	userID := c.GetInt64("user_id")

	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	player, err := models.ParseAddress(c.GetString("address"))
	if err != nil {
		respondError(c, "Wallet required", services.ErrWalletNotConnected)
		return
	}

	var req models.SignedTxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	raw, err := decodeSignedTx(req.SignedTx)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid signed transaction",
			"details": err.Error(),
		})
		return
	}

	allowed, err := h.redisService.CheckRateLimit(c.Request.Context(), userID, "guess", services.DefaultRateLimitGuesses, time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
		return
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many guesses. Please wait."})
		return
	}

	result, err := h.relay.Submit(c.Request.Context(), player, gameID, raw)
	if err != nil {
		respondError(c, "Failed to submit guess", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}

// GetPlayerStats serves a player's on-chain stats through a short cache.
func (h *GameHandler) GetPlayerStats(c *gin.Context) {
	addr, err := models.ParseAddress(c.Param("address"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid address",
			"details": err.Error(),
		})
		return
	}

	h.respondStats(c, addr)
}

func (h *GameHandler) GetMyStats(c *gin.Context) {
	addr, err := models.ParseAddress(c.GetString("address"))
	if err != nil {
		respondError(c, "Wallet required", services.ErrWalletNotConnected)
		return
	}

	h.respondStats(c, addr)
}

func (h *GameHandler) respondStats(c *gin.Context, addr common.Address) {
	ctx := c.Request.Context()
	address := addr.Hex()

	cached, err := h.redisService.GetCachedPlayerStats(ctx, address)
	if err != nil {
		h.log.Warnf("Failed to read cached stats for %s: %v", address, err)
	}
	if cached != nil {
		c.JSON(http.StatusOK, gin.H{"stats": cached})
		return
	}

	raw, ok := h.contract.LookupPlayerStats(ctx, addr)
	stats := models.NewPlayerStats(address, raw, time.Now())
	if ok {
		if err := h.redisService.CachePlayerStats(ctx, stats); err != nil {
			h.log.Warnf("Failed to cache stats for %s: %v", address, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *GameHandler) GetLeaderboard(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", strconv.Itoa(services.DefaultLeaderboardSize)), 10, 64)
	if err != nil || limit <= 0 {
		limit = services.DefaultLeaderboardSize
	}
	if limit > services.MaxLeaderboardSize {
		limit = services.MaxLeaderboardSize
	}

	entries, err := h.redisService.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		respondError(c, "Failed to load leaderboard", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *GameHandler) callDataResponse(call *contract.CallData) *models.CallDataResponse {
	return callDataResponse(call, h.network)
}

func callDataResponse(call *contract.CallData, net network.Network) *models.CallDataResponse {
	value := "0"
	if call.Value != nil {
		value = call.Value.String()
	}
	return &models.CallDataResponse{
		To:      call.To.Hex(),
		Data:    hexutil.Encode(call.Data),
		Value:   value,
		ChainID: net.ChainID,
	}
}

func decodeSignedTx(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}
