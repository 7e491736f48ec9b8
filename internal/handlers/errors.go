package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/services"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrWalletNotConnected),
		errors.Is(err, services.ErrQuickAuthNotEnabled):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNoActiveGames):
		return http.StatusNotFound
	case errors.Is(err, services.ErrGuessInFlight),
		errors.Is(err, services.ErrGameNotActive),
		errors.Is(err, services.ErrGameExpired):
		return http.StatusConflict
	case errors.Is(err, services.ErrSignerMismatch),
		errors.Is(err, services.ErrUnexpectedMethod),
		errors.Is(err, services.ErrGameMismatch),
		errors.Is(err, services.ErrInsufficientFee),
		errors.Is(err, services.ErrEmptyGuess),
		errors.Is(err, contract.ErrForeignTransaction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, summary string, err error) {
	c.JSON(statusFor(err), gin.H{
		"error":   summary,
		"details": err.Error(),
	})
}

func gameIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid game id",
			"details": err.Error(),
		})
		return 0, false
	}
	return id, true
}
