package handlers

import (
	"net/http"

	"github.com/decred/slog"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/network"
	"github.com/chevoisiatesalvati/guess-what/internal/services"
)

// AdminHandler serves the admin pages. The role checks here only decide
// what the caller is offered; the contract rejects unauthorized
// transactions on its own.
type AdminHandler struct {
	admin   *services.AdminService
	network network.Network
	log     slog.Logger
}

func NewAdminHandler(admin *services.AdminService, net network.Network, log slog.Logger) *AdminHandler {
	return &AdminHandler{
		admin:   admin,
		network: net,
		log:     logging.OrDisabled(log),
	}
}

func (h *AdminHandler) access(c *gin.Context) *models.AdminAccess {
	addr, err := models.ParseAddress(c.GetString("address"))
	if err != nil {
		return services.Access(common.Address{}, false, false)
	}
	return h.admin.ResolveAccess(c.Request.Context(), addr)
}

func (h *AdminHandler) GetAccess(c *gin.Context) {
	access := h.access(c)
	c.JSON(http.StatusOK, gin.H{"access": access, "controls": access.Controls()})
}

func (h *AdminHandler) GetAdmins(c *gin.Context) {
	c.JSON(http.StatusOK, h.admin.Admins(c.Request.Context()))
}

func (h *AdminHandler) GetTreasury(c *gin.Context) {
	c.JSON(http.StatusOK, h.admin.Treasury(c.Request.Context()))
}

func (h *AdminHandler) CreateGameCallData(c *gin.Context) {
	var req models.CreateGameRequest
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

	call, err := h.admin.CreateGameCallData(h.access(c), req)
	if err != nil {
		respondError(c, "Failed to prepare game", err)
		return
	}

	c.JSON(http.StatusOK, callDataResponse(call, h.network))
}

// RelayTx sends an admin transaction signed by the caller's wallet.
func (h *AdminHandler) RelayTx(c *gin.Context) {
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

	result, err := h.admin.RelayAdminTx(c.Request.Context(), h.access(c), raw)
	if err != nil {
		respondError(c, "Failed to send transaction", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"result":      result,
		"transaction": models.NewTransaction(result.Tx, h.network.TxURL(result.Tx.Hash)),
	})
}
