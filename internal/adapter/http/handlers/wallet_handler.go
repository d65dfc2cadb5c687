package handlers

import (
	"log"
	"net/http"
	"strconv"

	"giramae/internal/adapter/http/dto/response"
	"giramae/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	usecase usecase.IWalletUseCase
}

func NewWalletHandler(uc usecase.IWalletUseCase) *WalletHandler {
	return &WalletHandler{usecase: uc}
}

// GetWallet godoc
// @Summary Girinhas balance
// @Tags wallet
// @Produce json
// @Success 200 {object} response.WalletResponse
// @Failure 503 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	wallet, err := h.usecase.GetWallet(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[wallet][handler] get failed user_id=%s err=%v", userID, err)
		appErr := mapReadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWallet(wallet))
}

// ListTransactions godoc
// @Summary Ledger entries, newest first
// @Tags wallet
// @Produce json
// @Param limit query int false "max entries (default 50, max 200)"
// @Success 200 {array} response.TransactionResponse
// @Failure 503 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/wallet/transactions [get]
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
		limit = v
	}

	list, err := h.usecase.ListTransactions(c.Request.Context(), userID, limit)
	if err != nil {
		log.Printf("[wallet][handler] transactions failed user_id=%s err=%v", userID, err)
		appErr := mapReadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(list))
}
