package handlers

import (
	"log"
	"net/http"

	"giramae/internal/adapter/http/dto/request"
	"giramae/internal/adapter/http/dto/response"
	"giramae/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReservationHandler exposes the reservation lifecycle. Queue summaries cached for the
// caller are dropped whenever the caller's own request changes the queue.
type ReservationHandler struct {
	usecase   usecase.IReservationUseCase
	queueInfo usecase.IQueueInfoService
}

func NewReservationHandler(uc usecase.IReservationUseCase, queueInfo usecase.IQueueInfoService) *ReservationHandler {
	return &ReservationHandler{usecase: uc, queueInfo: queueInfo}
}

// RequestItem godoc
// @Summary Reserve an item or join its waiting queue
// @Description 201 with the reservation when the item was free, 202 with the queue entry otherwise.
// @Tags reservations
// @Produce json
// @Param item_id path string true "item id"
// @Success 201 {object} response.ReservationResponse
// @Success 202 {object} response.QueueEntryResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/items/{item_id}/reservations [post]
func (h *ReservationHandler) RequestItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	log.Printf("[reservation][handler] request start item_id=%s user_id=%s", itemID, userID)

	result, err := h.usecase.RequestItem(c.Request.Context(), itemID, userID)
	if err != nil {
		log.Printf("[reservation][handler] request failed item_id=%s user_id=%s err=%v", itemID, userID, err)
		appErr := mapMutationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.queueInfo.Invalidate(userID, itemID)

	if result.Reservation != nil {
		c.JSON(http.StatusCreated, response.FromReservation(*result.Reservation, userID))
		return
	}
	if result.QueueEntry != nil {
		c.JSON(http.StatusAccepted, response.FromQueueEntry(*result.QueueEntry))
		return
	}
	c.Status(http.StatusNoContent)
}

// Confirm godoc
// @Summary Confirm an exchange with the requester's code
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation_id path string true "reservation id"
// @Param body body request.ConfirmReservationRequest true "code"
// @Success 200 {object} response.FinalizarTrocaResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/reservations/{reservation_id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reservationID := c.Param("reservation_id")
	var req request.ConfirmReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[reservation][handler] invalid code payload reserva_id=%s err=%v", reservationID, err)
		appErr := mapMarketplaceError(usecase.ErrInvalidConfirmationCode)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.ConfirmWithCode(c.Request.Context(), reservationID, req.Codigo, userID)
	if err != nil {
		log.Printf("[reservation][handler] confirm failed reserva_id=%s err=%v", reservationID, err)
		appErr := mapMutationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[reservation][handler] confirm success reserva_id=%s credited=%.2f", reservationID, result.ValorCreditado)
	c.JSON(http.StatusOK, response.FromExchangeResult(result))
}

// Cancel godoc
// @Summary Cancel a pending reservation
// @Tags reservations
// @Produce json
// @Param reservation_id path string true "reservation id"
// @Success 200 {object} response.ReservationResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/reservations/{reservation_id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reservationID := c.Param("reservation_id")

	cancelled, err := h.usecase.Cancel(c.Request.Context(), reservationID, userID)
	if err != nil {
		log.Printf("[reservation][handler] cancel failed reserva_id=%s user_id=%s err=%v", reservationID, userID, err)
		appErr := mapMutationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.queueInfo.Invalidate(userID, cancelled.ItemID)
	c.JSON(http.StatusOK, response.FromReservation(cancelled, userID))
}

// LeaveQueue godoc
// @Summary Leave an item's waiting queue
// @Tags reservations
// @Param item_id path string true "item id"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/items/{item_id}/queue [delete]
func (h *ReservationHandler) LeaveQueue(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID := c.Param("item_id")

	if err := h.usecase.LeaveQueue(c.Request.Context(), itemID, userID); err != nil {
		log.Printf("[reservation][handler] leave queue failed item_id=%s user_id=%s err=%v", itemID, userID, err)
		appErr := mapMutationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.queueInfo.Invalidate(userID, itemID)
	c.Status(http.StatusNoContent)
}
