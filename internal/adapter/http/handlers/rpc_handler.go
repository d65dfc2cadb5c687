package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"giramae/internal/adapter/http/dto/request"
	"giramae/internal/adapter/http/dto/response"
	"giramae/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RPCHandler keeps the database-function style endpoints the web client calls by name.
type RPCHandler struct {
	reservations usecase.IReservationUseCase
	queue        usecase.IQueueUseCase
}

func NewRPCHandler(reservations usecase.IReservationUseCase, queue usecase.IQueueUseCase) *RPCHandler {
	return &RPCHandler{reservations: reservations, queue: queue}
}

// ObterFilaEspera godoc
// @Summary obter_fila_espera
// @Tags rpc
// @Accept json
// @Produce json
// @Param body body request.ObterFilaEsperaRequest true "args"
// @Success 200 {object} response.QueueInfoResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/rpc/obter_fila_espera [post]
func (h *RPCHandler) ObterFilaEspera(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request.ObterFilaEsperaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	info, err := h.queue.GetQueueInfo(c.Request.Context(), req.PItemID, userID)
	if err != nil {
		log.Printf("[rpc][handler] obter_fila_espera failed item_id=%s err=%v", req.PItemID, err)
		appErr := mapReadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQueueInfo(info))
}

// FinalizarTrocaComCodigo godoc
// @Summary finalizar_troca_com_codigo
// @Description Business failures answer 200 with sucesso=false and a user-facing erro.
// @Tags rpc
// @Accept json
// @Produce json
// @Param body body request.FinalizarTrocaRequest true "args"
// @Success 200 {object} response.FinalizarTrocaResponse
// @Failure 503 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/rpc/finalizar_troca_com_codigo [post]
func (h *RPCHandler) FinalizarTrocaComCodigo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request.FinalizarTrocaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	result, err := h.reservations.ConfirmWithCode(c.Request.Context(), req.PReservaID, req.PCodigo, userID)
	if err != nil {
		if msg, ok := exchangeFailureMessage(err); ok {
			log.Printf("[rpc][handler] finalizar_troca rejected reserva_id=%s err=%v", req.PReservaID, err)
			c.JSON(http.StatusOK, response.FinalizarTrocaResponse{Sucesso: false, Erro: msg})
			return
		}
		log.Printf("[rpc][handler] finalizar_troca failed reserva_id=%s err=%v", req.PReservaID, err)
		appErr := mapMutationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExchangeResult(result))
}

// ProcessarReservasExpiradasBatch godoc
// @Summary processar_reservas_expiradas_batch
// @Tags rpc
// @Accept json
// @Produce json
// @Param body body request.ProcessExpiredRequest false "args"
// @Success 200 {integer} int "processed reservations"
// @Failure 500 {object} pkg.HTTPError
// @Security ServiceKey
// @Router /v1/rpc/processar_reservas_expiradas_batch [post]
func (h *RPCHandler) ProcessarReservasExpiradasBatch(c *gin.Context) {
	batchSize, ok := readBatchSize(c)
	if !ok {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	processed, err := h.reservations.ProcessExpiredBatch(c.Request.Context(), batchSize)
	if err != nil {
		log.Printf("[rpc][handler] expiration batch failed processed=%d err=%v", processed, err)
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, processed)
}

// exchangeFailureMessage returns the message shown to the seller for failures the
// client renders inline instead of as an error page.
func exchangeFailureMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, usecase.ErrInvalidConfirmationCode):
		return "Código de confirmação inválido", true
	case errors.Is(err, usecase.ErrReservationNotFound), errors.Is(err, usecase.ErrInvalidReservationID):
		return "Reserva não encontrada", true
	case errors.Is(err, usecase.ErrReservationNotPending):
		return "Reserva não está mais pendente", true
	case errors.Is(err, usecase.ErrReservationExpired):
		return "Reserva expirada", true
	}
	return "", false
}

// readBatchSize accepts an empty body as "use the configured default".
func readBatchSize(c *gin.Context) (int, bool) {
	if c.Request.ContentLength == 0 {
		return 0, true
	}
	var req request.ProcessExpiredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Chunked requests report an unknown length, so an empty body only shows up here.
		if errors.Is(err, io.EOF) {
			return 0, true
		}
		return 0, false
	}
	return req.BatchSize, true
}
