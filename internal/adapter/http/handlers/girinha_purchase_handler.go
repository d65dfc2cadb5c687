package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"giramae/internal/adapter/http/dto/request"
	"giramae/internal/adapter/http/dto/response"
	"giramae/internal/config"
	"giramae/internal/usecase"
	"giramae/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// GirinhaPurchaseHandler handles HTTP requests for Girinha purchases.
type GirinhaPurchaseHandler struct {
	usecase usecase.IGirinhaPurchaseUseCase
}

func NewGirinhaPurchaseHandler(uc usecase.IGirinhaPurchaseUseCase) *GirinhaPurchaseHandler {
	return &GirinhaPurchaseHandler{usecase: uc}
}

// Create godoc
// @Summary Buy Girinhas
// @Description Charges the buyer through Mercado Pago and credits the wallet once approved.
// @Tags girinhas
// @Accept json
// @Produce json
// @Param body body request.GirinhaPurchaseCreateRequest true "quantidade and Mercado Pago payload"
// @Success 200 {object} response.GirinhaPurchaseResponse
// @Failure 400 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/girinhas/purchases [post]
func (h *GirinhaPurchaseHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	log.Printf("[purchase][handler] create start user_id=%s", userID)
	mockMode := isPaymentGatewayMockEnabled()
	req, err := readPurchaseRequest(c)
	if err != nil {
		if mockMode && req.Quantidade > 0 {
			log.Printf("[purchase][handler] payload invalid in mock mode; fallback to empty payload user_id=%s err=%v", userID, err)
			req.MPPayload = json.RawMessage("{}")
		} else {
			log.Printf("[purchase][handler] invalid payload user_id=%s err=%v", userID, err)
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), userID, req.Quantidade, req.MPPayload)
	if err != nil {
		log.Printf("[purchase][handler] create failed user_id=%s err=%v", userID, err)
		appErr := mapGirinhaPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[purchase][handler] create success user_id=%s purchase_id=%s status=%s", userID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromGirinhaPurchase(created))
}

// GetByID godoc
// @Summary Get a Girinha purchase
// @Tags girinhas
// @Produce json
// @Param purchase_id path string true "purchase id"
// @Success 200 {object} response.GirinhaPurchaseResponse
// @Failure 404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/girinhas/purchases/{purchase_id} [get]
func (h *GirinhaPurchaseHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	purchaseID := c.Param("purchase_id")

	p, err := h.usecase.GetByID(c.Request.Context(), userID, purchaseID)
	if err != nil {
		log.Printf("[purchase][handler] get failed purchase_id=%s err=%v", purchaseID, err)
		appErr := mapGirinhaPurchaseError(err)
		if appErr.HTTPStatus == http.StatusInternalServerError {
			appErr = pkg.NewRetryableError("SERVICE_UNAVAILABLE", "Service temporarily unavailable, try again", err, http.StatusServiceUnavailable)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGirinhaPurchase(p))
}

// List godoc
// @Summary List the caller's Girinha purchases, latest first
// @Tags girinhas
// @Produce json
// @Success 200 {array} response.GirinhaPurchaseResponse
// @Security BearerAuth
// @Router /v1/girinhas/purchases [get]
func (h *GirinhaPurchaseHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[purchase][handler] list failed user_id=%s err=%v", userID, err)
		appErr := pkg.NewRetryableError("SERVICE_UNAVAILABLE", "Service temporarily unavailable, try again", err, http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGirinhaPurchases(list))
}

// readPurchaseRequest reads {"quantidade": n, "mp_payload": {...}}. A missing
// mp_payload is sent to the gateway as an empty object; an explicit null is rejected.
// The quantidade is returned even when the payload part is invalid.
func readPurchaseRequest(c *gin.Context) (request.GirinhaPurchaseCreateRequest, error) {
	var req request.GirinhaPurchaseCreateRequest
	raw, err := c.GetRawData()
	if err != nil {
		return req, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return req, errors.New("request body is empty")
	}
	if !json.Valid(raw) {
		return req, errors.New("request body is not valid json")
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, err
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return request.GirinhaPurchaseCreateRequest{}, err
	}

	wrapped := strings.TrimSpace(string(req.MPPayload))
	switch {
	case wrapped == "":
		req.MPPayload = json.RawMessage("{}")
	case wrapped == "null":
		return req, errors.New("mp_payload cannot be empty")
	}
	return req, nil
}

func mapGirinhaPurchaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPurchaseQuantity), errors.Is(err, usecase.ErrInvalidPurchaseID), errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrGirinhaPurchaseNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_NOT_FOUND", "Purchase not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	return config.IsEnabled("PAYMENT_GATEWAY_MOCK") || config.IsEnabled("MERCADOPAGO_MOCK")
}
