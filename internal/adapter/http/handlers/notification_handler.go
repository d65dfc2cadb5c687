package handlers

import (
	"errors"
	"log"
	"net/http"

	"giramae/internal/adapter/http/dto/request"
	"giramae/internal/usecase"
	"giramae/pkg"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// RegisterDevice godoc
// @Summary Register a device for push notifications
// @Tags notifications
// @Accept json
// @Produce json
// @Param body body request.RegisterDeviceRequest true "device"
// @Success 201 {object} map[string]bool
// @Failure 400 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/notifications/devices [post]
func (h *NotificationHandler) RegisterDevice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	if _, err := h.usecase.RegisterDevice(c.Request.Context(), userID, req.DeviceToken); err != nil {
		log.Printf("[notification][handler] register failed user_id=%s err=%v", userID, err)
		var appErr *pkg.AppError
		switch {
		case errors.Is(err, usecase.ErrInvalidDeviceToken), errors.Is(err, usecase.ErrInvalidUserID):
			appErr = errInvalidRequest
		default:
			appErr = pkg.NewRetryableError("PUSH_REGISTRATION_FAILED", "Could not enable notifications, try again", err, http.StatusServiceUnavailable)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"registered": true})
}
