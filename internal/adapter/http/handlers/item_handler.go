package handlers

import (
	"log"
	"net/http"

	"giramae/internal/adapter/http/dto/request"
	"giramae/internal/adapter/http/dto/response"
	"giramae/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	usecase usecase.IItemUseCase
}

func NewItemHandler(uc usecase.IItemUseCase) *ItemHandler {
	return &ItemHandler{usecase: uc}
}

// Publish godoc
// @Summary Publish an item
// @Tags items
// @Accept json
// @Produce json
// @Param item body request.ItemCreateRequest true "item"
// @Success 201 {object} response.ItemResponse
// @Failure 400 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/items [post]
func (h *ItemHandler) Publish(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request.ItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[item][handler] invalid payload user_id=%s err=%v", userID, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	item, err := h.usecase.Publish(c.Request.Context(), userID, req.ToEntity())
	if err != nil {
		log.Printf("[item][handler] publish failed user_id=%s err=%v", userID, err)
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromItem(item))
}

// GetByID godoc
// @Summary Get an item
// @Tags items
// @Produce json
// @Param item_id path string true "item id"
// @Success 200 {object} response.ItemResponse
// @Failure 404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/items/{item_id} [get]
func (h *ItemHandler) GetByID(c *gin.Context) {
	itemID := c.Param("item_id")
	item, err := h.usecase.GetByID(c.Request.Context(), itemID)
	if err != nil {
		log.Printf("[item][handler] get failed item_id=%s err=%v", itemID, err)
		appErr := mapReadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromItem(item))
}
