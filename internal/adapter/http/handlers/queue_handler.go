package handlers

import (
	"net/http"
	"strings"

	"giramae/internal/adapter/http/dto/response"
	"giramae/internal/usecase"

	"github.com/gin-gonic/gin"
)

const maxQueueBatch = 100

// QueueHandler serves queue summaries for item listings. Lookups never fail: an
// unavailable store reads as an empty queue.
type QueueHandler struct {
	service usecase.IQueueInfoService
}

func NewQueueHandler(service usecase.IQueueInfoService) *QueueHandler {
	return &QueueHandler{service: service}
}

// GetQueueInfo godoc
// @Summary Queue summary for one item
// @Tags queue
// @Produce json
// @Param item_id path string true "item id"
// @Success 200 {object} response.QueueInfoResponse
// @Security BearerAuth
// @Router /v1/items/{item_id}/queue [get]
func (h *QueueHandler) GetQueueInfo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	info := h.service.GetQueueInfo(c.Request.Context(), userID, c.Param("item_id"))
	c.JSON(http.StatusOK, response.FromQueueInfo(info))
}

// GetQueueInfoBatch godoc
// @Summary Queue summaries for several items
// @Tags queue
// @Produce json
// @Param item_ids query string true "comma separated item ids"
// @Success 200 {object} map[string]response.QueueInfoResponse
// @Failure 400 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/queues [get]
func (h *QueueHandler) GetQueueInfoBatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var itemIDs []string
	for _, id := range strings.Split(c.Query("item_ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			itemIDs = append(itemIDs, id)
		}
	}
	if len(itemIDs) == 0 || len(itemIDs) > maxQueueBatch {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	batch := h.service.GetQueueInfoBatch(c.Request.Context(), userID, itemIDs)
	c.JSON(http.StatusOK, response.FromQueueInfoBatch(batch))
}
