package handlers

import (
	"log"
	"net/http"

	"giramae/internal/adapter/http/dto/response"
	"giramae/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	usecase usecase.IGoalUseCase
}

func NewGoalHandler(uc usecase.IGoalUseCase) *GoalHandler {
	return &GoalHandler{usecase: uc}
}

// GetBoard godoc
// @Summary Goal tiers with progress
// @Tags goals
// @Produce json
// @Success 200 {object} response.GoalBoardResponse
// @Failure 503 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /v1/goals [get]
func (h *GoalHandler) GetBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	board, err := h.usecase.GetBoard(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[goal][handler] board failed user_id=%s err=%v", userID, err)
		appErr := mapReadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGoalBoard(board))
}
