package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"giramae/internal/adapter/http/dto/response"
	"giramae/internal/usecase"

	"github.com/gin-gonic/gin"
)

// FunctionsHandler serves the endpoints invoked by schedulers and crawlers under
// /functions/v1.
type FunctionsHandler struct {
	reservations usecase.IReservationUseCase
	sitemaps     usecase.ISitemapUseCase
}

func NewFunctionsHandler(reservations usecase.IReservationUseCase, sitemaps usecase.ISitemapUseCase) *FunctionsHandler {
	return &FunctionsHandler{reservations: reservations, sitemaps: sitemaps}
}

// ProcessExpiredReservations godoc
// @Summary Expire overdue reservations
// @Tags functions
// @Accept json
// @Produce json
// @Param body body request.ProcessExpiredRequest false "args"
// @Success 200 {object} response.ProcessExpiredResponse
// @Failure 500 {object} response.ProcessExpiredResponse
// @Security ServiceKey
// @Router /functions/v1/process-expired-reservations [post]
func (h *FunctionsHandler) ProcessExpiredReservations(c *gin.Context) {
	batchSize, ok := readBatchSize(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ProcessExpiredResponse{Success: false, Error: "invalid request body"})
		return
	}
	log.Printf("[functions][handler] process-expired start batch_size=%d", batchSize)

	processed, err := h.reservations.ProcessExpiredBatch(c.Request.Context(), batchSize)
	if err != nil {
		log.Printf("[functions][handler] process-expired failed processed=%d err=%v", processed, err)
		c.JSON(http.StatusInternalServerError, response.ProcessExpiredResponse{Success: false, ProcessedCount: processed, Error: err.Error()})
		return
	}
	log.Printf("[functions][handler] process-expired success processed=%d", processed)
	c.JSON(http.StatusOK, response.ProcessExpiredResponse{Success: true, ProcessedCount: processed})
}

// GenerateSitemap returns the handler rendering the named sitemap document.
func (h *FunctionsHandler) GenerateSitemap(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := h.sitemaps.Generate(c.Request.Context(), name)
		if err != nil {
			log.Printf("[functions][handler] sitemap generation failed name=%s err=%v", name, err)
			if errors.Is(err, usecase.ErrSitemapNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Sitemap not found"})
				return
			}
			c.String(http.StatusInternalServerError, "Error generating sitemap")
			return
		}
		c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", int(doc.MaxAge.Seconds())))
		c.Data(http.StatusOK, "application/xml; charset=utf-8", doc.Body)
	}
}
