package handlers

import (
	"errors"
	"log"
	"net/http"

	"giramae/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SitemapHandler struct {
	usecase usecase.ISitemapUseCase
}

func NewSitemapHandler(uc usecase.ISitemapUseCase) *SitemapHandler {
	return &SitemapHandler{usecase: uc}
}

// Get godoc
// @Summary Public sitemap
// @Tags sitemap
// @Produce xml
// @Param name path string true "index, posts, categories, tags or static"
// @Success 200 {string} string "sitemap xml"
// @Failure 404 {object} map[string]string
// @Router /api/sitemap/{name} [get]
func (h *SitemapHandler) Get(c *gin.Context) {
	name := c.Param("name")
	body, err := h.usecase.Proxy(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, usecase.ErrSitemapNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sitemap not found"})
			return
		}
		log.Printf("[sitemap][handler] proxy failed name=%s err=%v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sitemap"})
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml", body)
}
