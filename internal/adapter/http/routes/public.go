package routes

import (
	"net/http"

	"giramae/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// sitemapNames are the documents generated under /functions/v1/sitemap-<name>.
var sitemapNames = []string{"index", "static", "posts", "categories", "tags"}

// Ping godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", ping)
}

func addSitemapRoutes(rg *gin.RouterGroup, sitemapHandler *handlers.SitemapHandler) {
	rg.GET("/sitemap/:name", sitemapHandler.Get)
}

func addFunctionRoutes(rg *gin.RouterGroup, serviceKey gin.HandlerFunc, functionsHandler *handlers.FunctionsHandler) {
	rg.POST("/process-expired-reservations", serviceKey, functionsHandler.ProcessExpiredReservations)
	for _, name := range sitemapNames {
		rg.GET("/sitemap-"+name, functionsHandler.GenerateSitemap(name))
	}
}
