// internal/handlers/sitemap.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ayupanchal18/Renters-sub005/internal/services"
	"github.com/Ayupanchal18/Renters-sub005/internal/utils"
)

type SitemapHandler struct {
	sitemapService *services.SitemapService
}

func NewSitemapHandler(sitemapService *services.SitemapService) *SitemapHandler {
	return &SitemapHandler{sitemapService: sitemapService}
}

// GET /sitemap.xml
func (h *SitemapHandler) GetSitemap(c *gin.Context) {
	body, err := h.sitemapService.Get()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
