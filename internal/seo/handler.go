package seo

import (
	"net/http"

	"aitoolshub/internal/apierrors"
	"aitoolshub/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	generator Generator
	logger    *observability.Logger
}

func NewHandler(generator Generator, logger *observability.Logger) Handler {
	return Handler{generator: generator, logger: logger}
}

// HandleSitemap serves /sitemap.xml
func (h *Handler) HandleSitemap(c *gin.Context) {
	body, err := h.generator.Render(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
