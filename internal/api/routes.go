package api

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything mounted under /api.
type Handlers struct {
	Templates *TemplateHandler
	Wizard    *WizardHandler
	Media     *MediaHandler
	Limiter   *RateLimiter
}

func (h *Handlers) Register(r gin.IRouter) {
	var limit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if h.Limiter != nil {
		limit = h.Limiter.Middleware()
	}

	templates := r.Group("/templates")
	{
		templates.GET("", h.Templates.GetTemplates)
		templates.DELETE("", h.Templates.DeleteTemplate)
		templates.POST("/sync", h.Templates.SyncTemplates)
		templates.GET("/languages", h.Templates.GetLanguages)
		templates.GET("/capabilities/:category", h.Templates.GetCapabilities)
		templates.POST("/validate", h.Templates.Validate)
		templates.POST("/preview", h.Templates.Preview)
		templates.POST("/format", h.Templates.Format)

		wizard := templates.Group("/wizard")
		wizard.POST("", h.Wizard.Create)
		wizard.GET("/:id", h.Wizard.Get)
		wizard.PUT("/:id/draft", h.Wizard.UpdateDraft)
		wizard.POST("/:id/next", h.Wizard.Next)
		wizard.POST("/:id/back", h.Wizard.Back)
		wizard.POST("/:id/submit", limit, h.Wizard.Submit)
		wizard.DELETE("/:id", h.Wizard.Delete)
	}

	r.POST("/media", limit, h.Media.UploadHeaderSample)
}
