package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"

	"whatsapp-studio/internal/database"
	"whatsapp-studio/internal/metrics"
	"whatsapp-studio/internal/models"
	"whatsapp-studio/internal/template"
	"whatsapp-studio/internal/whatsapp"
	"whatsapp-studio/internal/ws"
)

// TemplateHandler serves the stateless template tools and the local
// template registry.
type TemplateHandler struct {
	Rules   template.Rules
	Client  TemplateClient
	Store   Registry
	Hub     Broadcaster
	Metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewTemplateHandler(rules template.Rules, client TemplateClient, store Registry, hub Broadcaster, m *metrics.Metrics, logger *slog.Logger) *TemplateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplateHandler{Rules: rules, Client: client, Store: store, Hub: hub, Metrics: m, logger: logger}
}

// GetLanguages lists the selectable template languages.
func (h *TemplateHandler) GetLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, h.Rules.Languages)
}

// GetCapabilities returns what a category allows in the editor.
func (h *TemplateHandler) GetCapabilities(c *gin.Context) {
	category := template.Category(strings.ToUpper(c.Param("category")))
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category " + c.Param("category")})
		return
	}
	c.JSON(http.StatusOK, template.CapabilitiesFor(category))
}

// Validate runs every rule over a draft without storing it.
func (h *TemplateHandler) Validate(c *gin.Context) {
	var d template.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := h.Rules.Validate(d)
	h.observe("validate", res)
	c.JSON(http.StatusOK, gin.H{"valid": res.Valid(), "errors": res})
}

// Preview returns the creation payload for a valid draft.
func (h *TemplateHandler) Preview(c *gin.Context) {
	var d template.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := h.Rules.Validate(d)
	h.observe("preview", res)
	if !res.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": res})
		return
	}
	c.JSON(http.StatusOK, template.Build(d))
}

type formatRequest struct {
	Text   string         `json:"text"`
	Start  int            `json:"start"`
	End    int            `json:"end"`
	Style  template.Style `json:"style"`
	Action string         `json:"action"` // "style" (default) or "variable"
}

// Format applies an inline style or inserts the next variable into a text
// field, for editors that cannot do it client side.
func (h *TemplateHandler) Format(c *gin.Context) {
	var req formatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	buf := template.NewTextBuffer(req.Text, req.Start, req.End)
	resp := gin.H{}
	switch req.Action {
	case "variable":
		resp["variable"] = template.InsertVariable(buf)
	case "", "style":
		if _, ok := req.Style.Marker(); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown style " + string(req.Style)})
			return
		}
		template.ApplyStyle(buf, req.Style)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action " + req.Action})
		return
	}
	_, cursor := buf.Selection()
	resp["text"] = buf.Text()
	resp["cursor"] = cursor
	c.JSON(http.StatusOK, resp)
}

// GetTemplates lists the local registry, optionally filtered.
func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	templates, err := h.Store.ListTemplates(database.TemplateFilter{
		Name:     c.Query("name"),
		Status:   strings.ToUpper(c.Query("status")),
		Category: strings.ToUpper(c.Query("category")),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, templates)
}

// SyncTemplates replaces the local registry with Meta's listing.
func (h *TemplateHandler) SyncTemplates(c *gin.Context) {
	remote, err := h.Client.GetTemplates(c.Request.Context())
	if err != nil {
		h.logger.Error("fetch templates", "error", err)
		graphError(c, err)
		return
	}

	local := slice.Map(remote, func(_ int, src whatsapp.RemoteTemplate) models.Template {
		return models.Template{
			ID:             src.ID,
			Name:           src.Name,
			Language:       src.Language,
			Category:       src.Category,
			Status:         src.Status,
			RejectedReason: rejectedReason(src.RejectedReason),
			Components:     string(src.Components),
		}
	})
	if err := h.Store.ReplaceTemplates(local); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("templates synced", "count", len(local))
	h.Hub.BroadcastEvent(ws.EventTemplatesSynced, gin.H{"count": len(local)})
	c.JSON(http.StatusOK, gin.H{"status": "Templates synced", "count": len(local)})
}

// DeleteTemplate removes a template, every language, at Meta and locally.
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template name required (query param 'name')"})
		return
	}

	if err := h.Client.DeleteTemplate(c.Request.Context(), name); err != nil {
		graphError(c, err)
		return
	}
	n, err := h.Store.DeleteTemplatesByName(name)
	if err != nil {
		h.logger.Error("delete local template", "name", name, "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"status": "Template deleted", "removed": n})
}

func (h *TemplateHandler) observe(source string, res template.Result) {
	if h.Metrics != nil {
		h.Metrics.ObserveValidation(source, res)
	}
}

func rejectedReason(r string) string {
	if r == "NONE" {
		return ""
	}
	return r
}

// componentsJSON stores the components of a submitted payload.
func componentsJSON(p template.Payload) string {
	raw, err := json.Marshal(p.Components)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
