package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"whatsapp-studio/internal/config"
	"whatsapp-studio/internal/database"
	"whatsapp-studio/internal/models"
	"whatsapp-studio/internal/ws"
	wamodels "whatsapp-studio/pkg/models"
)

// TemplateStore is the part of the registry the webhook writes to.
type TemplateStore interface {
	UpdateTemplateStatus(ev models.TemplateEvent) (*models.Template, error)
	UpdateTemplateCategory(id, name, language, category string) (*models.Template, error)
}

type Broadcaster interface {
	BroadcastEvent(eventType string, data interface{})
}

type Handler struct {
	Config *config.Config
	Store  TemplateStore
	Hub    Broadcaster
	logger *slog.Logger
}

func NewHandler(cfg *config.Config, store TemplateStore, hub Broadcaster, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Config: cfg,
		Store:  store,
		Hub:    hub,
		logger: logger,
	}
}

func (h *Handler) VerifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode != "" && token != "" {
		if mode == "subscribe" && token == h.Config.VerifyToken {
			h.logger.Info("webhook verified")
			c.String(http.StatusOK, challenge)
		} else {
			c.Status(http.StatusForbidden)
		}
	} else {
		c.Status(http.StatusBadRequest)
	}
}

// HandleEvent processes template lifecycle notifications. Unknown fields are
// acknowledged and ignored so Meta does not redeliver them.
func (h *Handler) HandleEvent(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if h.Config.AppSecret != "" && !validSignature(body, c.GetHeader("X-Hub-Signature-256"), h.Config.AppSecret) {
		h.logger.Warn("webhook signature mismatch")
		c.Status(http.StatusUnauthorized)
		return
	}

	var payload wamodels.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.logger.Warn("webhook payload is not json", "error", err)
		c.Status(http.StatusBadRequest)
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			switch change.Field {
			case wamodels.FieldTemplateStatusUpdate:
				h.statusUpdate(change.Value)
			case wamodels.FieldTemplateCategoryUpdate:
				h.categoryUpdate(change.Value)
			case wamodels.FieldTemplateQualityUpdate:
				h.qualityUpdate(change.Value)
			default:
				h.logger.Debug("unhandled webhook field", "field", change.Field, "entry", entry.ID)
			}
		}
	}

	c.Status(http.StatusOK)
}

func (h *Handler) statusUpdate(raw json.RawMessage) {
	var upd wamodels.TemplateStatusUpdate
	if err := json.Unmarshal(raw, &upd); err != nil {
		h.logger.Warn("decode template status update", "error", err)
		return
	}
	reason := upd.Reason
	if reason == "NONE" {
		reason = ""
	}
	ev := models.TemplateEvent{
		TemplateID: upd.TemplateID.String(),
		Name:       upd.Name,
		Language:   upd.Language,
		Event:      upd.Event,
		Reason:     reason,
	}
	h.logger.Info("template status update", "id", ev.TemplateID, "name", ev.Name, "language", ev.Language, "event", ev.Event, "reason", ev.Reason)

	if _, err := h.Store.UpdateTemplateStatus(ev); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			h.logger.Info("status update for unknown template", "id", ev.TemplateID, "name", ev.Name)
		} else {
			h.logger.Error("store template status", "id", ev.TemplateID, "error", err)
		}
	}
	h.Hub.BroadcastEvent(ws.EventTemplateStatus, ev)
}

func (h *Handler) categoryUpdate(raw json.RawMessage) {
	var upd wamodels.TemplateCategoryUpdate
	if err := json.Unmarshal(raw, &upd); err != nil {
		h.logger.Warn("decode template category update", "error", err)
		return
	}
	h.logger.Info("template recategorised", "id", upd.TemplateID.String(), "from", upd.PreviousCategory, "to", upd.NewCategory)
	if _, err := h.Store.UpdateTemplateCategory(upd.TemplateID.String(), upd.Name, upd.Language, upd.NewCategory); err != nil && !errors.Is(err, database.ErrNotFound) {
		h.logger.Error("store template category", "id", upd.TemplateID.String(), "error", err)
	}
	h.Hub.BroadcastEvent(ws.EventTemplateCategory, upd)
}

func (h *Handler) qualityUpdate(raw json.RawMessage) {
	var upd wamodels.TemplateQualityUpdate
	if err := json.Unmarshal(raw, &upd); err != nil {
		h.logger.Warn("decode template quality update", "error", err)
		return
	}
	h.Hub.BroadcastEvent(ws.EventTemplateQuality, upd)
}

// validSignature checks the X-Hub-Signature-256 header, "sha256=<hex>".
func validSignature(body []byte, signature, secret string) bool {
	if !strings.HasPrefix(signature, "sha256=") {
		return false
	}
	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "sha256="))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(sig, mac.Sum(nil))
}
