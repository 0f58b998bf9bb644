package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"whatsapp-studio/internal/metrics"
	"whatsapp-studio/internal/models"
	"whatsapp-studio/internal/template"
	"whatsapp-studio/internal/ws"
)

// session guards one wizard; requests against the same id serialize.
type session struct {
	mu     sync.Mutex
	wizard *template.Wizard
}

// WizardHandler keeps creation wizards in memory between requests.
// Sessions expire after the configured TTL of inactivity.
type WizardHandler struct {
	Rules     template.Rules
	Submitter template.Submitter
	Store     Registry
	Hub       Broadcaster
	Metrics   *metrics.Metrics
	sessions  *cache.Cache
	logger    *slog.Logger
}

func NewWizardHandler(rules template.Rules, submitter template.Submitter, store Registry, hub Broadcaster, m *metrics.Metrics, ttl time.Duration, logger *slog.Logger) *WizardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &WizardHandler{
		Rules:     rules,
		Submitter: submitter,
		Store:     store,
		Hub:       hub,
		Metrics:   m,
		sessions:  cache.New(ttl, ttl/2+time.Second),
		logger:    logger,
	}
	h.sessions.OnEvicted(func(id string, _ interface{}) {
		h.logger.Debug("wizard session expired", "session", id)
		h.gauge()
	})
	return h
}

type wizardResponse struct {
	ID string `json:"id"`
	template.State
}

type createWizardRequest struct {
	Category template.Category `json:"category"`
}

// Create opens a wizard on the category step.
func (h *WizardHandler) Create(c *gin.Context) {
	var req createWizardRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	w := template.NewWizard(h.Rules)
	if req.Category != "" {
		if err := w.SetCategory(req.Category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	id := uuid.NewString()
	h.sessions.SetDefault(id, &session{wizard: w})
	h.gauge()
	c.JSON(http.StatusCreated, wizardResponse{ID: id, State: w.State()})
}

func (h *WizardHandler) Get(c *gin.Context) {
	h.with(c, func(id string, s *session) {
		c.JSON(http.StatusOK, wizardResponse{ID: id, State: s.wizard.State()})
	})
}

// UpdateDraft replaces the draft. The category may be omitted; once
// confirmed it cannot change.
func (h *WizardHandler) UpdateDraft(c *gin.Context) {
	var d template.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.with(c, func(id string, s *session) {
		if err := s.wizard.UpdateDraft(d); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, wizardResponse{ID: id, State: s.wizard.State()})
	})
}

// Next validates the current step and advances.
func (h *WizardHandler) Next(c *gin.Context) {
	h.with(c, func(id string, s *session) {
		from := s.wizard.Step()
		res, err := s.wizard.Next()
		if from == template.StepContent && h.Metrics != nil {
			h.Metrics.ObserveValidation("wizard", res)
		}
		state := wizardResponse{ID: id, State: s.wizard.State()}
		switch {
		case errors.Is(err, template.ErrValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, state)
		case errors.Is(err, template.ErrLastStep):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusOK, state)
		}
	})
}

func (h *WizardHandler) Back(c *gin.Context) {
	h.with(c, func(id string, s *session) {
		s.wizard.Back()
		c.JSON(http.StatusOK, wizardResponse{ID: id, State: s.wizard.State()})
	})
}

// Submit sends the reviewed template to Meta once. On failure the session
// stays on review with the draft and the error message kept. A client
// disconnect does not abort the call; GRAPH_TIMEOUT bounds it.
func (h *WizardHandler) Submit(c *gin.Context) {
	h.with(c, func(id string, s *session) {
		ctx := context.WithoutCancel(c.Request.Context())
		sub, err := s.wizard.Submit(ctx, h.Submitter)
		state := wizardResponse{ID: id, State: s.wizard.State()}
		switch {
		case errors.Is(err, template.ErrNotOnReview), errors.Is(err, template.ErrAlreadySubmitted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "state": state})
			return
		case err != nil:
			h.logger.Warn("template submission failed", "session", id, "error", err)
			c.JSON(graphStatus(err), gin.H{"error": err.Error(), "state": state})
			return
		}

		d := s.wizard.Draft()
		payload := template.Build(d)
		category := sub.Category
		if category == "" {
			category = string(payload.Category)
		}
		record := &models.Template{
			ID:         sub.ID,
			Name:       payload.Name,
			Language:   payload.Language,
			Category:   category,
			Status:     sub.Status,
			Components: componentsJSON(payload),
		}
		if err := h.Store.SaveTemplate(record); err != nil {
			h.logger.Error("record submitted template", "id", sub.ID, "error", err)
		}
		h.logger.Info("template submitted", "session", id, "id", sub.ID, "name", payload.Name, "status", sub.Status)
		h.Hub.BroadcastEvent(ws.EventTemplateSubmitted, record)
		c.JSON(http.StatusCreated, state)
	})
}

// Delete cancels a wizard.
func (h *WizardHandler) Delete(c *gin.Context) {
	h.sessions.Delete(c.Param("id"))
	h.gauge()
	c.Status(http.StatusNoContent)
}

// with runs fn holding the session lock and refreshes the session TTL.
func (h *WizardHandler) with(c *gin.Context, fn func(id string, s *session)) {
	id := c.Param("id")
	v, ok := h.sessions.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found or expired"})
		return
	}
	s := v.(*session)
	s.mu.Lock()
	defer s.mu.Unlock()
	h.sessions.SetDefault(id, s)
	fn(id, s)
}

func (h *WizardHandler) gauge() {
	if h.Metrics != nil {
		h.Metrics.SetSessions(h.sessions.ItemCount())
	}
}
