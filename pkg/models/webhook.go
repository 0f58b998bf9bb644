package models

import "encoding/json"

// Webhook change fields handled by the service.
const (
	FieldTemplateStatusUpdate   = "message_template_status_update"
	FieldTemplateCategoryUpdate = "template_category_update"
	FieldTemplateQualityUpdate  = "message_template_quality_update"
)

// WebhookPayload represents the incoming JSON payload from WhatsApp
type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Time    int64    `json:"time"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// TemplateStatusUpdate is the value of a message_template_status_update
// change. The template id arrives as a JSON number.
type TemplateStatusUpdate struct {
	Event      string      `json:"event"`
	TemplateID json.Number `json:"message_template_id"`
	Name       string      `json:"message_template_name"`
	Language   string      `json:"message_template_language"`
	Reason     string      `json:"reason,omitempty"`
}

// TemplateCategoryUpdate is sent when Meta recategorises a template.
type TemplateCategoryUpdate struct {
	TemplateID       json.Number `json:"message_template_id"`
	Name             string      `json:"message_template_name"`
	Language         string      `json:"message_template_language"`
	PreviousCategory string      `json:"previous_category"`
	NewCategory      string      `json:"new_category"`
}

// TemplateQualityUpdate reports a quality score change.
type TemplateQualityUpdate struct {
	TemplateID      json.Number `json:"message_template_id"`
	Name            string      `json:"message_template_name"`
	Language        string      `json:"message_template_language"`
	PreviousQuality string      `json:"previous_quality_score"`
	NewQuality      string      `json:"new_quality_score"`
}
