package models

import (
	"time"
)

// Template is a template known to the business account, keyed by the id
// Meta assigned on creation.
type Template struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(512);index:idx_template_name_lang" json:"name"`
	Language       string    `gorm:"type:varchar(50);index:idx_template_name_lang" json:"language"`
	Category       string    `gorm:"type:varchar(100)" json:"category"`
	Status         string    `gorm:"type:varchar(50);index" json:"status"`
	RejectedReason string    `gorm:"type:text" json:"rejected_reason,omitempty"`
	Components     string    `gorm:"type:text" json:"components"` // JSON components
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Template) TableName() string {
	return "templates"
}

// TemplateEvent records a review status change reported by the webhook.
type TemplateEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TemplateID string    `gorm:"type:varchar(64);index" json:"template_id"`
	Name       string    `gorm:"type:varchar(512)" json:"name"`
	Language   string    `gorm:"type:varchar(50)" json:"language"`
	Event      string    `gorm:"type:varchar(50)" json:"event"`
	Reason     string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TemplateEvent) TableName() string {
	return "template_events"
}

// SystemSetting stores credentials edited at runtime.
type SystemSetting struct {
	Key   string `gorm:"primaryKey;type:varchar(100)" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}
