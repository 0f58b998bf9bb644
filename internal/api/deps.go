package api

import (
	"context"

	"whatsapp-studio/internal/database"
	"whatsapp-studio/internal/models"
	"whatsapp-studio/internal/template"
	"whatsapp-studio/internal/whatsapp"
)

//go:generate mockgen -source=deps.go -destination=mocks/deps_mock.go -package=apimocks

// TemplateClient is the Graph API surface the handlers use.
type TemplateClient interface {
	template.Submitter
	GetTemplates(ctx context.Context) ([]whatsapp.RemoteTemplate, error)
	DeleteTemplate(ctx context.Context, name string) error
}

// Registry is the local template store.
type Registry interface {
	SaveTemplate(t *models.Template) error
	ReplaceTemplates(ts []models.Template) error
	ListTemplates(f database.TemplateFilter) ([]models.Template, error)
	DeleteTemplatesByName(name string) (int64, error)
}

type Broadcaster interface {
	BroadcastEvent(eventType string, data interface{})
}
