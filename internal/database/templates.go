package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"whatsapp-studio/internal/models"
)

// TemplateFilter narrows ListTemplates. Empty fields match everything.
type TemplateFilter struct {
	Name     string
	Status   string
	Category string
}

// SaveTemplate inserts t or overwrites the row with the same id.
func (s *Store) SaveTemplate(t *models.Template) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "language", "category", "status", "rejected_reason", "components", "updated_at"}),
	}).Create(t).Error
}

// ReplaceTemplates upserts every template from a remote listing in one
// transaction and removes local rows the remote no longer has.
func (s *Store) ReplaceTemplates(ts []models.Template) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		ids := make([]string, 0, len(ts))
		for i := range ts {
			ids = append(ids, ts[i].ID)
			if err := (&Store{DB: tx}).SaveTemplate(&ts[i]); err != nil {
				return err
			}
		}
		q := tx.Model(&models.Template{})
		if len(ids) > 0 {
			q = q.Where("id NOT IN ?", ids)
		} else {
			q = q.Where("1 = 1")
		}
		return q.Delete(&models.Template{}).Error
	})
}

func (s *Store) ListTemplates(f TemplateFilter) ([]models.Template, error) {
	q := s.DB.Order("name, language")
	if f.Name != "" {
		q = q.Where("name = ?", f.Name)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	var ts []models.Template
	err := q.Find(&ts).Error
	return ts, err
}

func (s *Store) GetTemplate(id string) (*models.Template, error) {
	var t models.Template
	err := s.DB.First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTemplateStatus applies a review outcome and records it as an event.
// Templates created outside this service are matched by name and language.
func (s *Store) UpdateTemplateStatus(ev models.TemplateEvent) (*models.Template, error) {
	var t models.Template
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var q *gorm.DB
		if ev.TemplateID != "" {
			q = tx.Where("id = ?", ev.TemplateID)
		} else {
			q = tx.Where("name = ? AND language = ?", ev.Name, ev.Language)
		}
		if err := q.First(&t).Error; err != nil {
			return err
		}
		t.Status = ev.Event
		t.RejectedReason = ev.Reason
		if err := tx.Save(&t).Error; err != nil {
			return err
		}
		if ev.TemplateID == "" {
			ev.TemplateID = t.ID
		}
		return tx.Create(&ev).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) TemplateEvents(templateID string) ([]models.TemplateEvent, error) {
	var evs []models.TemplateEvent
	err := s.DB.Where("template_id = ?", templateID).Order("id").Find(&evs).Error
	return evs, err
}

// DeleteTemplatesByName removes every language of a template and returns
// the number of rows deleted.
func (s *Store) DeleteTemplatesByName(name string) (int64, error) {
	res := s.DB.Where("name = ?", name).Delete(&models.Template{})
	return res.RowsAffected, res.Error
}

// UpdateTemplateCategory records a recategorisation made by Meta.
func (s *Store) UpdateTemplateCategory(id, name, language, category string) (*models.Template, error) {
	var t models.Template
	q := s.DB.Where("id = ?", id)
	if id == "" {
		q = s.DB.Where("name = ? AND language = ?", name, language)
	}
	err := q.First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.Category = category
	if err := s.DB.Save(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
