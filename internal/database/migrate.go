package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"whatsapp-studio/internal/models"
)

// serialTables lists the tables whose integer ids come from a sequence.
var serialTables = []string{"template_events"}

// MigrationReport counts the rows copied per table.
type MigrationReport map[string]int

// CopyTo copies every template, event and setting from s into dst. Each
// table is written in its own transaction; a failed table stops the copy.
func (s *Store) CopyTo(dst *Store) (MigrationReport, error) {
	report := MigrationReport{}

	copyTable := func(table string, rows interface{}, count func() int) error {
		log.Printf("Migrating table: %s", table)
		if err := s.DB.Find(rows).Error; err != nil {
			return fmt.Errorf("read %s: %w", table, err)
		}
		n := count()
		report[table] = n
		if n == 0 {
			return nil
		}
		err := dst.DB.Transaction(func(tx *gorm.DB) error {
			return tx.Save(rows).Error
		})
		if err != nil {
			return fmt.Errorf("write %s: %w", table, err)
		}
		return nil
	}

	var templates []models.Template
	if err := copyTable("templates", &templates, func() int { return len(templates) }); err != nil {
		return report, err
	}
	var events []models.TemplateEvent
	if err := copyTable("template_events", &events, func() int { return len(events) }); err != nil {
		return report, err
	}
	var settings []models.SystemSetting
	if err := copyTable("system_settings", &settings, func() int { return len(settings) }); err != nil {
		return report, err
	}
	return report, nil
}

// SyncSequences moves PostgreSQL serial sequences past the highest id so
// rows copied with explicit ids do not collide with new inserts. Other
// dialects need nothing.
func (s *Store) SyncSequences() error {
	if s.DB.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range serialTables {
		query := "SELECT setval(pg_get_serial_sequence('" + table + "', 'id'), coalesce(max(id), 0) + 1, false) FROM " + table
		if err := s.DB.Exec(query).Error; err != nil {
			return fmt.Errorf("sync sequence for %s: %w", table, err)
		}
		log.Printf("Synced sequence for %s", table)
	}
	return nil
}
