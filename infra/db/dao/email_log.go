package dao

import (
	"fmt"

	"github.com/renttrack/renttrack/infra/db/model"
)

func (d *dao) CreateEmailLog(entry *model.EmailLog) error {
	if err := d.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to save email log: %w", err)
	}
	return nil
}
