package dao

import (
	"fmt"
	"strings"
	"time"

	"github.com/renttrack/renttrack/infra/db/model"
	"github.com/renttrack/renttrack/utils"

	"github.com/jinzhu/gorm"
)

// GetRentCheckByAgreementAndDate returns nil without error when no check has
// been recorded yet for the pair.
func (d *dao) GetRentCheckByAgreementAndDate(agreementID int64, checkDate time.Time) (*model.RentCheck, error) {
	var check model.RentCheck
	err := d.db.
		Where("agreement_id = ? AND check_date = ?", agreementID, utils.DateOnly(checkDate)).
		First(&check).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rent check: %w", err)
	}
	return &check, nil
}

func (d *dao) GetRentChecksByAgreementID(agreementID int64) ([]model.RentCheck, error) {
	var checks []model.RentCheck
	if err := d.db.
		Where("agreement_id = ?", agreementID).
		Order("check_date DESC").
		Find(&checks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch rent checks for agreement %d: %w", agreementID, err)
	}
	return checks, nil
}

// CreateRentCheck inserts the check row. The unique index on
// (agreement_id, check_date) makes the insert the real idempotency gate: when
// a concurrent or re-triggered run lost the race, ErrCheckExists is returned
// and no partial row is left behind.
func (d *dao) CreateRentCheck(check *model.RentCheck) error {
	check.CheckDate = utils.DateOnly(check.CheckDate)
	check.RentDueDate = utils.DateOnly(check.RentDueDate)
	if err := d.db.Create(check).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrCheckExists
		}
		return fmt.Errorf("failed to create rent check: %w", err)
	}
	return nil
}

// UpdateRentCheckNotificationFlags persists the only mutation a rent check
// permits after creation: the two notification-sent flags.
func (d *dao) UpdateRentCheckNotificationFlags(check *model.RentCheck) error {
	err := d.db.Model(&model.RentCheck{}).
		Where("id = ?", check.ID).
		Updates(map[string]interface{}{
			"notification_sent":        check.NotificationSent,
			"tenant_notification_sent": check.TenantNotificationSent,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update rent check %d: %w", check.ID, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	// postgres and sqlite spell the violation differently
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
