package dao

import (
	"fmt"

	"github.com/renttrack/renttrack/infra/db/model"
)

func (d *dao) GetAgreementsByLandlordID(landlordID int64) ([]model.RentalAgreement, error) {
	var agreements []model.RentalAgreement
	if err := d.db.
		Where("landlord_id = ?", landlordID).
		Order("id ASC").
		Find(&agreements).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch agreements for landlord %d: %w", landlordID, err)
	}
	return agreements, nil
}
