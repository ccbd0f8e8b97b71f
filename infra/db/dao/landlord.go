package dao

import (
	"fmt"

	"github.com/renttrack/renttrack/infra/db/model"
)

// GetLandlordsWithCredential returns only landlords that can actually be
// reconciled: those holding a bank credential. Landlords without one are a
// configuration gap and are skipped by construction.
func (d *dao) GetLandlordsWithCredential() ([]model.Landlord, error) {
	var landlords []model.Landlord
	if err := d.db.
		Joins("JOIN bank_credentials ON bank_credentials.landlord_id = landlords.id").
		Preload("Credential").
		Find(&landlords).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch landlords with credentials: %w", err)
	}
	return landlords, nil
}

func (d *dao) GetLandlordByID(landlordID int64) (model.Landlord, error) {
	var landlord model.Landlord
	if err := d.db.Preload("Credential").First(&landlord, landlordID).Error; err != nil {
		return landlord, fmt.Errorf("landlord not found: %w", err)
	}
	return landlord, nil
}
