package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalAgreement is one tracked property/tenant/rent-rule tuple.
//
// Exactly one of RentDueDayOfWeek / RentDueDay is set, enforced by frequency:
// Weekly and Fortnightly agreements carry a day of week (Monday=0 .. Sunday=6),
// Monthly agreements carry a day of month.
type RentalAgreement struct {
	ID                   int64           `gorm:"primary_key" json:"id"`
	LandlordID           int64           `gorm:"not null;index" json:"landlord_id"`
	PropertyAddress      string          `gorm:"type:text;not null" json:"property_address"`
	TenantName           string          `gorm:"size:200;not null" json:"tenant_name"`
	TenantEmail          string          `gorm:"size:255;not null" json:"tenant_email"`
	RentAmount           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rent_amount"`
	RentFrequency        string          `gorm:"size:20;not null" json:"rent_frequency"`
	RentDueDayOfWeek     *int            `json:"rent_due_day_of_week"`
	RentDueDay           *int            `json:"rent_due_day"`
	BankStatementKeyword string          `gorm:"size:255;not null" json:"bank_statement_keyword"`
	SendTenantReminder   bool            `gorm:"default:false" json:"send_tenant_reminder"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func (RentalAgreement) TableName() string { return "rental_agreements" }
