package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentCheck is the reconciliation outcome for one (agreement, calendar date)
// pair. The unique index on (agreement_id, check_date) is the idempotency
// guarantee: a re-triggered run can never record or notify twice.
//
// Rows are created once by the driver and afterwards only the two
// notification-sent flags may change.
type RentCheck struct {
	ID                     int64            `gorm:"primary_key" json:"id"`
	AgreementID            int64            `gorm:"not null;unique_index:uniq_agreement_check_date" json:"agreement_id"`
	CheckDate              time.Time        `gorm:"not null;unique_index:uniq_agreement_check_date" json:"check_date"`
	RentDueDate            time.Time        `gorm:"not null" json:"rent_due_date"`
	PaymentFound           bool             `gorm:"default:false" json:"payment_found"`
	PaymentAmount          *decimal.Decimal `gorm:"type:decimal(10,2)" json:"payment_amount"`
	PaymentKeywordMatch    bool             `gorm:"default:false" json:"payment_keyword_match"`
	AmountMatches          bool             `gorm:"default:false" json:"amount_matches"`
	NotificationSent       bool             `gorm:"default:false" json:"notification_sent"`
	TenantNotificationSent bool             `gorm:"default:false" json:"tenant_notification_sent"`
	CreatedAt              time.Time        `json:"created_at"`
}

func (RentCheck) TableName() string { return "rent_checks" }
