package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is one item returned by the aggregator for a landlord's
// account. Amount is signed: incoming payments are typically negative on the
// landlord's statement, so consumers compare on the absolute value.
type BankTransaction struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CheckOutcome reports what the driver did for one (agreement, date) pair.
type CheckOutcome int

const (
	OutcomeNotDue CheckOutcome = iota + 1
	OutcomeAlreadyChecked
	OutcomeChecked
)

func (o CheckOutcome) String() string {
	switch o {
	case OutcomeNotDue:
		return "not_due"
	case OutcomeAlreadyChecked:
		return "already_checked"
	case OutcomeChecked:
		return "checked"
	}
	return "unknown"
}

// RunLandlordCheckRequest is the diagnostic "run for one landlord" request.
// CheckDate is optional; empty means yesterday.
type RunLandlordCheckRequest struct {
	LandlordID int64  `json:"landlord_id"`
	CheckDate  string `json:"check_date"`
}

// RunReport summarizes one driver invocation.
type RunReport struct {
	CheckDate        time.Time `json:"check_date"`
	LandlordsChecked int       `json:"landlords_checked"`
	AgreementsDue    int       `json:"agreements_due"`
	ChecksCreated    int       `json:"checks_created"`
	ChecksSkipped    int       `json:"checks_skipped"`
	FailuresIsolated int       `json:"failures_isolated"`
}
