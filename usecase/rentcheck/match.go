package rentcheck

import (
	"strings"

	"github.com/renttrack/renttrack/entity"
	"github.com/renttrack/renttrack/infra/db/model"
)

// FindRentPayment scans transactions in fetcher order and returns the first
// whose description contains the agreement's keyword, case-insensitively.
// Amount is not considered here; the amount comparison happens when the rent
// check is recorded. Multiple matching transactions are not disambiguated:
// only the first is kept.
func FindRentPayment(transactions []entity.BankTransaction, agreement model.RentalAgreement) *entity.BankTransaction {
	keyword := strings.ToLower(agreement.BankStatementKeyword)

	for i := range transactions {
		description := strings.ToLower(transactions[i].Description)
		if strings.Contains(description, keyword) {
			return &transactions[i]
		}
	}

	return nil
}
