package rentcheck

import (
	"context"
	"time"

	"github.com/renttrack/renttrack/entity"
	"github.com/renttrack/renttrack/infra/db/dao"
	"github.com/renttrack/renttrack/infra/db/model"
	"github.com/renttrack/renttrack/infra/locker"

	"github.com/shopspring/decimal"
)

// TransactionFetcher retrieves a landlord's bank transactions for one
// calendar date. Implementations degrade every failure to an empty slice.
type TransactionFetcher interface {
	FetchTransactions(ctx context.Context, credential model.BankCredential, checkDate time.Time) []entity.BankTransaction
}

// Notifier dispatches the four rent notification categories. The returned
// bool reports delivery success; callers record the attempt either way.
type Notifier interface {
	SendRentReceivedNotification(recipient, propertyAddress, tenantName string, amount decimal.Decimal, date string) bool
	SendRentMissedNotification(recipient, propertyAddress, tenantName string, expectedAmount decimal.Decimal, dueDate string) bool
	SendRentAmountMismatchNotification(recipient, propertyAddress, tenantName string, expectedAmount, actualAmount decimal.Decimal, date string) bool
	SendTenantReminderEmail(recipient, tenantName, propertyAddress string, amount decimal.Decimal, landlordName string) bool
}

type RentCheckUsecase interface {
	RunAllChecks(ctx context.Context) (entity.RunReport, error)
	RunLandlordChecks(ctx context.Context, landlordID int64, checkDate time.Time) (entity.RunReport, error)
	GetRentChecks(agreementID int64) ([]model.RentCheck, error)
}

type rentCheckUsecase struct {
	dao      dao.DaoMethod
	fetcher  TransactionFetcher
	notifier Notifier
	locker   *locker.Locker
}

func NewRentCheckUsecase(d dao.DaoMethod, fetcher TransactionFetcher, notifier Notifier, l *locker.Locker) RentCheckUsecase {
	return &rentCheckUsecase{
		dao:      d,
		fetcher:  fetcher,
		notifier: notifier,
		locker:   l,
	}
}
