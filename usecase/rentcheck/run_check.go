package rentcheck

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/renttrack/renttrack/entity"
	"github.com/renttrack/renttrack/infra/db/dao"
	"github.com/renttrack/renttrack/infra/db/model"
	"github.com/renttrack/renttrack/utils"
)

// RunAllChecks reconciles every credentialed landlord for yesterday's date.
// Transactions need time to settle, so the engine always looks one day back.
func (u *rentCheckUsecase) RunAllChecks(ctx context.Context) (entity.RunReport, error) {
	return u.runAllForDate(ctx, utils.Yesterday(time.Now()))
}

func (u *rentCheckUsecase) runAllForDate(ctx context.Context, checkDate time.Time) (report entity.RunReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[RentCheck] Panic recovered during run for %s: %v", checkDate.Format(utils.DateLayout), r)
		}
	}()

	checkDate = utils.DateOnly(checkDate)
	report.CheckDate = checkDate
	log.Infof("[RentCheck] Starting rent payment check for %s", checkDate.Format(utils.DateLayout))

	landlords, err := u.dao.GetLandlordsWithCredential()
	if err != nil {
		log.Errorf("[RentCheck] Could not fetch landlords: %v", err)
		return report, err
	}

	for _, landlord := range landlords {
		if err := u.checkLandlord(ctx, landlord, checkDate, &report); err != nil {
			// One landlord's failure must never abort the whole run.
			log.Errorf("[RentCheck] Error checking rent for landlord %d: %v", landlord.ID, err)
			report.FailuresIsolated++
			continue
		}
		report.LandlordsChecked++
	}

	log.Infof("[RentCheck] Run complete for %s: landlords=%d due=%d created=%d skipped=%d failures=%d",
		checkDate.Format(utils.DateLayout), report.LandlordsChecked, report.AgreementsDue,
		report.ChecksCreated, report.ChecksSkipped, report.FailuresIsolated)
	return report, nil
}

// RunLandlordChecks is the diagnostic single-landlord entrypoint.
func (u *rentCheckUsecase) RunLandlordChecks(ctx context.Context, landlordID int64, checkDate time.Time) (entity.RunReport, error) {
	checkDate = utils.DateOnly(checkDate)
	report := entity.RunReport{CheckDate: checkDate}

	landlord, err := u.dao.GetLandlordByID(landlordID)
	if err != nil {
		return report, err
	}
	if landlord.Credential == nil {
		return report, errors.New("landlord has no bank credential configured")
	}

	if err := u.checkLandlord(ctx, landlord, checkDate, &report); err != nil {
		return report, err
	}
	report.LandlordsChecked++
	return report, nil
}

func (u *rentCheckUsecase) checkLandlord(ctx context.Context, landlord model.Landlord, checkDate time.Time, report *entity.RunReport) error {
	if landlord.Credential == nil {
		log.Warnf("[RentCheck] No bank credential for landlord %d, skipping", landlord.ID)
		return nil
	}

	if !u.locker.TryAcquire(landlord.ID) {
		log.Warnf("[RentCheck] Landlord %d is already being processed, skipping", landlord.ID)
		return nil
	}
	defer u.locker.Release(landlord.ID)

	log.Infof("[RentCheck] Checking rent payments for landlord %d on %s", landlord.ID, checkDate.Format(utils.DateLayout))

	agreements, err := u.dao.GetAgreementsByLandlordID(landlord.ID)
	if err != nil {
		return err
	}

	for _, agreement := range agreements {
		outcome, err := u.checkAgreement(ctx, landlord, agreement, checkDate)
		if err != nil {
			// Isolate per-agreement failures the same way as per-landlord ones.
			log.Errorf("[RentCheck] Error checking agreement %d: %v", agreement.ID, err)
			report.FailuresIsolated++
			continue
		}

		switch outcome {
		case entity.OutcomeNotDue:
			log.Debugf("[RentCheck] No rent due for agreement %d on %s", agreement.ID, checkDate.Format(utils.DateLayout))
		case entity.OutcomeAlreadyChecked:
			log.Infof("[RentCheck] Rent check already exists for agreement %d on %s", agreement.ID, checkDate.Format(utils.DateLayout))
			report.AgreementsDue++
			report.ChecksSkipped++
		case entity.OutcomeChecked:
			report.AgreementsDue++
			report.ChecksCreated++
		}
	}

	return nil
}

// checkAgreement runs the full evaluator -> ledger gate -> fetch -> match ->
// record -> notify pipeline for one (agreement, date) pair and reports which
// branch was taken.
func (u *rentCheckUsecase) checkAgreement(ctx context.Context, landlord model.Landlord, agreement model.RentalAgreement, checkDate time.Time) (entity.CheckOutcome, error) {
	if !IsRentDue(agreement, checkDate) {
		return entity.OutcomeNotDue, nil
	}

	log.Infof("[RentCheck] Rent due for agreement %d on %s", agreement.ID, checkDate.Format(utils.DateLayout))

	existing, err := u.dao.GetRentCheckByAgreementAndDate(agreement.ID, checkDate)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return entity.OutcomeAlreadyChecked, nil
	}

	transactions := u.fetcher.FetchTransactions(ctx, *landlord.Credential, checkDate)
	match := FindRentPayment(transactions, agreement)

	check := buildRentCheck(agreement, checkDate, match)
	if err := u.dao.CreateRentCheck(check); err != nil {
		if errors.Is(err, dao.ErrCheckExists) {
			// Lost the insert race to a concurrent run; that run owns the
			// notification batch.
			return entity.OutcomeAlreadyChecked, nil
		}
		return 0, err
	}

	u.sendNotifications(landlord, agreement, check)
	return entity.OutcomeChecked, nil
}

func buildRentCheck(agreement model.RentalAgreement, checkDate time.Time, match *entity.BankTransaction) *model.RentCheck {
	check := &model.RentCheck{
		AgreementID:  agreement.ID,
		CheckDate:    checkDate,
		RentDueDate:  checkDate,
		PaymentFound: match != nil,
	}

	if match != nil {
		amount := match.Amount.Abs()
		check.PaymentAmount = &amount
		check.PaymentKeywordMatch = true
		check.AmountMatches = amount.Equal(agreement.RentAmount)
	}

	return check
}

// GetRentChecks lists the recorded ledger rows for one agreement.
func (u *rentCheckUsecase) GetRentChecks(agreementID int64) ([]model.RentCheck, error) {
	return u.dao.GetRentChecksByAgreementID(agreementID)
}
