package rentcheck

import (
	"github.com/labstack/gommon/log"
	"github.com/renttrack/renttrack/infra/db/model"
	"github.com/renttrack/renttrack/utils"
)

// sendNotifications maps a freshly created rent check to its notification
// batch:
//
//	found + amount matches   -> landlord "rent received"
//	found + amount differs   -> landlord "rent amount mismatch"
//	not found                -> landlord "rent missed", plus a tenant
//	                            reminder when the agreement enables it
//
// The landlord flag is set after the dispatch attempt regardless of the send
// outcome; per-attempt delivery truth lives in the email_logs table.
func (u *rentCheckUsecase) sendNotifications(landlord model.Landlord, agreement model.RentalAgreement, check *model.RentCheck) {
	date := check.CheckDate.Format(utils.DateLayout)

	if check.PaymentFound {
		if check.AmountMatches {
			u.notifier.SendRentReceivedNotification(
				landlord.Email,
				agreement.PropertyAddress,
				agreement.TenantName,
				*check.PaymentAmount,
				date,
			)
			check.NotificationSent = true
		} else {
			u.notifier.SendRentAmountMismatchNotification(
				landlord.Email,
				agreement.PropertyAddress,
				agreement.TenantName,
				agreement.RentAmount,
				*check.PaymentAmount,
				date,
			)
			check.NotificationSent = true
		}
	} else {
		u.notifier.SendRentMissedNotification(
			landlord.Email,
			agreement.PropertyAddress,
			agreement.TenantName,
			agreement.RentAmount,
			date,
		)
		check.NotificationSent = true

		if agreement.SendTenantReminder {
			u.notifier.SendTenantReminderEmail(
				agreement.TenantEmail,
				agreement.TenantName,
				agreement.PropertyAddress,
				agreement.RentAmount,
				landlord.FullName(),
			)
			check.TenantNotificationSent = true
		}
	}

	if err := u.dao.UpdateRentCheckNotificationFlags(check); err != nil {
		log.Errorf("[RentCheck] Failed to persist notification flags for check %d: %v", check.ID, err)
	}
}
