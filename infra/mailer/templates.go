package mailer

import (
	"fmt"

	"github.com/renttrack/renttrack/consts"
	"github.com/shopspring/decimal"
)

// SendRentReceivedNotification tells the landlord a matching payment with the
// correct amount arrived.
func (m *Mailer) SendRentReceivedNotification(recipient, propertyAddress, tenantName string, amount decimal.Decimal, date string) bool {
	subject := fmt.Sprintf("Rent Received - %s", propertyAddress)
	body := fmt.Sprintf(`<html><body>
<h1>Rent Payment Received</h1>
<p><strong>Property:</strong> %s</p>
<p><strong>Tenant:</strong> %s</p>
<p><strong>Amount:</strong> $%s</p>
<p><strong>Date:</strong> %s</p>
<p>This rent payment has been automatically detected and verified in your bank account.</p>
</body></html>`, propertyAddress, tenantName, amount.StringFixed(2), date)

	return m.send(recipient, subject, body, consts.EmailTypeRentReceived)
}

// SendRentMissedNotification tells the landlord no matching payment was found
// on the due date.
func (m *Mailer) SendRentMissedNotification(recipient, propertyAddress, tenantName string, expectedAmount decimal.Decimal, dueDate string) bool {
	subject := fmt.Sprintf("Rent Payment Missed - %s", propertyAddress)
	body := fmt.Sprintf(`<html><body>
<h1>Rent Payment Missed</h1>
<p><strong>Property:</strong> %s</p>
<p><strong>Tenant:</strong> %s</p>
<p><strong>Expected Amount:</strong> $%s</p>
<p><strong>Due Date:</strong> %s</p>
<p>No rent payment was detected for this property on the expected date. You may want to contact your tenant.</p>
</body></html>`, propertyAddress, tenantName, expectedAmount.StringFixed(2), dueDate)

	return m.send(recipient, subject, body, consts.EmailTypeRentMissed)
}

// SendRentAmountMismatchNotification tells the landlord a keyword-matched
// payment arrived with the wrong amount.
func (m *Mailer) SendRentAmountMismatchNotification(recipient, propertyAddress, tenantName string, expectedAmount, actualAmount decimal.Decimal, date string) bool {
	subject := fmt.Sprintf("Rent Amount Mismatch - %s", propertyAddress)
	body := fmt.Sprintf(`<html><body>
<h1>Rent Amount Mismatch</h1>
<p><strong>Property:</strong> %s</p>
<p><strong>Tenant:</strong> %s</p>
<p><strong>Expected Amount:</strong> $%s</p>
<p><strong>Actual Amount:</strong> $%s</p>
<p><strong>Date:</strong> %s</p>
<p>A payment was received with the correct keyword but the amount differs from the expected rent amount. Please review this transaction.</p>
</body></html>`, propertyAddress, tenantName, expectedAmount.StringFixed(2), actualAmount.StringFixed(2), date)

	return m.send(recipient, subject, body, consts.EmailTypeAmountMismatch)
}

// SendTenantReminderEmail nudges the tenant after a missed payment, signed by
// the landlord.
func (m *Mailer) SendTenantReminderEmail(recipient, tenantName, propertyAddress string, amount decimal.Decimal, landlordName string) bool {
	subject := fmt.Sprintf("Rent Payment Reminder - %s", propertyAddress)
	body := fmt.Sprintf(`<html><body>
<h1>Rent Payment Reminder</h1>
<p>Hi %s,</p>
<p>This is a friendly reminder that your rent payment was due and has not yet been received.</p>
<p><strong>Property:</strong> %s</p>
<p><strong>Amount Due:</strong> $%s</p>
<p>If you have already made the payment, please disregard this message. If you have any questions or concerns, please contact your landlord directly.</p>
<p>Thank you,<br>%s</p>
</body></html>`, tenantName, propertyAddress, amount.StringFixed(2), landlordName)

	return m.send(recipient, subject, body, consts.EmailTypeTenantReminder)
}
