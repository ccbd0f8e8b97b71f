package consts

const (
	// Rent frequencies as stored on rental_agreements.rent_frequency
	FrequencyWeekly      = "Weekly"
	FrequencyFortnightly = "Fortnightly"
	FrequencyMonthly     = "Monthly"

	// Email categories recorded in email_logs.email_type
	EmailTypeRentReceived   = "rent_received"
	EmailTypeRentMissed     = "rent_missed"
	EmailTypeAmountMismatch = "rent_amount_mismatch"
	EmailTypeTenantReminder = "tenant_reminder"

	// Default config
	DefaultWorkerNumber    = 1
	DefaultIntervalInHours = 24
	DefaultAkahuBaseURL    = "https://api.akahu.nz/v1"
)
