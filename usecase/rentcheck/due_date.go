package rentcheck

import (
	"time"

	"github.com/renttrack/renttrack/consts"
	"github.com/renttrack/renttrack/infra/db/model"
	"github.com/renttrack/renttrack/utils"
)

// IsRentDue reports whether rent is contractually due for the agreement on
// the given calendar date. Pure function of the agreement's rent rule and the
// date.
//
// Fortnightly keys off the absolute day of month (weekday matches and
// day % 14 == 0) rather than an anchor date two weeks prior. A true 14-day
// cycle would need a lease anchor date the schema does not carry; do not
// change this without product confirmation.
//
// Monthly does not clamp for short months: due day 31 never matches in
// February.
func IsRentDue(agreement model.RentalAgreement, date time.Time) bool {
	switch agreement.RentFrequency {
	case consts.FrequencyWeekly:
		return agreement.RentDueDayOfWeek != nil &&
			utils.WeekdayMondayBased(date) == *agreement.RentDueDayOfWeek

	case consts.FrequencyFortnightly:
		return agreement.RentDueDayOfWeek != nil &&
			utils.WeekdayMondayBased(date) == *agreement.RentDueDayOfWeek &&
			date.Day()%14 == 0

	case consts.FrequencyMonthly:
		return agreement.RentDueDay != nil && date.Day() == *agreement.RentDueDay
	}

	return false
}
