// Package goal contains spending-goal use cases.
package goal

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// PeriodRange computes the [start, end] date window for a goal period.
// When startNext is true the anchor date is first advanced to the beginning of
// the next period: WEEKLY to the Monday of next week, MONTHLY to the first day
// of next month, YEARLY to January 1 of next year.
func PeriodRange(today time.Time, period entity.GoalPeriod, startNext bool) (start, end time.Time, err error) {
	if !period.IsValid() {
		return time.Time{}, time.Time{}, domainerror.NewGoalError(
			domainerror.ErrCodeUnsupportedPeriod,
			"unsupported period: "+string(period),
			domainerror.ErrUnsupportedPeriod,
		)
	}

	today = truncateToDay(today)

	if startNext {
		switch period {
		case entity.GoalPeriodWeekly:
			today = weekStart(today).AddDate(0, 0, 7)
		case entity.GoalPeriodMonthly:
			today = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, 1, 0)
		case entity.GoalPeriodYearly:
			today = time.Date(today.Year()+1, time.January, 1, 0, 0, 0, 0, today.Location())
		}
	}

	switch period {
	case entity.GoalPeriodWeekly:
		start = weekStart(today)
		end = start.AddDate(0, 0, 6)
	case entity.GoalPeriodMonthly:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		end = start.AddDate(0, 1, -1)
	case entity.GoalPeriodYearly:
		start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		end = time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location())
	}

	return start, end, nil
}

// weekStart returns the Monday of the week containing the given date.
func weekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return date.AddDate(0, 0, -(weekday - 1))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
