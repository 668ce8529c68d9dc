package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is an inclusive range of calendar days, evaluated in UTC.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Validate checks that both ends are set and ordered.
func (r DateRange) Validate() error {
	var errs []FieldError
	if r.From.IsZero() {
		errs = append(errs, FieldError{Field: "from", Message: "required"})
	}
	if r.To.IsZero() {
		errs = append(errs, FieldError{Field: "to", Message: "required"})
	}
	if len(errs) == 0 && r.Start().After(r.End()) {
		errs = append(errs, FieldError{Field: "to", Message: "must not be before from"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Start is midnight UTC of the first day.
func (r DateRange) Start() time.Time {
	return startOfDay(r.From)
}

// End is midnight UTC after the last day; the range is [Start, End).
func (r DateRange) End() time.Time {
	return startOfDay(r.To).AddDate(0, 0, 1)
}

// Years lists every calendar year the range touches, ascending.
func (r DateRange) Years() []int {
	from, to := r.Start().Year(), startOfDay(r.To).Year()
	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// YearlyConsumption holds a customer's confirmed spend per month of one year.
// Months always has all twelve keys.
type YearlyConsumption struct {
	Year   int                            `json:"year"`
	Months map[time.Month]decimal.Decimal `json:"months"`
}

// NewYearlyConsumption returns a bucket with all twelve months set to zero.
func NewYearlyConsumption(year int) YearlyConsumption {
	months := make(map[time.Month]decimal.Decimal, 12)
	for m := time.January; m <= time.December; m++ {
		months[m] = decimal.Zero
	}
	return YearlyConsumption{Year: year, Months: months}
}

// Total sums every month of the year.
func (c YearlyConsumption) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range c.Months {
		total = total.Add(v)
	}
	return total
}

// MonthlyTotal is one aggregated (year, month) cell read from storage.
type MonthlyTotal struct {
	Year  int             `db:"year"`
	Month int             `db:"month"`
	Total decimal.Decimal `db:"total"`
}

// PackageBookingCount is the number of confirmed bookings of one package.
type PackageBookingCount struct {
	PackageID   int64  `json:"package_id"`
	PackageName string `json:"package_name"`
	Count       int64  `json:"count"`
}

// PackageSpending is the confirmed booking revenue of one package.
type PackageSpending struct {
	PackageID   int64           `json:"package_id"`
	PackageName string          `json:"package_name"`
	Total       decimal.Decimal `json:"total"`
}

// BookingWindow selects live bookings in one status booked within [Start, End).
type BookingWindow struct {
	Status BookingStatus
	Start  time.Time
	End    time.Time
}

// Window returns the booking window of the range for status.
func (r DateRange) Window(status BookingStatus) BookingWindow {
	return BookingWindow{Status: status, Start: r.Start(), End: r.End()}
}
