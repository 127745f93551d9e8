package discipline

import "time"

// Statutory offsets in calendar days.
const (
	NoticeBoardDays       = 10
	EmployerActionDays    = 42
	ShowCauseResponseDays = 5
	AppealFilingDays      = 21
	FinalPaymentDays      = 10
)

// Date truncates t to midnight UTC of its calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays offsets anchor by n calendar days.
func AddDays(anchor time.Time, n int) time.Time {
	return Date(anchor).AddDate(0, 0, n)
}

// IsPast reports whether deadline lies strictly before today.
func IsPast(deadline, today time.Time) bool {
	return Date(deadline).Before(Date(today))
}

func addDaysPtr(anchor *time.Time, n int) *time.Time {
	if anchor == nil {
		return nil
	}
	d := AddDays(*anchor, n)
	return &d
}

func datePtr(t time.Time) *time.Time {
	d := Date(t)
	return &d
}
