package services

import "time"

// minimumLeadTime is the gap between approval and the first visit.
const minimumLeadTime = 2 * 24 * time.Hour

// NextWorkDate returns the first working date at least two days after base.
// Weekend results are pushed to the following Monday.
func NextWorkDate(base time.Time) time.Time {
	next := base.Add(minimumLeadTime)
	switch next.Weekday() {
	case time.Sunday:
		next = next.AddDate(0, 0, 1)
	case time.Saturday:
		next = next.AddDate(0, 0, 2)
	}
	return next
}
