package services

import (
	"testing"
	"time"
)

func TestNextWorkDate(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
	}

	cases := []struct {
		name string
		base time.Time
		want time.Time
	}{
		{name: "monday lands on wednesday", base: day(2024, 1, 1), want: day(2024, 1, 3)},
		{name: "wednesday lands on friday", base: day(2024, 1, 3), want: day(2024, 1, 5)},
		{name: "thursday skips saturday to monday", base: day(2024, 1, 4), want: day(2024, 1, 8)},
		{name: "friday skips sunday to monday", base: day(2024, 1, 5), want: day(2024, 1, 8)},
		{name: "saturday lands on monday", base: day(2024, 1, 6), want: day(2024, 1, 8)},
		{name: "sunday lands on tuesday", base: day(2024, 1, 7), want: day(2024, 1, 9)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextWorkDate(tc.base)
			if !got.Equal(tc.want) {
				t.Fatalf("expected %s, got %s", tc.want.Format(time.RFC3339), got.Format(time.RFC3339))
			}
			if wd := got.Weekday(); wd == time.Saturday || wd == time.Sunday {
				t.Fatalf("expected a weekday, got %s", wd)
			}
		})
	}
}
