package user

import "time"

// ReferenceYear is the leap year every birthday is projected onto, so 29 February stays representable.
const ReferenceYear = 2000

// DateOf drops the clock part of t, keeping its calendar day.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BirthdayThisYear projects a birth date onto ReferenceYear.
func BirthdayThisYear(d time.Time) time.Time {
	return time.Date(ReferenceYear, d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// BirthdayKeys returns the normalized birthdays celebrated on day.
// In non-leap years 29 February birthdays are celebrated on 28 February.
func BirthdayKeys(day time.Time) []time.Time {
	keys := []time.Time{BirthdayThisYear(day)}
	if day.Month() == time.February && day.Day() == 28 && !isLeap(day.Year()) {
		keys = append(keys, time.Date(ReferenceYear, time.February, 29, 0, 0, 0, 0, time.UTC))
	}

	return keys
}

// Window lists the calendar days [today, today+days).
func Window(today time.Time, days int) []time.Time {
	if days <= 0 {
		return nil
	}
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	out := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}

	return out
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
