// Package calendar converts Unix time to civil dates under a fixed UTC offset
// without consulting a timezone database.
package calendar

import "fmt"

const (
	secondsPerDay = 86_400

	// BrasiliaOffset is UTC-3, used for folder dates
	BrasiliaOffset int64 = -3 * 3600

	daysPerEra = 146_097 // 400 Gregorian years
	// days from 0000-03-01 to 1970-01-01
	epochShift = 719_468
)

// Date is a proleptic Gregorian calendar day
type Date struct {
	Year  int
	Month int
	Day   int
}

// String formats the date as dd-mm-yyyy
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, d.Month, d.Year)
}


// CivilFromDays converts a count of days since 1970-01-01 into a date.
// Eras are 400-year blocks starting on March 1st so that the leap day is
// the last day of the computed year.
func CivilFromDays(days int64) Date {
	z := days + epochShift
	era := z
	if era < 0 {
		era -= daysPerEra - 1
	}
	era /= daysPerEra

	doe := z - era*daysPerEra                                 // [0, 146096]
	yoe := (doe - doe/1460 + doe/36_524 - doe/146_096) / 365 // [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)                 // [0, 365]
	mp := (5*doy + 2) / 153                                  // [0, 11], March-based
	day := doy - (153*mp+2)/5 + 1

	month := mp + 3
	if mp >= 10 {
		month = mp - 9
	}
	year := yoe + era*400
	if month <= 2 {
		year++
	}

	return Date{Year: int(year), Month: int(month), Day: int(day)}
}

// FromEpochSeconds shifts now by offset seconds and returns the civil date
func FromEpochSeconds(now, offset int64) Date {
	return CivilFromDays(floorDiv(now+offset, secondsPerDay))
}

// Today returns the UTC-3 date for a Unix timestamp
func Today(now int64) Date {
	return FromEpochSeconds(now, BrasiliaOffset)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
