package calendar

import (
	"testing"
	"time"
)

// before reports whether d is strictly earlier than o
func before(d, o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func TestCivilFromDays_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		days int64
		want Date
	}{
		{"epoch", 0, Date{1970, 1, 1}},
		{"day before epoch", -1, Date{1969, 12, 31}},
		{"y2k leap day", 11_016, Date{2000, 2, 29}},
		{"era start", -719_468, Date{0, 3, 1}},
		{"before era start", -719_469, Date{0, 2, 29}},
		{"1900 non-leap", -25_508, Date{1900, 3, 1}},
		{"1900 feb end", -25_509, Date{1900, 2, 28}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CivilFromDays(tt.days); got != tt.want {
				t.Errorf("CivilFromDays(%d) = %+v, want %+v", tt.days, got, tt.want)
			}
		})
	}
}

func TestCivilFromDays_MatchesTimePackage(t *testing.T) {
	// 1600-01-01 through 2400-12-31, crossing several 400-year eras
	start := time.Date(1600, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2400, 12, 31, 0, 0, 0, 0, time.UTC)

	prev := Date{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days := floorDiv(d.Unix(), secondsPerDay)
		got := CivilFromDays(days)
		y, m, day := d.Date()
		want := Date{Year: y, Month: int(m), Day: day}
		if got != want {
			t.Fatalf("CivilFromDays(%d) = %+v, want %+v", days, got, want)
		}
		if prev != (Date{}) && !before(prev, got) {
			t.Fatalf("dates not increasing: %v then %v", prev, got)
		}
		prev = got
	}
}

func TestFromEpochSeconds_Offset(t *testing.T) {
	loc := time.FixedZone("BRT", int(BrasiliaOffset))

	tests := []time.Time{
		time.Date(2024, 3, 1, 2, 59, 59, 0, time.UTC), // still Feb 29 in UTC-3
		time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC),
		time.Date(1969, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(1970, 1, 1, 1, 0, 0, 0, time.UTC),
		time.Date(1850, 6, 15, 12, 0, 0, 0, time.UTC),
	}

	for _, ts := range tests {
		t.Run(ts.Format(time.RFC3339), func(t *testing.T) {
			y, m, d := ts.In(loc).Date()
			want := Date{Year: y, Month: int(m), Day: d}
			if got := Today(ts.Unix()); got != want {
				t.Errorf("Today(%d) = %+v, want %+v", ts.Unix(), got, want)
			}
		})
	}
}

func TestFromEpochSeconds_Monotonic(t *testing.T) {
	prev := FromEpochSeconds(-5_000_000_000, BrasiliaOffset)
	for s := int64(-5_000_000_000); s < 5_000_000_000; s += 3_601 {
		cur := FromEpochSeconds(s, BrasiliaOffset)
		if before(cur, prev) {
			t.Fatalf("date went backwards at %d: %v -> %v", s, prev, cur)
		}
		prev = cur
	}
}

func TestDate_String(t *testing.T) {
	if got := (Date{Year: 2025, Month: 3, Day: 7}).String(); got != "07-03-2025" {
		t.Errorf("String() = %q", got)
	}
	if got := (Date{Year: 999, Month: 12, Day: 31}).String(); got != "31-12-0999" {
		t.Errorf("String() = %q", got)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int64 }{
		{7, 2, 3},
		{-7, 2, -4},
		{-86_400, 86_400, -1},
		{-1, 86_400, -1},
		{0, 86_400, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
