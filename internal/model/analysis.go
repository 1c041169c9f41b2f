package model

import (
	"errors"
	"fmt"

	"github.com/ppiankov/dcntforecast/internal/catalog"
)

// Bounds accepted by the console prompts
const (
	YearMin = 1900
	YearMax = 2100

	MonthMin = 1
	MonthMax = 12

	HorizonMin = 1
	HorizonMax = 20

	AlphaMin = 0.50
	AlphaMax = 0.999
)

var (
	ErrInvalidYearRange  = errors.New("year end is before year start")
	ErrInvalidMonthRange = errors.New("month end is before month start")
	ErrOutOfBounds       = errors.New("value out of bounds")
)

// Analysis is the operator's choice for one pipeline run.
// It is built once per console iteration and never mutated afterwards.
type Analysis struct {
	Region      catalog.Region
	Type        catalog.AnalysisType
	Disease     catalog.DiseaseClass
	Granularity catalog.Granularity

	YearStart  int
	YearEnd    int
	MonthStart int // 1 unless granularity is month
	MonthEnd   int // 12 unless granularity is month

	HorizonYears int
	Alpha        float64
}

// Monthly reports whether the primary series is aggregated by month
func (a *Analysis) Monthly() bool {
	return a.Granularity.Mode == catalog.ModeMonth
}

// ValidateYears checks the year range in isolation so the collector can
// stop before asking for anything else
func ValidateYears(start, end int) error {
	if end < start {
		return fmt.Errorf("%w: %d > %d", ErrInvalidYearRange, start, end)
	}
	return nil
}

// ValidateMonths checks the month range in isolation
func ValidateMonths(start, end int) error {
	if end < start {
		return fmt.Errorf("%w: %d > %d", ErrInvalidMonthRange, start, end)
	}
	return nil
}

// Validate checks every bound and cross-field constraint
func (a *Analysis) Validate() error {
	if err := checkInt("year start", a.YearStart, YearMin, YearMax); err != nil {
		return err
	}
	if err := checkInt("year end", a.YearEnd, YearMin, YearMax); err != nil {
		return err
	}
	if err := ValidateYears(a.YearStart, a.YearEnd); err != nil {
		return err
	}

	if err := checkInt("month start", a.MonthStart, MonthMin, MonthMax); err != nil {
		return err
	}
	if err := checkInt("month end", a.MonthEnd, MonthMin, MonthMax); err != nil {
		return err
	}
	if err := ValidateMonths(a.MonthStart, a.MonthEnd); err != nil {
		return err
	}
	if !a.Monthly() && (a.MonthStart != MonthMin || a.MonthEnd != MonthMax) {
		return fmt.Errorf("%w: annual analysis must span months %d-%d", ErrOutOfBounds, MonthMin, MonthMax)
	}

	if err := checkInt("forecast horizon", a.HorizonYears, HorizonMin, HorizonMax); err != nil {
		return err
	}
	if !(a.Alpha >= AlphaMin && a.Alpha <= AlphaMax) {
		return fmt.Errorf("%w: alpha %v not in [%v, %v]", ErrOutOfBounds, a.Alpha, AlphaMin, AlphaMax)
	}

	return nil
}

func checkInt(name string, v, min, max int) error {
	if v < min || v > max {
		return fmt.Errorf("%w: %s %d not in [%d, %d]", ErrOutOfBounds, name, v, min, max)
	}
	return nil
}
