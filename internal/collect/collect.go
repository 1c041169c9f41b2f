// Package collect walks the operator through the prompt sequence that
// produces an Analysis.
package collect

import (
	"fmt"

	"github.com/ppiankov/dcntforecast/internal/catalog"
	"github.com/ppiankov/dcntforecast/internal/model"
	"github.com/ppiankov/dcntforecast/internal/prompt"
)

// Prompt titles, also used by tests to script answers
const (
	TitleRegion      = "Select the federative unit (UF)"
	TitleAnalysis    = "Analysis type"
	TitleGranularity = "Data granularity"
	TitleDisease     = "Select the chronic disease group"
	TitleYearStart   = "Start year"
	TitleYearEnd     = "End year"
	TitleMonthStart  = "Start month (1-12)"
	TitleMonthEnd    = "End month (1-12)"
	TitleHorizon     = "Forecast horizon (years)"
	TitleAlpha       = "Confidence level alpha (e.g. 0.95)"
)

// Collector asks for one analysis at a time
type Collector struct {
	prompter prompt.Prompter
	defaults model.DefaultsConfig
}

// NewCollector creates a collector suggesting the given defaults
func NewCollector(p prompt.Prompter, defaults model.DefaultsConfig) *Collector {
	return &Collector{prompter: p, defaults: defaults}
}

// Collect runs the full prompt sequence. A reversed year or month range
// stops the sequence immediately with model.ErrInvalidYearRange or
// model.ErrInvalidMonthRange.
func (c *Collector) Collect() (*model.Analysis, error) {
	regions := catalog.Regions()
	idx, err := c.prompter.FuzzySelect(TitleRegion, catalog.RegionLabels())
	if err != nil {
		return nil, fmt.Errorf("select region: %w", err)
	}
	a := &model.Analysis{Region: regions[idx]}

	idx, err = c.prompter.Select(TitleAnalysis, catalog.AnalysisLabels())
	if err != nil {
		return nil, fmt.Errorf("select analysis type: %w", err)
	}
	a.Type = catalog.AnalysisTypes()[idx]

	idx, err = c.prompter.Select(TitleGranularity, catalog.GranularityLabels())
	if err != nil {
		return nil, fmt.Errorf("select granularity: %w", err)
	}
	a.Granularity = catalog.Granularities()[idx]

	idx, err = c.prompter.FuzzySelect(TitleDisease, catalog.DiseaseLabels())
	if err != nil {
		return nil, fmt.Errorf("select disease: %w", err)
	}
	a.Disease = catalog.DiseaseClasses()[idx]

	if a.YearStart, err = c.askInt(TitleYearStart, model.YearMin, model.YearMax, c.defaults.YearStart); err != nil {
		return nil, err
	}
	if a.YearEnd, err = c.askInt(TitleYearEnd, model.YearMin, model.YearMax, c.defaults.YearEnd); err != nil {
		return nil, err
	}
	if err := model.ValidateYears(a.YearStart, a.YearEnd); err != nil {
		return nil, err
	}

	a.MonthStart, a.MonthEnd = model.MonthMin, model.MonthMax
	if a.Monthly() {
		if a.MonthStart, err = c.askInt(TitleMonthStart, model.MonthMin, model.MonthMax, c.defaults.MonthStart); err != nil {
			return nil, err
		}
		if a.MonthEnd, err = c.askInt(TitleMonthEnd, model.MonthMin, model.MonthMax, c.defaults.MonthEnd); err != nil {
			return nil, err
		}
		if err := model.ValidateMonths(a.MonthStart, a.MonthEnd); err != nil {
			return nil, err
		}
	}

	if a.HorizonYears, err = c.askInt(TitleHorizon, model.HorizonMin, model.HorizonMax, c.defaults.HorizonYears); err != nil {
		return nil, err
	}

	a.Alpha, err = c.prompter.Float(prompt.FloatQuestion{
		Title:      TitleAlpha,
		Min:        model.AlphaMin,
		Max:        model.AlphaMax,
		Default:    c.defaults.Alpha,
		HasDefault: withinFloat(c.defaults.Alpha, model.AlphaMin, model.AlphaMax),
	})
	if err != nil {
		return nil, fmt.Errorf("ask alpha: %w", err)
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// askInt offers def as the default only when it is inside the bounds, so a
// bad config file cannot smuggle an out-of-range value past the prompt
func (c *Collector) askInt(title string, min, max, def int) (int, error) {
	v, err := c.prompter.Int(prompt.IntQuestion{
		Title:      title,
		Min:        min,
		Max:        max,
		Default:    def,
		HasDefault: def >= min && def <= max,
	})
	if err != nil {
		return 0, fmt.Errorf("ask %s: %w", title, err)
	}
	return v, nil
}

func withinFloat(v, min, max float64) bool {
	return v >= min && v <= max
}
