package model

import "time"

// RunRecord is written as run.yaml next to the artifacts of every run
type RunRecord struct {
	ID         string    `yaml:"id"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`

	Analysis AnalysisRecord `yaml:"analysis"`
	Attempts []Attempt      `yaml:"attempts"`

	State    string `yaml:"state"`            // terminal state name
	Fallback bool   `yaml:"fallback"`         // annual fallback produced the result
	Result   string `yaml:"result,omitempty"` // forecast artifact path
	Error    string `yaml:"error,omitempty"`
}

// AnalysisRecord is the machine-facing snapshot of an Analysis
type AnalysisRecord struct {
	Region       string   `yaml:"region"`
	RegionIBGE   string   `yaml:"region_ibge"`
	System       string   `yaml:"system"`
	Disease      string   `yaml:"disease"`
	ICDPrefixes  []string `yaml:"icd_prefixes"`
	Granularity  string   `yaml:"granularity"`
	YearStart    int      `yaml:"year_start"`
	YearEnd      int      `yaml:"year_end"`
	MonthStart   int      `yaml:"month_start"`
	MonthEnd     int      `yaml:"month_end"`
	HorizonYears int      `yaml:"horizon_years"`
	Alpha        float64  `yaml:"alpha"`
}

// Attempt is one collaborator invocation
type Attempt struct {
	Stage       string        `yaml:"stage"` // extract or forecast
	Granularity string        `yaml:"granularity"`
	Command     string        `yaml:"command"`
	ExitCode    int           `yaml:"exit_code"`
	Duration    time.Duration `yaml:"duration"`
	Error       string        `yaml:"error,omitempty"`
}

// Record snapshots the analysis for the run manifest
func (a *Analysis) Record() AnalysisRecord {
	return AnalysisRecord{
		Region:       a.Region.Code,
		RegionIBGE:   a.Region.IBGE,
		System:       a.Type.System,
		Disease:      a.Disease.Slug,
		ICDPrefixes:  append([]string(nil), a.Disease.FilterCodes...),
		Granularity:  string(a.Granularity.Mode),
		YearStart:    a.YearStart,
		YearEnd:      a.YearEnd,
		MonthStart:   a.MonthStart,
		MonthEnd:     a.MonthEnd,
		HorizonYears: a.HorizonYears,
		Alpha:        a.Alpha,
	}
}
