package model

import "fmt"

// Config holds console settings. It is loaded from flags, DCNTFORECAST_*
// environment variables and ~/.dcntforecast/config.yaml, in that order.
// None of it describes an analysis; analyses are always asked for.
type Config struct {
	Extractor  CollaboratorConfig `yaml:"extractor" mapstructure:"extractor"`
	Forecaster CollaboratorConfig `yaml:"forecaster" mapstructure:"forecaster"`
	Output     OutputConfig       `yaml:"output" mapstructure:"output"`
	Pipeline   PipelineConfig     `yaml:"pipeline" mapstructure:"pipeline"`
	Defaults   DefaultsConfig     `yaml:"defaults" mapstructure:"defaults"`
	Logging    LoggingConfig      `yaml:"logging" mapstructure:"logging"`
}

// CollaboratorConfig describes how to launch an external stage
type CollaboratorConfig struct {
	Interpreter     string   `yaml:"interpreter" mapstructure:"interpreter"`
	InterpreterArgs []string `yaml:"interpreter_args,omitempty" mapstructure:"interpreter_args"`
	Script          string   `yaml:"script" mapstructure:"script"`
}

// OutputConfig controls where run folders are created
type OutputConfig struct {
	Dir         string `yaml:"dir" mapstructure:"dir"`
	OnExhausted string `yaml:"on_exhausted" mapstructure:"on_exhausted"` // "error" or "reuse"
}

// PipelineConfig tunes the orchestrator and the console loop
type PipelineConfig struct {
	ForecastInput     string `yaml:"forecast_input" mapstructure:"forecast_input"` // "raw" or "clean"
	ContinueOnFailure bool   `yaml:"continue_on_failure" mapstructure:"continue_on_failure"`
}

// DefaultsConfig holds the values suggested by the prompts
type DefaultsConfig struct {
	YearStart    int     `yaml:"year_start" mapstructure:"year_start"`
	YearEnd      int     `yaml:"year_end" mapstructure:"year_end"`
	MonthStart   int     `yaml:"month_start" mapstructure:"month_start"`
	MonthEnd     int     `yaml:"month_end" mapstructure:"month_end"`
	HorizonYears int     `yaml:"horizon_years" mapstructure:"horizon_years"`
	Alpha        float64 `yaml:"alpha" mapstructure:"alpha"`
}

// LoggingConfig controls the diagnostic log (not the operator output)
type LoggingConfig struct {
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
	File    string `yaml:"file,omitempty" mapstructure:"file"`
}

const (
	ForecastInputRaw   = "raw"
	ForecastInputClean = "clean"

	OnExhaustedError = "error"
	OnExhaustedReuse = "reuse"
)

// DefaultConfig returns the stock configuration
func DefaultConfig() *Config {
	return &Config{
		Extractor: CollaboratorConfig{
			Interpreter:     "Rscript",
			InterpreterArgs: []string{"--vanilla"},
			Script:          "datasus_export_tabnet_csv.R",
		},
		Forecaster: CollaboratorConfig{
			Interpreter: "python",
			Script:      "ccnt2.py",
		},
		Output: OutputConfig{
			Dir:         "resultados",
			OnExhausted: OnExhaustedError,
		},
		Pipeline: PipelineConfig{
			ForecastInput:     ForecastInputRaw,
			ContinueOnFailure: false,
		},
		Defaults: DefaultsConfig{
			YearStart:    2016,
			YearEnd:      2019,
			MonthStart:   1,
			MonthEnd:     12,
			HorizonYears: 3,
			Alpha:        0.95,
		},
	}
}

// Validate rejects settings the console cannot act on
func (c *Config) Validate() error {
	switch c.Pipeline.ForecastInput {
	case ForecastInputRaw, ForecastInputClean:
	default:
		return fmt.Errorf("invalid forecast_input %q (want %s or %s)", c.Pipeline.ForecastInput, ForecastInputRaw, ForecastInputClean)
	}
	switch c.Output.OnExhausted {
	case OnExhaustedError, OnExhaustedReuse:
	default:
		return fmt.Errorf("invalid on_exhausted %q (want %s or %s)", c.Output.OnExhausted, OnExhaustedError, OnExhaustedReuse)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output dir must not be empty")
	}
	if c.Extractor.Interpreter == "" || c.Forecaster.Interpreter == "" {
		return fmt.Errorf("collaborator interpreters must not be empty")
	}
	return nil
}
