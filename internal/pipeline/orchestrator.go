// Package pipeline drives the extractor and the forecaster for one analysis,
// falling back to annual data when a monthly forecast fails.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/dcntforecast/internal/catalog"
	"github.com/ppiankov/dcntforecast/internal/invoke"
	"github.com/ppiankov/dcntforecast/internal/layout"
	"github.com/ppiankov/dcntforecast/internal/model"
)

var (
	// ErrExtractionFailed means the extractor exited non-zero
	ErrExtractionFailed = errors.New("extraction failed")
	// ErrForecastFailed means the forecaster exited non-zero with no fallback left
	ErrForecastFailed = errors.New("forecast failed")
)

const (
	stageExtract  = "extract"
	stageForecast = "forecast"
)

// StageError reports which invocation ended the run
type StageError struct {
	Stage    string       // extract or forecast
	Mode     catalog.Mode // granularity of the failed attempt
	ExitCode int          // collaborator exit status
	Err      error        // ErrExtractionFailed or ErrForecastFailed
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s (%s data, exit code %d)", e.Err, e.Mode, e.ExitCode)
}

func (e *StageError) Unwrap() error { return e.Err }

// Invoker runs one collaborator command to completion
type Invoker interface {
	Run(ctx context.Context, cmd invoke.Command) (invoke.Result, error)
}

// Collaborators builds the extractor and forecaster from configuration
func Collaborators(cfg *model.Config) (extractor, forecaster invoke.Collaborator) {
	extractor = invoke.Collaborator{
		Name:            "R",
		Interpreter:     cfg.Extractor.Interpreter,
		InterpreterArgs: cfg.Extractor.InterpreterArgs,
		Script:          cfg.Extractor.Script,
	}
	forecaster = invoke.Collaborator{
		Name:            "PY",
		Interpreter:     cfg.Forecaster.Interpreter,
		InterpreterArgs: cfg.Forecaster.InterpreterArgs,
		Script:          cfg.Forecaster.Script,
	}
	return extractor, forecaster
}

// Outcome is what a finished run produced
type Outcome struct {
	State    State
	Fallback bool
	Dir      string
	// Artifacts is the set that produced the result, or the set being
	// worked on when the run failed
	Artifacts layout.Artifacts
	Record    *model.RunRecord
	Manifest  string
}

// Orchestrator owns the extract/forecast state machine
type Orchestrator struct {
	extractor  invoke.Collaborator
	forecaster invoke.Collaborator
	invoker    Invoker
	useClean   bool
	logger     *zap.Logger
	warn       io.Writer
	now        func() time.Time
	ids        *idSource
}

// NewOrchestrator creates an orchestrator for the configured collaborators
func NewOrchestrator(cfg *model.Config, inv Invoker, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	extractor, forecaster := Collaborators(cfg)
	return &Orchestrator{
		extractor:  extractor,
		forecaster: forecaster,
		invoker:    inv,
		useClean:   cfg.Pipeline.ForecastInput == model.ForecastInputClean,
		logger:     logger,
		warn:       os.Stderr,
		now:        time.Now,
		ids:        newIDSource(),
	}
}

// SetWarningOutput redirects operator warnings (stderr by default)
func (o *Orchestrator) SetWarningOutput(w io.Writer) {
	o.warn = w
}

// CheckCollaborators verifies both collaborators can be launched
func (o *Orchestrator) CheckCollaborators() error {
	if err := o.extractor.Check(); err != nil {
		return err
	}
	return o.forecaster.Check()
}

// run is the mutable state of one pipeline execution
type run struct {
	analysis *model.Analysis
	layout   *layout.Layout
	state    State
	current  layout.Artifacts
	fallback bool
	err      error
	record   *model.RunRecord
}

// Run executes the state machine until Done or Failed. The returned error
// is nil exactly when the final state is Done.
func (o *Orchestrator) Run(ctx context.Context, a *model.Analysis, l *layout.Layout) (*Outcome, error) {
	started := o.now()
	r := &run{
		analysis: a,
		layout:   l,
		state:    StateIdle,
		current:  l.Primary,
		record: &model.RunRecord{
			ID:        o.ids.next(started),
			StartedAt: started,
			Analysis:  a.Record(),
		},
	}

	for !r.state.Terminal() {
		from := r.state
		r.state = o.step(ctx, r)
		o.logger.Info("Pipeline transition",
			zap.String("run", r.record.ID),
			zap.String("from", from.String()),
			zap.String("to", r.state.String()))
	}

	out := &Outcome{
		State:     r.state,
		Fallback:  r.fallback,
		Dir:       l.Dir,
		Artifacts: r.current,
		Record:    r.record,
	}

	r.record.FinishedAt = o.now()
	r.record.State = r.state.String()
	r.record.Fallback = r.fallback
	if r.state == StateDone {
		r.record.Result = r.current.Result
	}
	if r.err != nil {
		r.record.Error = r.err.Error()
	}

	path, err := WriteManifest(l.Dir, r.record)
	if err != nil {
		o.logger.Warn("Run manifest not written", zap.String("dir", l.Dir), zap.Error(err))
	} else {
		out.Manifest = path
	}

	return out, r.err
}

func (o *Orchestrator) step(ctx context.Context, r *run) State {
	a := r.analysis
	switch r.state {
	case StateIdle:
		return o.stepIdle(r)
	case StateExtractingPrimary:
		return o.stepExtract(ctx, r, a.Granularity.Mode, a.MonthStart, a.MonthEnd, StateForecastingPrimary)
	case StateForecastingPrimary:
		return o.stepForecastPrimary(ctx, r)
	case StateFallingBack:
		return o.stepFallingBack(r)
	case StateExtractingAnnual:
		return o.stepExtract(ctx, r, catalog.ModeYear, model.MonthMin, model.MonthMax, StateForecastingAnnual)
	case StateForecastingAnnual:
		return o.stepForecastAnnual(ctx, r)
	}
	r.err = fmt.Errorf("pipeline: no step for state %s", r.state)
	return StateFailed
}

func (o *Orchestrator) stepIdle(r *run) State {
	if err := os.MkdirAll(r.layout.Dir, 0755); err != nil {
		r.err = fmt.Errorf("create output folder: %w", err)
		return StateFailed
	}
	return StateExtractingPrimary
}

func (o *Orchestrator) stepExtract(ctx context.Context, r *run, mode catalog.Mode, monthStart, monthEnd int, next State) State {
	args := ExtractArgs(r.analysis, mode, monthStart, monthEnd, r.current)
	ok, err := o.invoke(ctx, r, o.extractor, stageExtract, mode, args)
	if err != nil {
		r.err = err
		return StateFailed
	}
	if !ok {
		r.err = o.stageError(r, stageExtract, mode, ErrExtractionFailed)
		return StateFailed
	}
	return next
}

func (o *Orchestrator) stepForecastPrimary(ctx context.Context, r *run) State {
	mode := r.analysis.Granularity.Mode
	ok, err := o.forecast(ctx, r, mode)
	if err != nil {
		r.err = err
		return StateFailed
	}
	if ok {
		return StateDone
	}
	if mode == catalog.ModeMonth {
		return StateFallingBack
	}
	r.err = o.stageError(r, stageForecast, mode, ErrForecastFailed)
	return StateFailed
}

func (o *Orchestrator) stepFallingBack(r *run) State {
	fmt.Fprintf(o.warn, "\n[WARN] forecast failed on monthly data\n")
	fmt.Fprintf(o.warn, "[WARN] falling back: exporting ANNUAL data and forecasting again\n")
	o.logger.Warn("Monthly forecast failed, falling back to annual", zap.String("run", r.record.ID))

	r.fallback = true
	r.current = r.layout.Annual
	return StateExtractingAnnual
}

func (o *Orchestrator) stepForecastAnnual(ctx context.Context, r *run) State {
	ok, err := o.forecast(ctx, r, catalog.ModeYear)
	if err != nil {
		r.err = err
		return StateFailed
	}
	if !ok {
		r.err = o.stageError(r, stageForecast, catalog.ModeYear,
			fmt.Errorf("%w on monthly and annual data", ErrForecastFailed))
		return StateFailed
	}
	return StateDone
}

func (o *Orchestrator) forecast(ctx context.Context, r *run, mode catalog.Mode) (bool, error) {
	input := r.current.Raw
	if o.useClean {
		input = r.current.Clean
	}
	args := ForecastArgs(r.analysis, input, r.current.Result)
	return o.invoke(ctx, r, o.forecaster, stageForecast, mode, args)
}

// invoke checks the collaborator, runs it and records the attempt. The
// bool is the process's success; the error means it could not run.
func (o *Orchestrator) invoke(ctx context.Context, r *run, c invoke.Collaborator, stage string, mode catalog.Mode, args []string) (bool, error) {
	cmd := c.Command(args...)
	attempt := model.Attempt{
		Stage:       stage,
		Granularity: string(mode),
		Command:     cmd.String(),
		ExitCode:    -1,
	}

	if err := c.Check(); err != nil {
		attempt.Error = err.Error()
		r.record.Attempts = append(r.record.Attempts, attempt)
		return false, err
	}

	res, err := o.invoker.Run(ctx, cmd)
	attempt.ExitCode = res.ExitCode
	attempt.Duration = res.Duration
	if err != nil {
		attempt.Error = err.Error()
		r.record.Attempts = append(r.record.Attempts, attempt)
		return false, fmt.Errorf("%s: %w", stage, err)
	}
	r.record.Attempts = append(r.record.Attempts, attempt)

	if !res.Success() {
		o.logger.Warn("Collaborator failed",
			zap.String("stage", stage),
			zap.String("granularity", string(mode)),
			zap.Int("exit_code", res.ExitCode))
	}
	return res.Success(), nil
}

func (o *Orchestrator) stageError(r *run, stage string, mode catalog.Mode, err error) error {
	code := -1
	if n := len(r.record.Attempts); n > 0 {
		code = r.record.Attempts[n-1].ExitCode
	}
	return &StageError{Stage: stage, Mode: mode, ExitCode: code, Err: err}
}
