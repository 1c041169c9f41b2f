package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/dcntforecast/internal/catalog"
	"github.com/ppiankov/dcntforecast/internal/invoke"
	"github.com/ppiankov/dcntforecast/internal/layout"
	"github.com/ppiankov/dcntforecast/internal/model"
	"github.com/ppiankov/dcntforecast/internal/pipeline/pipelinetest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func analysis(t *testing.T, mode catalog.Mode) *model.Analysis {
	t.Helper()
	region, ok := catalog.RegionByCode("SP")
	require.True(t, ok)
	typ, ok := catalog.AnalysisBySystem("SIM-DO")
	require.True(t, ok)
	disease, ok := catalog.DiseaseBySlug("diabetes")
	require.True(t, ok)
	gran, ok := catalog.GranularityByMode(mode)
	require.True(t, ok)

	a := &model.Analysis{
		Region:       region,
		Type:         typ,
		Disease:      disease,
		Granularity:  gran,
		YearStart:    2016,
		YearEnd:      2019,
		MonthStart:   1,
		MonthEnd:     12,
		HorizonYears: 3,
		Alpha:        0.95,
	}
	if mode == catalog.ModeMonth {
		a.MonthStart, a.MonthEnd = 3, 9
	}
	require.NoError(t, a.Validate())
	return a
}

func readManifest(path string) (*model.RunRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec model.RunRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

type harness struct {
	cfg     *model.Config
	orch    *Orchestrator
	fake    *pipelinetest.Invoker
	layout  *layout.Layout
	warning *bytes.Buffer
}

func newHarness(t *testing.T, a *model.Analysis, codes ...int) *harness {
	t.Helper()
	cfg, err := pipelinetest.Config(t.TempDir())
	require.NoError(t, err)
	return newHarnessWithConfig(t, cfg, a, codes...)
}

func newHarnessWithConfig(t *testing.T, cfg *model.Config, a *model.Analysis, codes ...int) *harness {
	t.Helper()
	l, err := layout.Derive(a, cfg.Output.Dir, fixedNow, layout.FailWhenExhausted)
	require.NoError(t, err)

	fake := pipelinetest.NewInvoker(codes...)
	orch := NewOrchestrator(cfg, fake, zap.NewNop())
	warning := &bytes.Buffer{}
	orch.SetWarningOutput(warning)
	return &harness{cfg: cfg, orch: orch, fake: fake, layout: l, warning: warning}
}

func TestRun_AnnualSuccess(t *testing.T) {
	a := analysis(t, catalog.ModeYear)
	h := newHarness(t, a, 0, 0)

	out, err := h.orch.Run(context.Background(), a, h.layout)
	require.NoError(t, err)

	assert.Equal(t, StateDone, out.State)
	assert.False(t, out.Fallback)
	assert.Equal(t, h.layout.Primary, out.Artifacts)
	assert.Equal(t, 2, h.fake.Calls())

	assert.Equal(t, "year", h.fake.Flag(0, "--granularity"))
	assert.Empty(t, h.fake.Flag(0, "--month-start"))
	assert.Equal(t, h.layout.Primary.Raw, h.fake.Flag(1, "--csv"))
	assert.Equal(t, h.layout.Primary.Result, h.fake.Flag(1, "--saida"))
	assert.FileExists(t, h.layout.Primary.Result)
	assert.Empty(t, h.warning.String())

	rec, err := readManifest(out.Manifest)
	require.NoError(t, err)
	assert.Len(t, rec.ID, 26)
	assert.Equal(t, "done", rec.State)
	assert.Equal(t, h.layout.Primary.Result, rec.Result)
	assert.Empty(t, rec.Error)
	require.Len(t, rec.Attempts, 2)
	assert.Equal(t, "extract", rec.Attempts[0].Stage)
	assert.Equal(t, "forecast", rec.Attempts[1].Stage)
	assert.Equal(t, "diabetes", rec.Analysis.Disease)
}

func TestRun_MonthlyFallsBackToAnnual(t *testing.T) {
	a := analysis(t, catalog.ModeMonth)
	h := newHarness(t, a, 0, 1, 0, 0)

	out, err := h.orch.Run(context.Background(), a, h.layout)
	require.NoError(t, err)

	assert.Equal(t, StateDone, out.State)
	assert.True(t, out.Fallback)
	assert.Equal(t, h.layout.Annual, out.Artifacts)
	require.Equal(t, 4, h.fake.Calls())

	assert.Equal(t, "month", h.fake.Flag(0, "--granularity"))
	assert.Equal(t, "3", h.fake.Flag(0, "--month-start"))
	assert.Equal(t, "9", h.fake.Flag(0, "--month-end"))
	assert.Equal(t, h.layout.Primary.Raw, h.fake.Flag(0, "--out"))

	assert.Equal(t, h.layout.Primary.Result, h.fake.Flag(1, "--saida"))

	assert.Equal(t, "year", h.fake.Flag(2, "--granularity"))
	assert.Empty(t, h.fake.Flag(2, "--month-start"))
	assert.Equal(t, h.layout.Annual.Raw, h.fake.Flag(2, "--out"))
	assert.Equal(t, h.layout.Annual.Clean, h.fake.Flag(2, "--out-clean"))

	assert.Equal(t, h.layout.Annual.Raw, h.fake.Flag(3, "--csv"))
	assert.Equal(t, h.layout.Annual.Result, h.fake.Flag(3, "--saida"))

	assert.FileExists(t, h.layout.Primary.Raw)
	assert.FileExists(t, h.layout.Annual.Result)
	assert.NoFileExists(t, h.layout.Primary.Result)
	assert.Contains(t, h.warning.String(), "falling back")

	rec, err := readManifest(out.Manifest)
	require.NoError(t, err)
	assert.True(t, rec.Fallback)
	assert.Equal(t, h.layout.Annual.Result, rec.Result)
	require.Len(t, rec.Attempts, 4)
	assert.Equal(t, 1, rec.Attempts[1].ExitCode)
	assert.Equal(t, "month", rec.Attempts[1].Granularity)
	assert.Equal(t, "year", rec.Attempts[3].Granularity)
}

func TestRun_MonthlyFallbackFails(t *testing.T) {
	a := analysis(t, catalog.ModeMonth)
	h := newHarness(t, a, 0, 1, 0, 1)

	out, err := h.orch.Run(context.Background(), a, h.layout)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForecastFailed)

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, "forecast", stageErr.Stage)
	assert.Equal(t, catalog.ModeYear, stageErr.Mode)
	assert.Equal(t, 1, stageErr.ExitCode)

	assert.Equal(t, StateFailed, out.State)
	assert.True(t, out.Fallback)
	assert.Equal(t, 4, h.fake.Calls())

	rec, err := readManifest(out.Manifest)
	require.NoError(t, err)
	assert.Equal(t, "failed", rec.State)
	assert.Empty(t, rec.Result)
	assert.Contains(t, rec.Error, "forecast failed")
}

func TestRun_ExtractionFailure(t *testing.T) {
	for _, mode := range []catalog.Mode{catalog.ModeYear, catalog.ModeMonth} {
		t.Run(string(mode), func(t *testing.T) {
			a := analysis(t, mode)
			h := newHarness(t, a, 5)

			out, err := h.orch.Run(context.Background(), a, h.layout)
			assert.ErrorIs(t, err, ErrExtractionFailed)
			assert.NotErrorIs(t, err, ErrForecastFailed)

			var stageErr *StageError
			require.True(t, errors.As(err, &stageErr))
			assert.Equal(t, 5, stageErr.ExitCode)

			assert.Equal(t, StateFailed, out.State)
			assert.False(t, out.Fallback)
			assert.Equal(t, 1, h.fake.Calls())
			assert.FileExists(t, out.Manifest)
		})
	}
}

func TestRun_AnnualForecastFailureDoesNotFallBack(t *testing.T) {
	a := analysis(t, catalog.ModeYear)
	h := newHarness(t, a, 0, 4)

	out, err := h.orch.Run(context.Background(), a, h.layout)
	assert.ErrorIs(t, err, ErrForecastFailed)
	assert.Equal(t, StateFailed, out.State)
	assert.False(t, out.Fallback)
	assert.Equal(t, 2, h.fake.Calls())
	assert.Empty(t, h.warning.String())
}

func TestRun_FallbackExtractionFailure(t *testing.T) {
	a := analysis(t, catalog.ModeMonth)
	h := newHarness(t, a, 0, 1, 2)

	out, err := h.orch.Run(context.Background(), a, h.layout)
	assert.ErrorIs(t, err, ErrExtractionFailed)
	assert.Equal(t, StateFailed, out.State)
	assert.True(t, out.Fallback)
	assert.Equal(t, 3, h.fake.Calls())
}

func TestRun_CleanForecastInput(t *testing.T) {
	cfg, err := pipelinetest.Config(t.TempDir())
	require.NoError(t, err)
	cfg.Pipeline.ForecastInput = model.ForecastInputClean

	a := analysis(t, catalog.ModeYear)
	h := newHarnessWithConfig(t, cfg, a)

	_, err = h.orch.Run(context.Background(), a, h.layout)
	require.NoError(t, err)
	assert.Equal(t, h.layout.Primary.Clean, h.fake.Flag(1, "--csv"))
}

func TestRun_CollaboratorMissingBeforeInvocation(t *testing.T) {
	a := analysis(t, catalog.ModeYear)
	h := newHarness(t, a)
	require.NoError(t, h.orch.CheckCollaborators())

	require.NoError(t, os.Remove(h.cfg.Forecaster.Script))
	assert.ErrorIs(t, h.orch.CheckCollaborators(), invoke.ErrNotFound)

	out, err := h.orch.Run(context.Background(), a, h.layout)
	assert.ErrorIs(t, err, invoke.ErrNotFound)
	assert.Equal(t, StateFailed, out.State)
	assert.Equal(t, 1, h.fake.Calls(), "extraction ran, forecaster was never launched")

	rec, err := readManifest(out.Manifest)
	require.NoError(t, err)
	require.Len(t, rec.Attempts, 2)
	assert.Equal(t, -1, rec.Attempts[1].ExitCode)
	assert.NotEmpty(t, rec.Attempts[1].Error)
}

func TestRun_CreatesOutputFolder(t *testing.T) {
	a := analysis(t, catalog.ModeYear)
	h := newHarness(t, a)
	assert.NoDirExists(t, h.layout.Dir)

	_, err := h.orch.Run(context.Background(), a, h.layout)
	require.NoError(t, err)
	assert.DirExists(t, h.layout.Dir)
}

func TestRun_UniqueIDs(t *testing.T) {
	a := analysis(t, catalog.ModeYear)
	h := newHarness(t, a)

	first, err := h.orch.Run(context.Background(), a, h.layout)
	require.NoError(t, err)
	second, err := h.orch.Run(context.Background(), a, h.layout)
	require.NoError(t, err)

	assert.NotEqual(t, first.Record.ID, second.Record.ID)
	assert.Less(t, first.Record.ID, second.Record.ID)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "falling_back", StateFallingBack.String())
	assert.Equal(t, "unknown", State(99).String())
	assert.True(t, StateDone.Terminal())
	assert.True(t, StateFailed.Terminal())
	assert.False(t, StateForecastingAnnual.Terminal())
}
