package pipeline

import (
	"strconv"

	"github.com/ppiankov/dcntforecast/internal/catalog"
	"github.com/ppiankov/dcntforecast/internal/layout"
	"github.com/ppiankov/dcntforecast/internal/model"
)

// ExtractArgs builds the extractor's flags. Month bounds are only passed
// for monthly extraction.
func ExtractArgs(a *model.Analysis, mode catalog.Mode, monthStart, monthEnd int, out layout.Artifacts) []string {
	args := []string{
		"--system", a.Type.System,
		"--uf", a.Region.Code,
		"--year-start", strconv.Itoa(a.YearStart),
		"--year-end", strconv.Itoa(a.YearEnd),
		"--granularity", string(mode),
		"--icd-prefix", a.Disease.FilterArg(),
		"--out", out.Raw,
		"--out-clean", out.Clean,
	}
	if mode == catalog.ModeMonth {
		args = append(args,
			"--month-start", strconv.Itoa(monthStart),
			"--month-end", strconv.Itoa(monthEnd),
		)
	}
	return args
}

// ForecastArgs builds the forecaster's flags
func ForecastArgs(a *model.Analysis, input, result string) []string {
	return []string{
		"--csv", input,
		"--estado", a.Region.IBGE,
		"--anos-prev", strconv.Itoa(a.HorizonYears),
		"--alpha", strconv.FormatFloat(a.Alpha, 'f', -1, 64),
		"--saida", result,
		"--pretty",
	}
}
