package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/dcntforecast/internal/pipeline"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that both collaborators can be launched",
	Long: `Checks that the extraction and forecasting scripts exist and that their
interpreters are on PATH. Exits with code 10 when either is missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		extractor, forecaster := pipeline.Collaborators(cfg)

		var firstErr error
		for _, c := range []struct {
			label string
			check func() error
			desc  string
		}{
			{"Extractor", extractor.Check, extractor.Command().String()},
			{"Forecaster", forecaster.Check, forecaster.Command().String()},
		} {
			if err := c.check(); err != nil {
				fmt.Fprintf(out, "✗ %-11s %v\n", c.label, err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			fmt.Fprintf(out, "✓ %-11s %s\n", c.label, c.desc)
		}

		if firstErr != nil {
			return &ExitError{Code: ExitCollaboratorMissing, Err: firstErr}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
