package cli

import (
	"github.com/spf13/cobra"

	"github.com/ppiankov/dcntforecast/internal/cache"
	"github.com/ppiankov/dcntforecast/internal/console"
	"github.com/ppiankov/dcntforecast/internal/invoke"
	"github.com/ppiankov/dcntforecast/internal/pipeline"
	"github.com/ppiankov/dcntforecast/internal/prompt"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive console (same as running without a command)",
	Long: `Starts the interactive console. Both collaborator scripts are checked
before the first question is asked.

Each analysis goes through:
  1. Questions: region, analysis type, granularity, disease class, years,
     months (monthly only), forecast horizon and confidence level
  2. Summary and confirmation
  3. Extraction into a new dated folder under --out-dir
  4. Forecasting, with an automatic annual fallback for monthly data

Press ctrl+c at any question to quit.`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	orch := pipeline.NewOrchestrator(cfg, invoke.NewRunner(logger), logger)
	if err := orch.CheckCollaborators(); err != nil {
		return err
	}

	matcher := prompt.NewMatcher(cache.NewMemoryCache(0, 0))
	term := prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), matcher)

	c, err := console.New(cfg, term, orch, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	return c.Run(cmd.Context())
}
