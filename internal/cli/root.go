package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ppiankov/dcntforecast/internal/logging"
	"github.com/ppiankov/dcntforecast/internal/model"
)

// Version is overridden at build time with -ldflags
var Version = "v0.1.0"

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dcntforecast",
	Short: "dcntforecast - DATASUS extraction and chronic disease forecasting console",
	Long: `dcntforecast is an operator console for forecasting chronic
non-communicable disease (DCNT) indicators from DATASUS records.

It asks for a region, an analysis type, a disease class, a period and a
granularity, then runs the extractor and the forecaster into a dated
output folder. A failed monthly forecast falls back to annual data.

The console holds no statistics of its own: extraction and forecasting are
done by the configured R and Python scripts.

Run without arguments to start the interactive console.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		l, err := logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("Configuration loaded", zap.String("file", viper.ConfigFileUsed()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runConsole,
}

// Execute runs the root command. Cancelling ctx stops a running
// collaborator.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of dcntforecast.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dcntforecast %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	def := model.DefaultConfig()
	registerDefaults(def)
	flags := rootCmd.PersistentFlags()

	// Global flags
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.dcntforecast/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic log")
	flags.String("log-file", "", "write the diagnostic log to this file instead of stderr")

	// Collaborators
	flags.String("rscript", def.Extractor.Interpreter, "interpreter for the extraction script")
	flags.String("rfile", def.Extractor.Script, "extraction script")
	flags.String("python", def.Forecaster.Interpreter, "interpreter for the forecasting script")
	flags.String("pyfile", def.Forecaster.Script, "forecasting script")

	// Output and pipeline
	flags.String("out-dir", def.Output.Dir, "root folder for run folders")
	flags.String("on-exhausted", def.Output.OnExhausted, "when every numbered folder exists: error or reuse")
	flags.String("forecast-input", def.Pipeline.ForecastInput, "CSV handed to the forecaster: raw or clean")
	flags.Bool("continue-on-failure", def.Pipeline.ContinueOnFailure, "keep the console open after a failed analysis")

	// Bind flags to viper
	for key, flag := range flagKeys {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// flagKeys maps config keys to the flags that override them
var flagKeys = map[string]string{
	"logging.verbose":              "verbose",
	"logging.file":                 "log-file",
	"extractor.interpreter":        "rscript",
	"extractor.script":             "rfile",
	"forecaster.interpreter":       "python",
	"forecaster.script":            "pyfile",
	"output.dir":                   "out-dir",
	"output.on_exhausted":          "on-exhausted",
	"pipeline.forecast_input":      "forecast-input",
	"pipeline.continue_on_failure": "continue-on-failure",
}

// registerDefaults makes every key known to viper so environment
// variables can override keys that have no flag
func registerDefaults(cfg *model.Config) {
	viper.SetDefault("extractor.interpreter_args", cfg.Extractor.InterpreterArgs)
	viper.SetDefault("forecaster.interpreter_args", cfg.Forecaster.InterpreterArgs)
	viper.SetDefault("defaults.year_start", cfg.Defaults.YearStart)
	viper.SetDefault("defaults.year_end", cfg.Defaults.YearEnd)
	viper.SetDefault("defaults.month_start", cfg.Defaults.MonthStart)
	viper.SetDefault("defaults.month_end", cfg.Defaults.MonthEnd)
	viper.SetDefault("defaults.horizon_years", cfg.Defaults.HorizonYears)
	viper.SetDefault("defaults.alpha", cfg.Defaults.Alpha)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(filepath.Join(home, ".dcntforecast"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match DCNTFORECAST_*
	viper.SetEnvPrefix("DCNTFORECAST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the effective configuration from defaults, config
// file, environment and flags
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
