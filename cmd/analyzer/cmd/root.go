package cmd

import (
	"fmt"
	"os"

	"golang-statement-analyzer/cmd/analyzer/config"
	"golang-statement-analyzer/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "Bank statement analysis tool",
	Long: `Analyzer is a command-line tool for analyzing bank statement exports.
It normalizes CSV statements from different banks, assigns spending
categories to every transaction, and produces summary metrics, trend
series and merchant rankings.

Examples:
  analyzer analyze --file statement.csv
  analyzer analyze --file statement.csv --start-date 01/01/2024 --end-date 31/03/2024
  analyzer analyze --file statement.csv --output-format json --output-file report.json
  analyzer categories --file statement.csv
  analyzer version`,
	Version: getVersionString(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
			os.Exit(1)
		}

		if viper.GetBool("verbose") {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}
	}

	// Read environment variables that match
	viper.SetEnvPrefix("ANALYZER")
	viper.AutomaticEnv()

	// Quiet logging by default; verbose turns on debug output
	if log, err := logger.NewLogger(config.CreateLoggerConfig(viper.GetBool("verbose"))); err == nil {
		logger.SetGlobalLogger(log)
	}
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = getVersionString()
}

func getVersionString() string {
	if version == "dev" {
		return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	}
	return version
}
