package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/valentin-kaiser/hwident/config"
	"github.com/valentin-kaiser/hwident/flag"
	"github.com/valentin-kaiser/hwident/hwid"
	"github.com/valentin-kaiser/hwident/logging"
)

var (
	flagJSON    bool
	flagLogFile string

	// flagDefaults only seeds the flag default values, the effective
	// configuration is assembled in loadConfig from file, environment and
	// set flags
	flagDefaults = hwid.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "hwident",
	Short: "Windows hardware identifier tool",
	Long: `hwident derives a stable identifier for a Windows machine from its
CPU, BIOS, baseboard, disk and TPM attributes, and offers helpers to
validate identifiers and to hash them for storage.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flag.Register("algorithm", &flagDefaults.Algorithm, "Digest algorithm: SHA1, SHA256 or SHA512")
	flag.Register("cpu", &flagDefaults.CPU, "Include the CPU identifier")
	flag.Register("bios", &flagDefaults.BIOS, "Include the BIOS serial number")
	flag.Register("baseboard", &flagDefaults.BaseBoard, "Include the baseboard serial number")
	flag.Register("disk", &flagDefaults.Disk, "Include the disk serial number")
	flag.Register("tpm", &flagDefaults.TPM, "Include the TPM manufacturer identifier")
	flag.Register("query-timeout-ms", &flagDefaults.QueryTimeoutMS, "Timeout per attribute query in milliseconds")
	flag.Register("max-retries", &flagDefaults.MaxRetries, "Attempts per attribute query")

	rootCmd.PersistentFlags().AddFlagSet(flag.FlagSet())
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file with rotation instead of the console")
}

// setup configures logging before any command runs
func setup(_ *cobra.Command, _ []string) error {
	adapter := logging.NewZerologAdapter()
	if flagLogFile != "" {
		adapter = logging.NewRotatingFileAdapter(logging.DefaultRotation(flagLogFile))
	}

	level := logging.InfoLevel
	if flag.Debug {
		level = logging.DebugLevel
	}
	logging.SetGlobalAdapter(adapter.SetLevel(level))
	return nil
}

// loadConfig reads the configuration file, merged with environment
// variables and command line flags
func loadConfig() (hwid.Config, error) {
	cfg := hwid.DefaultConfig()
	if err := config.Register("hwident", &cfg); err != nil {
		return cfg, err
	}
	if err := config.Read(); err != nil {
		return cfg, err
	}

	if current, ok := config.Get().(*hwid.Config); ok {
		return *current, nil
	}
	return cfg, nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
