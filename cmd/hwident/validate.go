package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/valentin-kaiser/hwident/hwid"
)

var validateCmd = &cobra.Command{
	Use:   "validate <identifier>",
	Short: "Check the shape of a hardware identifier",
	Long: `Check whether the given string has the shape of an identifier produced
by the configured algorithm. Exits non-zero when it does not.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !hwid.Valid(args[0], cfg) {
		fmt.Println("invalid")
		os.Exit(1)
	}
	fmt.Println("valid")
	return nil
}
