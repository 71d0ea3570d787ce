package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/valentin-kaiser/hwident/apperror"
	"github.com/valentin-kaiser/hwident/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(_ *cobra.Command, _ []string) error {
		v := version.Get()
		if flagJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return apperror.Wrap(encoder.Encode(v))
		}
		fmt.Printf("hwident %s\n", v.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
