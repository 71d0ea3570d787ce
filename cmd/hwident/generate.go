package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/valentin-kaiser/hwident/apperror"
	"github.com/valentin-kaiser/hwident/hwid"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the hardware identifier of this machine",
	Long: `Collect the enabled hardware components, join and hash them and print
the resulting identifier. A machine where no component could be read still
produces an identifier, but an unstable one.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result := hwid.New(cfg).Generate(ctx)

	if flagJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return apperror.Wrap(err)
		}
	} else {
		fmt.Printf("Identifier: %s\n", result.Identifier)
		fmt.Printf("Algorithm:  %s\n", result.Algorithm)
		fmt.Printf("Request:    %s\n", result.RequestID)
		order := []hwid.Category{hwid.CategoryCPU, hwid.CategoryBIOS, hwid.CategoryBaseBoard, hwid.CategoryDisk, hwid.CategoryTPM}
		for _, category := range order {
			value, ok := result.Components[category]
			if !ok {
				continue
			}
			if value == "" {
				value = "n/a"
			}
			fmt.Printf("  %-10s %s\n", category, value)
		}
	}

	if result.Canceled {
		return apperror.NewError("generation canceled")
	}
	if !result.Succeeded {
		return apperror.NewErrorf("generation failed: %s", result.ErrorDetail)
	}
	return nil
}
