package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/valentin-kaiser/hwident/apperror"
	"github.com/valentin-kaiser/hwident/hwid"
	"github.com/valentin-kaiser/hwident/protect"
	"github.com/valentin-kaiser/hwident/wmi"
)

var protectCmd = &cobra.Command{
	Use:   "protect <app-id>",
	Short: "Derive an application-scoped identifier",
	Long: `Generate the hardware identifier and derive an application-scoped value
from it. Different application identifiers yield unrelated values and the
hardware identifier cannot be recovered from the output.`,
	Args: cobra.ExactArgs(1),
	RunE: runProtect,
}

var guidCmd = &cobra.Command{
	Use:   "guid",
	Short: "Print the Windows machine GUID",
	Long:  `Read the MachineGuid value from the Windows registry, useful as a cross-check against the generated identifier.`,
	RunE:  runGUID,
}

func init() {
	rootCmd.AddCommand(protectCmd)
	rootCmd.AddCommand(guidCmd)
}

func runProtect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result := hwid.New(cfg).Generate(ctx)
	if !result.Succeeded {
		return apperror.NewErrorf("generation failed: %s", result.ErrorDetail)
	}

	scoped, err := protect.ProtectedID(args[0], result.Identifier)
	if err != nil {
		return err
	}
	fmt.Println(scoped)
	return nil
}

func runGUID(_ *cobra.Command, _ []string) error {
	guid, err := wmi.MachineGUID()
	if err != nil {
		return err
	}
	fmt.Println(guid)
	return nil
}
