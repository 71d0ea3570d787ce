package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/valentin-kaiser/hwident/logging/log"
	"github.com/valentin-kaiser/hwident/protect"
)

var hashCmd = &cobra.Command{
	Use:   "hash <input>",
	Short: "Produce a salted hash of an identifier for storage",
	Long: `Hash the input with a fresh random salt. The output embeds the salt and
can be checked later with the verify command without storing the input.`,
	Args: cobra.ExactArgs(1),
	RunE: runHash,
}

var verifyCmd = &cobra.Command{
	Use:   "verify <input> <hash>",
	Short: "Verify an input against a salted hash",
	Args:  cobra.ExactArgs(2),
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(verifyCmd)
}

func runHash(_ *cobra.Command, args []string) error {
	if protect.MayContainPII(args[0]) {
		log.Warn().Msg("input may contain personally identifiable information")
	}

	hashed, err := protect.SaltedHash(args[0], nil)
	if err != nil {
		return err
	}
	fmt.Println(hashed)
	return nil
}

func runVerify(_ *cobra.Command, args []string) error {
	if !protect.VerifySaltedHash(args[0], args[1]) {
		fmt.Println("mismatch")
		os.Exit(1)
	}
	fmt.Println("match")
	return nil
}
