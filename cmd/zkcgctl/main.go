// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command zkcgctl drives a VerifierEngine locally for manual smoke
// testing. It does not expose an HTTP surface; that is a host
// concern outside this module.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/zkcg-verifier"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zkcgctl",
		Short: "Drive a ZKCG VerifierEngine from the command line",
	}
	cmd.AddCommand(genesisCmd(), submitCmd())
	return cmd
}

func genesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genesis",
		Short: "Print the genesis protocol state",
		RunE: func(cmd *cobra.Command, args []string) error {
			state := zkcg.Genesis()
			fmt.Printf("state_root=%x nonce=%d epoch=%d\n", state.StateRoot, state.Nonce, state.Epoch)
			return nil
		},
	}
}

func submitCmd() *cobra.Command {
	var threshold uint64
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit one proof to a fresh engine seeded at genesis, using the always-accept stub backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := zkcg.NewVerifierEngine(zkcg.Genesis(), zkcg.StubBackend{}, zkcg.DefaultPolicy{}, zkcg.NewDefaultLogger())
			inputs := zkcg.PublicInputs{Threshold: threshold, OldRoot: zkcg.Hash{}, Nonce: 1}
			commitment := zkcg.Commitment{Root: zkcg.Hash{1}}

			if err := engine.ProcessTransition([]byte("demo-proof"), inputs, commitment); err != nil {
				return err
			}
			state := engine.State()
			fmt.Printf("accepted: state_root=%x nonce=%d\n", state.StateRoot, state.Nonce)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&threshold, "threshold", 1, "credit-gating threshold to submit")
	return cmd
}
