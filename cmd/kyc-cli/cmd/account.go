// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ava-labs/kyc-client/locator"
	"github.com/ava-labs/kyc-client/utils"
)

var accountCmd = &cobra.Command{
	Use: "account",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var addressAccountCmd = &cobra.Command{
	Use:   "address",
	Short: "Derive the record account address without contacting the cluster",
	RunE: func(*cobra.Command, []string) error {
		payer, err := handler.session.LoadPayer()
		if err != nil {
			return err
		}
		program, err := handler.session.ProgramID()
		if err != nil {
			return err
		}
		addr, err := locator.DeriveAddress(payer.PublicKey(), handler.cfg.Seed, program)
		if err != nil {
			return err
		}
		utils.Outf("{{yellow}}base:{{/}} %s\n", payer.PublicKey())
		utils.Outf("{{yellow}}seed:{{/}} %s\n", handler.cfg.Seed)
		utils.Outf("{{yellow}}program:{{/}} %s\n", program)
		utils.Outf("{{yellow}}address:{{/}} %s\n", addr)
		return nil
	},
}

var ensureAccountCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Create the record account if it does not exist",
	RunE: func(*cobra.Command, []string) error {
		return handler.Prepare(context.Background())
	},
}
