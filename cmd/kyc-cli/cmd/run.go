// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ava-labs/kyc-client/utils"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fund the payer, ensure the record account, write a customer and read it back",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := context.Background()
		id, name, err := customerArgs(cmd, false)
		if err != nil {
			return err
		}
		if err := handler.Prepare(ctx); err != nil {
			return err
		}
		sig, err := handler.session.WriteCustomer(ctx, id, name)
		if err != nil {
			return err
		}
		utils.Outf("{{green}}customer written:{{/}} %s\n", sig)

		c, err := handler.session.ReadCustomer(ctx)
		if err != nil {
			return err
		}
		printComponent(c, rawOutput)
		utils.Outf("{{green}}success{{/}}\n")
		return nil
	},
}
