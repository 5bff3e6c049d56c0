// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ava-labs/kyc-client/codec"
	"github.com/ava-labs/kyc-client/record"
	"github.com/ava-labs/kyc-client/utils"
)

var customerCmd = &cobra.Command{
	Use: "customer",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var writeCustomerCmd = &cobra.Command{
	Use:   "write",
	Short: "Write a customer record, prompting for fields not given as flags",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := context.Background()
		id, name, err := customerArgs(cmd, true)
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
		return nil
	},
}

var readCustomerCmd = &cobra.Command{
	Use:   "read",
	Short: "Read and decode the customer record",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		if err := handler.Prepare(ctx); err != nil {
			return err
		}
		c, err := handler.session.ReadCustomer(ctx)
		if err != nil {
			return err
		}
		printComponent(c, rawOutput)
		return nil
	},
}

var encodeCustomerCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print the hex encoded record without contacting the cluster",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, name, err := customerArgs(cmd, false)
		if err != nil {
			return err
		}
		b, err := record.Encode(int(record.OpcodeWrite), id, name)
		if err != nil {
			return err
		}
		utils.Outf("{{yellow}}size:{{/}} %d\n", len(b))
		utils.Outf("%s\n", codec.ToHex(b))
		return nil
	},
}
