// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ava-labs/kyc-client/cli/prompt"
	"github.com/ava-labs/kyc-client/codec"
	"github.com/ava-labs/kyc-client/consts"
	"github.com/ava-labs/kyc-client/crypto/ed25519"
	"github.com/ava-labs/kyc-client/keys"
	"github.com/ava-labs/kyc-client/utils"
)

// maxAirdrop is the largest amount a local validator faucet hands out.
const maxAirdrop = 1_000 * consts.LamportsPerToken

var keyCmd = &cobra.Command{
	Use: "key",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var genKeyCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate a keypair file (defaults to the payer path)",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) > 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		path := handler.cfg.PayerKeypair
		if len(args) == 1 {
			path = args[0]
		}
		priv, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return err
		}
		if err := keys.Save(path, priv); err != nil {
			return err
		}
		utils.Outf("{{green}}created keypair:{{/}} %s {{yellow}}path:{{/}} %s\n", priv.PublicKey(), path)
		return nil
	},
}

var addressKeyCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the payer address",
	RunE: func(*cobra.Command, []string) error {
		priv, err := keys.Load(handler.cfg.PayerKeypair)
		if err != nil {
			return err
		}
		utils.Outf("%s\n", priv.PublicKey())
		return nil
	},
}

var balanceKeyCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Print the balance of an address (defaults to the payer)",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) > 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		addr, err := addressArg(args)
		if err != nil {
			return err
		}
		balance, err := handler.cli.GetBalance(context.Background(), addr)
		if err != nil {
			return err
		}
		utils.Outf("{{yellow}}%s:{{/}} %s %s\n", addr, utils.FormatBalance(balance), consts.Symbol)
		return nil
	},
}

var airdropKeyCmd = &cobra.Command{
	Use:   "airdrop [amount]",
	Short: "Request an airdrop to the payer, prompting for the amount if not given",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) > 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		ctx := context.Background()
		var (
			amount uint64
			err    error
		)
		if len(args) == 1 {
			amount, err = prompt.ValidateAmount(args[0], maxAirdrop)
		} else {
			amount, err = prompt.Amount("amount ("+consts.Symbol+")", maxAirdrop)
		}
		if err != nil {
			return err
		}
		payer, err := handler.session.LoadPayer()
		if err != nil {
			return err
		}
		sig, err := handler.cli.RequestAirdropAndConfirm(ctx, payer.PublicKey(), amount)
		if err != nil {
			return err
		}
		balance, err := handler.cli.GetBalance(ctx, payer.PublicKey())
		if err != nil {
			return err
		}
		utils.Outf("{{green}}airdrop confirmed:{{/}} %s\n", sig)
		utils.Outf("{{yellow}}balance:{{/}} %s %s\n", utils.FormatBalance(balance), consts.Symbol)
		return nil
	},
}

func addressArg(args []string) (codec.Address, error) {
	if len(args) == 1 {
		return codec.ParseAddress(args[0])
	}
	priv, err := keys.Load(handler.cfg.PayerKeypair)
	if err != nil {
		return codec.EmptyAddress, err
	}
	return priv.PublicKey(), nil
}
