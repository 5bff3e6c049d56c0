// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ava-labs/kyc-client/cli/prompt"
	"github.com/ava-labs/kyc-client/config"
	"github.com/ava-labs/kyc-client/consts"
	"github.com/ava-labs/kyc-client/record"
	"github.com/ava-labs/kyc-client/rpc"
)

const (
	defaultCustomerID   = "2342342323"
	defaultCustomerName = "XYZ Technologies pvt ltd..  "
)

var (
	handler *Handler

	configFile     string
	rpcURL         string
	commitment     string
	payerKeypair   string
	programKeypair string
	programObject  string
	programID      string
	seed           string
	noAirdrop      bool
	logLevel       string
	logFile        string
	prometheusFile string
	traceEndpoint  string

	customerID   string
	customerName string
	rawOutput    bool

	rootCmd = &cobra.Command{
		Use:        "kyc-cli",
		Short:      "KYC record client",
		SuggestFor: []string{"kyc-cli", "kyccli"},
		Version:    consts.Version,
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		runCmd,
		customerCmd,
		accountCmd,
		keyCmd,
	)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(
		&configFile,
		"config",
		"",
		"path to YAML config file",
	)
	flags.StringVar(
		&rpcURL,
		"rpc-url",
		config.DefaultRPCURL,
		"JSON-RPC endpoint of the cluster",
	)
	flags.StringVar(
		&commitment,
		"commitment",
		string(rpc.CommitmentConfirmed),
		"commitment level (processed/confirmed/finalized)",
	)
	flags.StringVar(
		&payerKeypair,
		"payer",
		config.DefaultPayerKeypair,
		"payer keypair file (generated if missing)",
	)
	flags.StringVar(
		&programKeypair,
		"program-keypair",
		config.DefaultProgramKeypair,
		"program keypair file written by deployment",
	)
	flags.StringVar(
		&programObject,
		"program-object",
		config.DefaultProgramObject,
		"program shared object",
	)
	flags.StringVar(
		&programID,
		"program-id",
		"",
		"program id (overrides --program-keypair)",
	)
	flags.StringVar(
		&seed,
		"seed",
		config.DefaultSeed,
		"seed of the record account",
	)
	flags.BoolVar(
		&noAirdrop,
		"no-airdrop",
		false,
		"fail instead of requesting an airdrop when the payer is short",
	)
	flags.StringVar(
		&logLevel,
		"log-level",
		"info",
		"log level",
	)
	flags.StringVar(
		&logFile,
		"log-file",
		"",
		"rotating log file (disabled when empty)",
	)
	flags.StringVar(
		&prometheusFile,
		"prometheus-file",
		"",
		"write RPC metrics in Prometheus text format on exit",
	)
	flags.StringVar(
		&traceEndpoint,
		"trace-endpoint",
		"",
		"export spans to this zipkin collector (disabled when empty)",
	)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Read(configFile)
		if err != nil {
			return err
		}
		applyFlags(cmd.Flags(), cfg)
		if err := cfg.Finalize(); err != nil {
			return err
		}
		handler, err = NewHandler(cfg)
		return err
	}
	rootCmd.SilenceErrors = true

	// run
	for _, c := range []*cobra.Command{runCmd, writeCustomerCmd, encodeCustomerCmd} {
		c.PersistentFlags().StringVar(
			&customerID,
			"customer-id",
			"",
			"customer id (at most 64 bytes)",
		)
		c.PersistentFlags().StringVar(
			&customerName,
			"customer-name",
			"",
			"customer name (at most 128 bytes)",
		)
	}
	for _, c := range []*cobra.Command{runCmd, readCustomerCmd} {
		c.PersistentFlags().BoolVar(
			&rawOutput,
			"raw",
			false,
			"print fields with their filler",
		)
	}

	// customer
	customerCmd.AddCommand(
		writeCustomerCmd,
		readCustomerCmd,
		encodeCustomerCmd,
	)

	// account
	accountCmd.AddCommand(
		addressAccountCmd,
		ensureAccountCmd,
	)

	// key
	keyCmd.AddCommand(
		genKeyCmd,
		addressKeyCmd,
		balanceKeyCmd,
		airdropKeyCmd,
	)
}

// applyFlags overrides [cfg] with every flag set on the command line.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	set := func(name string, f func()) {
		if flags.Changed(name) {
			f()
		}
	}
	set("rpc-url", func() { cfg.RPCURL = rpcURL })
	set("commitment", func() { cfg.Commitment = rpc.Commitment(commitment) })
	set("payer", func() { cfg.PayerKeypair = payerKeypair })
	set("program-keypair", func() { cfg.ProgramKeypair = programKeypair })
	set("program-object", func() { cfg.ProgramObject = programObject })
	set("program-id", func() { cfg.ProgramID = programID })
	set("seed", func() { cfg.Seed = seed })
	set("no-airdrop", func() { cfg.Airdrop = !noAirdrop })
	set("log-level", func() { cfg.LogLevel = logLevel })
	set("log-file", func() { cfg.LogFile = logFile })
	set("trace-endpoint", func() {
		cfg.Trace.Enabled = len(traceEndpoint) > 0
		cfg.Trace.Endpoint = traceEndpoint
	})
}

// Execute runs the root command and closes the handler even when the
// command fails.
func Execute() error {
	err := rootCmd.Execute()
	if handler != nil {
		if cerr := handler.Close(prometheusFile); err == nil {
			err = cerr
		}
		handler = nil
	}
	return err
}

// customerArgs returns the customer fields from flags, prompting for any
// that were not given.
func customerArgs(cmd *cobra.Command, interactive bool) (string, string, error) {
	id, name := customerID, customerName
	if !cmd.Flags().Changed("customer-id") {
		if !interactive {
			id = defaultCustomerID
		} else if v, err := prompt.Text("customer id", record.CustomerIDLen); err != nil {
			return "", "", err
		} else {
			id = v
		}
	}
	if !cmd.Flags().Changed("customer-name") {
		if !interactive {
			name = defaultCustomerName
		} else if v, err := prompt.Text("customer name", record.CustomerNameLen); err != nil {
			return "", "", err
		} else {
			name = v
		}
	}
	return id, name, nil
}
