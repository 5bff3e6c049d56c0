// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "kyc-cli" writes and reads KYC customer records on a Solana compatible
// cluster.
package main

import (
	"os"

	"github.com/ava-labs/kyc-client/cmd/kyc-cli/cmd"
	"github.com/ava-labs/kyc-client/utils"
)

func main() {
	if err := cmd.Execute(); err != nil {
		utils.Outf("{{red}}kyc-cli exited with error:{{/}} %+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
