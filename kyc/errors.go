// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kyc

import (
	"errors"
	"fmt"

	"github.com/ava-labs/kyc-client/record"
	"github.com/ava-labs/kyc-client/rpc"
)

var (
	// ErrConfiguration is the parent of every error caused by a missing or
	// undeployed program.
	ErrConfiguration        = errors.New("configuration error")
	ErrProgramKeypair       = fmt.Errorf("%w: failed to read program keypair", ErrConfiguration)
	ErrProgramNotDeployed   = fmt.Errorf("%w: program is not deployed", ErrConfiguration)
	ErrProgramNotBuilt      = fmt.Errorf("%w: program needs to be built and deployed", ErrConfiguration)
	ErrProgramNotExecutable = fmt.Errorf("%w: program is not executable", ErrConfiguration)

	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoPayer           = errors.New("payer not established")
	ErrNoProgram         = errors.New("program not checked")

	ErrMalformedRecord = record.ErrMalformedRecord
	ErrAccountNotFound = rpc.ErrAccountNotFound
)
