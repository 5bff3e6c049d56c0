// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrNoInstructions   = errors.New("no instructions")
	ErrTooManyAccounts  = errors.New("too many accounts")
	ErrMissingSigner    = errors.New("missing signer")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrUnsigned         = errors.New("transaction is not signed")
	ErrTxTooLarge       = errors.New("transaction too large")
	ErrAddressMismatch  = errors.New("address does not match seed derivation")
)
