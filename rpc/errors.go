// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidEncoding    = errors.New("invalid account data encoding")
	ErrTransactionFailed  = errors.New("transaction failed")
	ErrInvalidCommitment  = errors.New("invalid commitment")
	ErrUnexpectedStatuses = errors.New("unexpected number of signature statuses")
)
