// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package record

import "errors"

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrInvalidOpcode   = errors.New("opcode out of range")
)
