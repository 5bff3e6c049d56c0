// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrInvalidSize    = errors.New("invalid size")
	ErrMaxSeedLength  = errors.New("seed exceeds maximum length")
	ErrIllegalOwner   = errors.New("illegal owner for seeded address")
	ErrShortVecLength = errors.New("short vector length out of range")
)
