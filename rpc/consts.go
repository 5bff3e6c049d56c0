// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "time"

const (
	DefaultPollInterval   = 500 * time.Millisecond
	DefaultConfirmTimeout = 60 * time.Second

	encodingBase64 = "base64"
)

// Commitment is the level of finality requested from the node.
type Commitment string

const (
	CommitmentProcessed Commitment = "processed"
	CommitmentConfirmed Commitment = "confirmed"
	CommitmentFinalized Commitment = "finalized"
)

func (c Commitment) rank() int {
	switch c {
	case CommitmentProcessed:
		return 0
	case CommitmentConfirmed:
		return 1
	case CommitmentFinalized:
		return 2
	default:
		return -1
	}
}

// Valid reports whether c is a known commitment level.
func (c Commitment) Valid() bool {
	return c.rank() >= 0
}

// Reached reports whether [status] satisfies c.
func (c Commitment) Reached(status Commitment) bool {
	return status.Valid() && status.rank() >= c.rank()
}
