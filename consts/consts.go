// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	Name    = "kyc-client"
	Version = "v0.1.0"
	Symbol  = "SOL"

	// Decimals is the number of decimal places of the native token. One SOL
	// is 10^Decimals lamports.
	Decimals         = 9
	LamportsPerToken = 1_000_000_000

	HashLen      = 32
	PublicKeyLen = 32
	Uint64Len    = 8
	MaxUint8     = ^uint8(0)
	MaxUint16    = ^uint16(0)

	// MaxSeedLen is the largest seed accepted by create-with-seed address
	// derivation.
	MaxSeedLen = 32
)
