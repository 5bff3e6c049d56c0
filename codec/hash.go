// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"github.com/mr-tron/base58"

	"github.com/ava-labs/kyc-client/consts"
)

// Hash is a 32 byte ledger hash, such as a recent blockhash.
type Hash [consts.HashLen]byte

var EmptyHash = Hash{}

func (h Hash) String() string {
	return base58.Encode(h[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(input []byte) error {
	return decodeFixed(h[:], input)
}
