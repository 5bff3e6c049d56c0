// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// MaxTxSize is the largest serialized transaction accepted by the ledger
// (IPv6 MTU minus headers).
const MaxTxSize = 1232
