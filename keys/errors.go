// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keys

import "errors"

var (
	ErrMalformedKeypair = errors.New("malformed keypair file")
	ErrKeypairExists    = errors.New("keypair file already exists")
)
