// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/binary"

	"github.com/ava-labs/kyc-client/consts"
)

// AppendShortVec appends the compact-u16 length prefix used by the
// transaction wire format. Each byte carries 7 bits, low bits first.
func AppendShortVec(b []byte, n int) ([]byte, error) {
	if n < 0 || n > int(consts.MaxUint16) {
		return nil, ErrShortVecLength
	}
	return binary.AppendUvarint(b, uint64(n)), nil
}
