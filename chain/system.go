// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/near/borsh-go"

	"github.com/ava-labs/kyc-client/codec"
	"github.com/ava-labs/kyc-client/consts"
)

// SystemCreateAccountWithSeed is the system program instruction index of
// CreateAccountWithSeed.
const SystemCreateAccountWithSeed uint32 = 3

// CreateAccountWithSeed returns a system program instruction that creates
// the account derived from ([base], [seed], [owner]), funds it with
// [lamports] from [from] and allocates [space] bytes owned by [owner].
//
// [from] and [base] must both sign. [to] must equal the derived address.
func CreateAccountWithSeed(
	from codec.Address,
	to codec.Address,
	base codec.Address,
	seed string,
	lamports uint64,
	space uint64,
	owner codec.Address,
) (*Instruction, error) {
	derived, err := codec.CreateWithSeed(base, seed, owner)
	if err != nil {
		return nil, err
	}
	if derived != to {
		return nil, ErrAddressMismatch
	}

	// The system program decodes instructions with bincode. Integers are
	// little endian like borsh, but strings carry a u64 length prefix.
	head, err := borsh.Serialize(struct {
		Index uint32
		Base  codec.Address
	}{SystemCreateAccountWithSeed, base})
	if err != nil {
		return nil, err
	}
	tail, err := borsh.Serialize(struct {
		Lamports uint64
		Space    uint64
		Owner    codec.Address
	}{lamports, space, owner})
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, len(head)+consts.Uint64Len+len(seed)+len(tail))
	data = append(data, head...)
	data = binary.LittleEndian.AppendUint64(data, uint64(len(seed)))
	data = append(data, seed...)
	data = append(data, tail...)

	return NewInstruction(
		codec.SystemProgram,
		data,
		Signer(from, true),
		Writable(to),
		Signer(base, false),
	), nil
}
