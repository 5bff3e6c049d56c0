// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ava-labs/kyc-client/codec"

// AccountMeta describes how an instruction uses an account.
type AccountMeta struct {
	PublicKey  codec.Address
	IsSigner   bool
	IsWritable bool
}

// Instruction is a single program invocation. [Data] is opaque to the
// transaction and interpreted only by [Program].
type Instruction struct {
	Program  codec.Address
	Accounts []AccountMeta
	Data     []byte
}

func NewInstruction(program codec.Address, data []byte, accounts ...AccountMeta) *Instruction {
	return &Instruction{
		Program:  program,
		Accounts: accounts,
		Data:     data,
	}
}

// Writable returns a writable, non-signing account reference.
func Writable(pk codec.Address) AccountMeta {
	return AccountMeta{PublicKey: pk, IsWritable: true}
}

// Signer returns a signing account reference.
func Signer(pk codec.Address, writable bool) AccountMeta {
	return AccountMeta{PublicKey: pk, IsSigner: true, IsWritable: writable}
}
