// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"golang.org/x/exp/slices"

	"github.com/ava-labs/kyc-client/codec"
)

// maxAccounts is bounded by the single byte account indices.
const maxAccounts = 256

// MessageHeader partitions [Message.AccountKeys]: signers come first,
// writable before readonly, followed by writable and then readonly
// non-signers.
type MessageHeader struct {
	NumRequiredSignatures uint8
	NumReadonlySigned     uint8
	NumReadonlyUnsigned   uint8
}

// CompiledInstruction references accounts by their index in
// [Message.AccountKeys].
type CompiledInstruction struct {
	ProgramIndex uint8
	Accounts     []uint8
	Data         []byte
}

// Message is the signed portion of a legacy transaction.
type Message struct {
	Header          MessageHeader
	AccountKeys     []codec.Address
	RecentBlockhash codec.Hash
	Instructions    []CompiledInstruction
}

// NewMessage compiles [instrs] into a Message paid for by [payer].
func NewMessage(payer codec.Address, blockhash codec.Hash, instrs ...*Instruction) (*Message, error) {
	if len(instrs) == 0 {
		return nil, ErrNoInstructions
	}

	// Merge account usage, preserving first appearance. The payer always
	// signs, is always writable and is always first.
	metas := []AccountMeta{Signer(payer, true)}
	index := map[codec.Address]int{payer: 0}
	add := func(m AccountMeta) {
		if i, ok := index[m.PublicKey]; ok {
			metas[i].IsSigner = metas[i].IsSigner || m.IsSigner
			metas[i].IsWritable = metas[i].IsWritable || m.IsWritable
			return
		}
		index[m.PublicKey] = len(metas)
		metas = append(metas, m)
	}
	for _, instr := range instrs {
		for _, m := range instr.Accounts {
			add(m)
		}
		add(AccountMeta{PublicKey: instr.Program})
	}
	if len(metas) > maxAccounts {
		return nil, ErrTooManyAccounts
	}
	slices.SortStableFunc(metas, func(a, b AccountMeta) int {
		return metaRank(a) - metaRank(b)
	})

	msg := &Message{
		AccountKeys:     make([]codec.Address, len(metas)),
		RecentBlockhash: blockhash,
		Instructions:    make([]CompiledInstruction, len(instrs)),
	}
	for i, m := range metas {
		msg.AccountKeys[i] = m.PublicKey
		index[m.PublicKey] = i
		switch {
		case m.IsSigner:
			msg.Header.NumRequiredSignatures++
			if !m.IsWritable {
				msg.Header.NumReadonlySigned++
			}
		case !m.IsWritable:
			msg.Header.NumReadonlyUnsigned++
		}
	}
	for i, instr := range instrs {
		ci := CompiledInstruction{
			ProgramIndex: uint8(index[instr.Program]),
			Accounts:     make([]uint8, len(instr.Accounts)),
			Data:         instr.Data,
		}
		for j, m := range instr.Accounts {
			ci.Accounts[j] = uint8(index[m.PublicKey])
		}
		msg.Instructions[i] = ci
	}
	return msg, nil
}

func metaRank(m AccountMeta) int {
	switch {
	case m.IsSigner && m.IsWritable:
		return 0
	case m.IsSigner:
		return 1
	case m.IsWritable:
		return 2
	default:
		return 3
	}
}

// Signers returns the accounts that must sign the message, in signature
// order.
func (m *Message) Signers() []codec.Address {
	return m.AccountKeys[:m.Header.NumRequiredSignatures]
}

// Marshal returns the wire encoding of m.
func (m *Message) Marshal() ([]byte, error) {
	b := []byte{
		m.Header.NumRequiredSignatures,
		m.Header.NumReadonlySigned,
		m.Header.NumReadonlyUnsigned,
	}
	b, err := codec.AppendShortVec(b, len(m.AccountKeys))
	if err != nil {
		return nil, err
	}
	for _, k := range m.AccountKeys {
		b = append(b, k[:]...)
	}
	b = append(b, m.RecentBlockhash[:]...)
	if b, err = codec.AppendShortVec(b, len(m.Instructions)); err != nil {
		return nil, err
	}
	for _, ci := range m.Instructions {
		b = append(b, ci.ProgramIndex)
		if b, err = codec.AppendShortVec(b, len(ci.Accounts)); err != nil {
			return nil, err
		}
		b = append(b, ci.Accounts...)
		if b, err = codec.AppendShortVec(b, len(ci.Data)); err != nil {
			return nil, err
		}
		b = append(b, ci.Data...)
	}
	return b, nil
}
