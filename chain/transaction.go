// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/kyc-client/codec"
	"github.com/ava-labs/kyc-client/crypto/ed25519"
)

// Transaction is a legacy (unversioned) ledger transaction.
type Transaction struct {
	Signatures []ed25519.Signature
	Message    *Message

	digest []byte
	bytes  []byte
}

func NewTx(msg *Message) *Transaction {
	return &Transaction{Message: msg}
}

// Digest returns the bytes covered by every signature.
func (t *Transaction) Digest() ([]byte, error) {
	if len(t.digest) > 0 {
		return t.digest, nil
	}
	digest, err := t.Message.Marshal()
	if err != nil {
		return nil, err
	}
	t.digest = digest
	return digest, nil
}

// Sign signs the transaction with every key required by the message.
// [keys] may contain keys that are not required.
func (t *Transaction) Sign(keys ...ed25519.PrivateKey) error {
	msg, err := t.Digest()
	if err != nil {
		return err
	}
	byAddress := make(map[codec.Address]ed25519.PrivateKey, len(keys))
	for _, k := range keys {
		byAddress[k.PublicKey()] = k
	}
	signers := t.Message.Signers()
	sigs := make([]ed25519.Signature, len(signers))
	for i, addr := range signers {
		k, ok := byAddress[addr]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingSigner, addr)
		}
		sigs[i] = ed25519.Sign(msg, k)
	}
	t.Signatures = sigs
	t.bytes = nil
	return nil
}

// Verify checks every signature against the message.
func (t *Transaction) Verify() error {
	msg, err := t.Digest()
	if err != nil {
		return err
	}
	signers := t.Message.Signers()
	if len(t.Signatures) != len(signers) {
		return ErrInvalidSignature
	}
	for i, addr := range signers {
		if !ed25519.Verify(msg, addr, t.Signatures[i]) {
			return fmt.Errorf("%w: %s", ErrInvalidSignature, addr)
		}
	}
	return nil
}

// ID is the fee payer signature, which identifies the transaction on the
// ledger.
func (t *Transaction) ID() ed25519.Signature {
	if len(t.Signatures) == 0 {
		return ed25519.EmptySignature
	}
	return t.Signatures[0]
}

// Bytes returns the wire encoding of a signed transaction.
func (t *Transaction) Bytes() ([]byte, error) {
	if len(t.bytes) > 0 {
		return t.bytes, nil
	}
	if len(t.Signatures) == 0 {
		return nil, ErrUnsigned
	}
	msg, err := t.Digest()
	if err != nil {
		return nil, err
	}
	b, err := codec.AppendShortVec(nil, len(t.Signatures))
	if err != nil {
		return nil, err
	}
	for _, sig := range t.Signatures {
		b = append(b, sig[:]...)
	}
	b = append(b, msg...)
	if len(b) > MaxTxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTxTooLarge, len(b))
	}
	t.bytes = b
	return b, nil
}
