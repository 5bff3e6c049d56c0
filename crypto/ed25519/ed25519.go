// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"crypto/ed25519"

	"github.com/hdevalence/ed25519consensus"
	"github.com/mr-tron/base58"

	"github.com/ava-labs/kyc-client/codec"
)

type (
	PrivateKey [ed25519.PrivateKeySize]byte
	Signature  [ed25519.SignatureSize]byte
)

// We use the ZIP-215 specification for ed25519 signature
// verification (https://zips.z.cash/zip-0215) because it provides
// an explicit validity criteria for signatures and is broadly compatible
// with signatures produced by almost all ed25519 implementations.
const (
	PublicKeyLen  = ed25519.PublicKeySize
	PrivateKeyLen = ed25519.PrivateKeySize
	// PrivateKeySeedLen is defined because ed25519.PrivateKey
	// is formatted as privateKey = seed|publicKey. We use this const
	// to extract the publicKey below.
	PrivateKeySeedLen = ed25519.SeedSize
	SignatureLen      = ed25519.SignatureSize
)

var (
	EmptyPrivateKey = PrivateKey{}
	EmptySignature  = Signature{}
)

// GeneratePrivateKey returns a Ed25519 PrivateKey.
func GeneratePrivateKey() (PrivateKey, error) {
	_, k, err := ed25519.GenerateKey(nil)
	if err != nil {
		return EmptyPrivateKey, err
	}
	return PrivateKey(k), nil
}

// PrivateKeyFromSeed derives the PrivateKey for a 32 byte seed.
func PrivateKeyFromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) != PrivateKeySeedLen {
		return EmptyPrivateKey, ErrInvalidPrivateKey
	}
	return PrivateKey(ed25519.NewKeyFromSeed(seed)), nil
}

// PrivateKeyFromBytes validates that [b] is a seed|publicKey pair and
// returns it as a PrivateKey.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return EmptyPrivateKey, ErrInvalidPrivateKey
	}
	p, err := PrivateKeyFromSeed(b[:PrivateKeySeedLen])
	if err != nil {
		return EmptyPrivateKey, err
	}
	if p != PrivateKey(b) {
		return EmptyPrivateKey, ErrInvalidPublicKey
	}
	return p, nil
}

// PublicKey returns the address associated with the Ed25519 PrivateKey p.
// The PublicKey is the last 32 bytes of p.
func (p PrivateKey) PublicKey() codec.Address {
	return codec.Address(p[PrivateKeySeedLen:])
}

// Sign returns a valid signature for msg using pk.
func Sign(msg []byte, pk PrivateKey) Signature {
	sig := ed25519.Sign(pk[:], msg)
	return Signature(sig)
}

// Verify returns whether s is a valid signature of msg by p.
func Verify(msg []byte, p codec.Address, s Signature) bool {
	return ed25519consensus.Verify(p[:], msg, s[:])
}

// String returns the base58 form used to identify transactions.
func (s Signature) String() string {
	return base58.Encode(s[:])
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Signature) UnmarshalText(input []byte) error {
	decoded, err := base58.Decode(string(input))
	if err != nil {
		return err
	}
	if len(decoded) != SignatureLen {
		return ErrInvalidSignature
	}
	copy(s[:], decoded)
	return nil
}
