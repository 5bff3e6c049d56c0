// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"

	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/mr-tron/base58"

	"github.com/ava-labs/kyc-client/consts"
)

const AddressLen = consts.PublicKeyLen

// pdaMarker terminates the owner of program derived addresses. Seeded
// addresses may not be owned by such a program.
var pdaMarker = []byte("ProgramDerivedAddress")

// Address is the 32 byte public key of a ledger account.
type Address [AddressLen]byte

var (
	EmptyAddress = Address{}

	// SystemProgram owns all newly created accounts and creates accounts on
	// behalf of other programs.
	SystemProgram = Address{}
)

// CreateWithSeed returns the [Address] derived from [base], [seed] and
// [owner] as sha256(base || seed || owner).
//
// No private key exists for the returned address; the account it names can
// only be created by a transaction signed by [base].
func CreateWithSeed(base Address, seed string, owner Address) (Address, error) {
	if len(seed) > consts.MaxSeedLen {
		return EmptyAddress, ErrMaxSeedLength
	}
	if bytes.HasSuffix(owner[:], pdaMarker) {
		return EmptyAddress, ErrIllegalOwner
	}
	b := make([]byte, 0, AddressLen*2+len(seed))
	b = append(b, base[:]...)
	b = append(b, seed...)
	b = append(b, owner[:]...)
	return Address(hashing.ComputeHash256Array(b)), nil
}

// ParseAddress decodes the base58 representation of an address.
func ParseAddress(s string) (Address, error) {
	var a Address
	if err := a.UnmarshalText([]byte(s)); err != nil {
		return EmptyAddress, err
	}
	return a, nil
}

// MustParseAddress is ParseAddress for compile-time constants.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// MarshalText returns the base58 representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a base58-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	return decodeFixed(a[:], input)
}

func decodeFixed(dst []byte, input []byte) error {
	decoded, err := base58.Decode(string(input))
	if err != nil {
		return err
	}
	if len(decoded) != len(dst) {
		return ErrInvalidSize
	}
	copy(dst, decoded)
	return nil
}
