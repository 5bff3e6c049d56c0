// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package record defines the fixed-layout Component record stored in a KYC
// account:
//
//	[opcode:1][customer_id:64][customer_name:128]
//
// Text fields are UTF-8, truncated to their width and right-padded with
// [Filler]. There are no length prefixes, so every record is exactly [Size]
// bytes and the account holding it is allocated with that size.
package record

import (
	"bytes"
	"fmt"

	"github.com/near/borsh-go"

	"github.com/ava-labs/kyc-client/consts"
)

const (
	OpcodeLen       = 1
	CustomerIDLen   = 64
	CustomerNameLen = 128

	// Size is the encoded length of every Component.
	Size = OpcodeLen + CustomerIDLen + CustomerNameLen

	CustomerIDOffset   = OpcodeLen
	CustomerNameOffset = CustomerIDOffset + CustomerIDLen

	// Filler pads text fields up to their fixed width.
	Filler byte = '*'
)

// OpcodeWrite asks the program to store the record.
const OpcodeWrite uint8 = 100

// Component is the on-chain KYC record. Fields are borsh encoded in
// declaration order; fixed arrays carry no length prefix.
type Component struct {
	Opcode       uint8
	CustomerID   [CustomerIDLen]byte
	CustomerName [CustomerNameLen]byte
}

// New builds a Component, truncating and padding the text fields.
func New(opcode int, customerID, customerName string) (*Component, error) {
	if opcode < 0 || opcode > int(consts.MaxUint8) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOpcode, opcode)
	}
	c := &Component{Opcode: uint8(opcode)}
	Pad(c.CustomerID[:], customerID)
	Pad(c.CustomerName[:], customerName)
	return c, nil
}

// Pad copies at most len(dst) bytes of [text] into [dst] and fills the
// remainder with [Filler]. Truncation is byte-wise and may split a multi-byte
// character.
func Pad(dst []byte, text string) {
	n := copy(dst, text)
	for i := n; i < len(dst); i++ {
		dst[i] = Filler
	}
}

// Encode returns the [Size] byte encoding of a Component.
func Encode(opcode int, customerID, customerName string) ([]byte, error) {
	c, err := New(opcode, customerID, customerName)
	if err != nil {
		return nil, err
	}
	return c.Marshal()
}

// Marshal returns the [Size] byte encoding of c.
func (c *Component) Marshal() ([]byte, error) {
	// borsh treats pointers as optional values, so encode a copy.
	b, err := borsh.Serialize(*c)
	if err != nil {
		return nil, err
	}
	if len(b) != Size {
		return nil, fmt.Errorf("%w: encoded %d bytes", ErrMalformedRecord, len(b))
	}
	return b, nil
}

// Decode parses a record. Padding is returned verbatim; use
// [Component.CustomerIDText] and [Component.CustomerNameText] for display.
func Decode(b []byte) (*Component, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("%w: expected %d bytes, found %d", ErrMalformedRecord, Size, len(b))
	}
	c := new(Component)
	if err := borsh.Deserialize(c, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return c, nil
}

// CustomerIDText returns the customer id without trailing filler.
func (c *Component) CustomerIDText() string {
	return TrimFiller(c.CustomerID[:])
}

// CustomerNameText returns the customer name without trailing filler.
func (c *Component) CustomerNameText() string {
	return TrimFiller(c.CustomerName[:])
}

// TrimFiller strips trailing [Filler] bytes. Text that legitimately ends in
// '*' cannot be recovered.
func TrimFiller(b []byte) string {
	return string(bytes.TrimRight(b, string(Filler)))
}
