// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadHex(t *testing.T) {
	require := require.New(t)

	b, err := LoadHex("0x642a2a", 3)
	require.NoError(err)
	require.Equal([]byte{100, '*', '*'}, b)
	require.Equal("642a2a", ToHex(b))

	b, err = LoadHex("642a", -1)
	require.NoError(err)
	require.Len(b, 2)

	_, err = LoadHex("642a", 3)
	require.ErrorIs(err, ErrInvalidSize)

	_, err = LoadHex("zz", -1)
	require.Error(err)
}
