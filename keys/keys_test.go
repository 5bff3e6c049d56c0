// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keys

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/kyc-client/crypto/ed25519"
)

func TestSaveLoad(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "program", "kyc-keypair.json")

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	require.NoError(Save(path, priv))

	fi, err := os.Stat(path)
	require.NoError(err)
	require.Equal(fs.FileMode(fsModeWrite), fi.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(err)
	require.Equal(priv, loaded)

	// Never clobber an existing key
	require.ErrorIs(Save(path, priv), ErrKeypairExists)
}

func TestMarshalFormat(t *testing.T) {
	require := require.New(t)
	priv, err := ed25519.PrivateKeyFromSeed(make([]byte, ed25519.PrivateKeySeedLen))
	require.NoError(err)

	b, err := Marshal(priv)
	require.NoError(err)
	require.True(strings.HasPrefix(string(b), "[0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,59,106,39,188,"))
	require.True(strings.HasSuffix(string(b), "]"))
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "kyc"},
		{"too short", "[1,2,3]"},
		{"hex string", `"00ff"`},
		{"out of range", "[" + strings.Repeat("256,", 63) + "256]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.ErrorIs(t, err, ErrMalformedKeypair)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadOrGenerate(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "id.json")

	priv, created, err := LoadOrGenerate(path)
	require.NoError(err)
	require.True(created)

	again, created, err := LoadOrGenerate(path)
	require.NoError(err)
	require.False(created)
	require.Equal(priv, again)
}

func TestLoadOrGenerateConcurrent(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "solana", "id.json")

	const callers = 8
	var (
		privs   [callers]ed25519.PrivateKey
		created [callers]bool
		g       errgroup.Group
	)
	for i := 0; i < callers; i++ {
		i := i
		g.Go(func() error {
			var err error
			privs[i], created[i], err = LoadOrGenerate(path)
			return err
		})
	}
	require.NoError(g.Wait())

	generated := 0
	for i := 0; i < callers; i++ {
		require.Equal(privs[0], privs[i])
		if created[i] {
			generated++
		}
	}
	require.Equal(1, generated)

	stored, err := Load(path)
	require.NoError(err)
	require.Equal(privs[0], stored)
}
