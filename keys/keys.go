// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keys reads and writes keypair files: a JSON array holding the 64
// bytes of an ed25519 seed|publicKey pair, the format produced by
// `solana-keygen new` and by program deployment.
package keys

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/ava-labs/kyc-client/crypto/ed25519"
)

const (
	fsModeWrite = 0o600
	fsModeDir   = 0o755

	lockSuffix = ".lock"
)

// Load reads the keypair file at [path].
func Load(path string) (ed25519.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ed25519.EmptyPrivateKey, err
	}
	return Parse(raw)
}

// Parse decodes the contents of a keypair file.
func Parse(raw []byte) (ed25519.PrivateKey, error) {
	var ints []int
	if err := json.Unmarshal(raw, &ints); err != nil {
		return ed25519.EmptyPrivateKey, fmt.Errorf("%w: %v", ErrMalformedKeypair, err)
	}
	if len(ints) != ed25519.PrivateKeyLen {
		return ed25519.EmptyPrivateKey, fmt.Errorf("%w: expected %d bytes, found %d", ErrMalformedKeypair, ed25519.PrivateKeyLen, len(ints))
	}
	b := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return ed25519.EmptyPrivateKey, fmt.Errorf("%w: byte %d out of range", ErrMalformedKeypair, i)
		}
		b[i] = byte(v)
	}
	return ed25519.PrivateKeyFromBytes(b)
}

// Marshal encodes [priv] in keypair file format.
func Marshal(priv ed25519.PrivateKey) ([]byte, error) {
	ints := make([]int, len(priv))
	for i, v := range priv {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

// Save writes [priv] to [path], creating parent directories as needed.
// Existing files are never overwritten.
func Save(path string, priv ed25519.PrivateKey) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrKeypairExists, path)
	}
	b, err := Marshal(priv)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, fsModeDir); err != nil {
		return err
	}
	// Readers never observe a partially written file.
	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(fsModeWrite); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// LoadOrGenerate loads the keypair at [path]. If no file exists a new key is
// generated and persisted there. The returned bool reports whether a key was
// generated.
//
// Generation holds a file lock next to [path] so concurrent callers end up
// with the same key.
func LoadOrGenerate(path string) (ed25519.PrivateKey, bool, error) {
	priv, err := Load(path)
	switch {
	case err == nil:
		return priv, false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return ed25519.EmptyPrivateKey, false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), fsModeDir); err != nil {
		return ed25519.EmptyPrivateKey, false, err
	}
	lock := flock.New(path + lockSuffix)
	if err := lock.Lock(); err != nil {
		return ed25519.EmptyPrivateKey, false, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	defer lock.Unlock()

	priv, err = Load(path)
	switch {
	case err == nil:
		return priv, false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return ed25519.EmptyPrivateKey, false, err
	}
	priv, err = ed25519.GeneratePrivateKey()
	if err != nil {
		return ed25519.EmptyPrivateKey, false, err
	}
	if err := Save(path, priv); err != nil {
		return ed25519.EmptyPrivateKey, false, err
	}
	return priv, true, nil
}
