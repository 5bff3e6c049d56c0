// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/kyc-client/codec"
	"github.com/ava-labs/kyc-client/rpc"
	"github.com/ava-labs/kyc-client/trace"
)

// setHome points the home directory at an empty temporary directory so the
// developer's Solana CLI config is not read.
func setHome(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, path string, contents string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	require := require.New(t)
	home := setHome(t)

	c, err := Load("")
	require.NoError(err)
	require.Equal(DefaultRPCURL, c.RPCURL)
	require.Equal(rpc.CommitmentConfirmed, c.Commitment)
	require.Equal(filepath.Join(home, ".config/solana/id.json"), c.PayerKeypair)
	require.Equal(DefaultProgramKeypair, c.ProgramKeypair)
	require.Equal(DefaultSeed, c.Seed)
	require.True(c.Airdrop)
	require.Equal(uint64(2_234_160+500_000), c.Fees(2_234_160))
}

func TestLoadSolanaCLIConfig(t *testing.T) {
	require := require.New(t)
	home := setHome(t)

	writeFile(t, filepath.Join(home, ".config/solana/cli/config.yml"), `---
json_rpc_url: "https://api.devnet.solana.com"
websocket_url: ""
keypair_path: /keys/devnet.json
address_labels:
  "11111111111111111111111111111111": System Program
commitment: finalized
`)

	c, err := Load("")
	require.NoError(err)
	require.Equal("https://api.devnet.solana.com", c.RPCURL)
	require.Equal("/keys/devnet.json", c.PayerKeypair)
	require.Equal(rpc.CommitmentFinalized, c.Commitment)
}

func TestLoadFile(t *testing.T) {
	require := require.New(t)
	home := setHome(t)

	writeFile(t, filepath.Join(home, ".config/solana/cli/config.yml"), "json_rpc_url: https://api.devnet.solana.com\n")
	path := filepath.Join(t.TempDir(), "kyc.yaml")
	writeFile(t, path, `
rpc_url: http://localhost:9000
program_keypair: ~/program.json
seed: kyc2
airdrop: false
poll_interval: 250ms
confirm_timeout: 2m
log_level: debug
trace:
  enabled: true
  sample_rate: 0.25
`)

	c, err := Load(path)
	require.NoError(err)
	require.Equal("http://localhost:9000", c.RPCURL)
	require.Equal(filepath.Join(home, "program.json"), c.ProgramKeypair)
	require.Equal("kyc2", c.Seed)
	require.False(c.Airdrop)
	require.Equal(250*time.Millisecond, c.PollInterval)
	require.Equal(2*time.Minute, c.ConfirmTimeout)
	require.Equal("debug", c.LogLevel)
	require.True(c.Trace.Enabled)
	require.InEpsilon(0.25, c.Trace.SampleRate, 1e-9)
	require.Equal(trace.DefaultEndpoint, c.Trace.Endpoint)
}

func TestLoadFileUnknownField(t *testing.T) {
	setHome(t)
	path := filepath.Join(t.TempDir(), "kyc.yaml")
	writeFile(t, path, "rpc_uri: http://localhost:9000\n")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadFileMissing(t *testing.T) {
	setHome(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEnv(t *testing.T) {
	require := require.New(t)
	setHome(t)

	program := codec.Address{1, 2, 3}
	t.Setenv("KYC_RPC_URL", "https://rpc.example.com")
	t.Setenv("KYC_COMMITMENT", "processed")
	t.Setenv("KYC_PROGRAM_ID", program.String())
	t.Setenv("KYC_SEED", "customers")
	t.Setenv("KYC_AIRDROP", "false")

	c, err := Load("")
	require.NoError(err)
	require.Equal("https://rpc.example.com", c.RPCURL)
	require.Equal(rpc.CommitmentProcessed, c.Commitment)
	require.Equal("customers", c.Seed)
	require.False(c.Airdrop)

	id, ok := c.Program()
	require.True(ok)
	require.Equal(program, id)
}

func TestLoadEnvInvalidBool(t *testing.T) {
	setHome(t)
	t.Setenv("KYC_AIRDROP", "sometimes")

	_, err := Load("")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestReadDefersValidation(t *testing.T) {
	require := require.New(t)
	home := setHome(t)
	t.Setenv("KYC_COMMITMENT", "max")

	_, err := Load("")
	require.ErrorIs(err, rpc.ErrInvalidCommitment)

	c, err := Read("")
	require.NoError(err)
	require.Equal(rpc.Commitment("max"), c.Commitment)

	c.Commitment = rpc.CommitmentFinalized
	c.PayerKeypair = "~/keys/payer.json"
	require.NoError(c.Finalize())
	require.Equal(filepath.Join(home, "keys/payer.json"), c.PayerKeypair)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		err    error
	}{
		{
			name:   "valid",
			modify: func(*Config) {},
		},
		{
			name:   "websocket url",
			modify: func(c *Config) { c.RPCURL = "ws://127.0.0.1:8900" },
			err:    ErrInvalidConfig,
		},
		{
			name:   "unknown commitment",
			modify: func(c *Config) { c.Commitment = "max" },
			err:    rpc.ErrInvalidCommitment,
		},
		{
			name:   "long seed",
			modify: func(c *Config) { c.Seed = "0123456789abcdef0123456789abcdefg" },
			err:    codec.ErrMaxSeedLength,
		},
		{
			name:   "bad program id",
			modify: func(c *Config) { c.ProgramID = "not-base58" },
			err:    ErrInvalidConfig,
		},
		{
			name: "no program",
			modify: func(c *Config) {
				c.ProgramKeypair = ""
			},
			err: ErrInvalidConfig,
		},
		{
			name:   "zero poll interval",
			modify: func(c *Config) { c.PollInterval = 0 },
			err:    ErrInvalidConfig,
		},
		{
			name:   "bad log level",
			modify: func(c *Config) { c.LogLevel = "loud" },
			err:    ErrInvalidConfig,
		},
		{
			name:   "bad trace sample rate",
			modify: func(c *Config) { c.Trace.SampleRate = -1 },
			err:    trace.ErrInvalidSampleRate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			require.ErrorIs(t, c.Validate(), tt.err)
		})
	}
}
