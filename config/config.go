// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config resolves client settings from defaults, the Solana CLI
// config, an optional YAML file and KYC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/kyc-client/codec"
	"github.com/ava-labs/kyc-client/consts"
	"github.com/ava-labs/kyc-client/rpc"
	"github.com/ava-labs/kyc-client/trace"
	"github.com/ava-labs/kyc-client/utils"
)

const (
	DefaultRPCURL               = "http://127.0.0.1:8899"
	DefaultPayerKeypair         = "~/.config/solana/id.json"
	DefaultProgramKeypair       = "dist/program/kyc-keypair.json"
	DefaultProgramObject        = "dist/program/kyc.so"
	DefaultSeed                 = "kyc"
	DefaultLamportsPerSignature = 5_000
	DefaultSignatureBudget      = 100

	envPrefix = "KYC_"
)

type Config struct {
	RPCURL     string         `yaml:"rpc_url"`
	Commitment rpc.Commitment `yaml:"commitment"`

	PayerKeypair   string `yaml:"payer_keypair"`
	ProgramKeypair string `yaml:"program_keypair"`
	ProgramObject  string `yaml:"program_object"`
	// ProgramID takes precedence over ProgramKeypair when set.
	ProgramID string `yaml:"program_id"`
	Seed      string `yaml:"seed"`

	Airdrop              bool   `yaml:"airdrop"`
	LamportsPerSignature uint64 `yaml:"lamports_per_signature"`
	SignatureBudget      uint64 `yaml:"signature_budget"`

	PollInterval   time.Duration `yaml:"poll_interval"`
	ConfirmTimeout time.Duration `yaml:"confirm_timeout"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	Trace trace.Config `yaml:"trace"`
}

func Default() *Config {
	return &Config{
		RPCURL:               DefaultRPCURL,
		Commitment:           rpc.CommitmentConfirmed,
		PayerKeypair:         DefaultPayerKeypair,
		ProgramKeypair:       DefaultProgramKeypair,
		ProgramObject:        DefaultProgramObject,
		Seed:                 DefaultSeed,
		Airdrop:              true,
		LamportsPerSignature: DefaultLamportsPerSignature,
		SignatureBudget:      DefaultSignatureBudget,
		PollInterval:         rpc.DefaultPollInterval,
		ConfirmTimeout:       rpc.DefaultConfirmTimeout,
		LogLevel:             logging.Info.LowerString(),
		Trace: trace.Config{
			SampleRate: 1,
			Endpoint:   trace.DefaultEndpoint,
		},
	}
}

// Load resolves and validates the configuration. [path] may be empty.
func Load(path string) (*Config, error) {
	c, err := Read(path)
	if err != nil {
		return nil, err
	}
	return c, c.Finalize()
}

// Read layers defaults, the Solana CLI config, the file at [path] and KYC_*
// environment variables without validating the result, so later overrides
// can still replace invalid values. [path] may be empty.
func Read(path string) (*Config, error) {
	c := Default()
	solanaPath, err := SolanaCLIConfigPath()
	if err != nil {
		return nil, err
	}
	if err := c.applySolanaCLI(solanaPath); err != nil {
		return nil, err
	}
	if len(path) > 0 {
		if err := c.applyFile(path); err != nil {
			return nil, err
		}
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

// Finalize expands home-relative paths and validates every field.
func (c *Config) Finalize() error {
	if err := c.expandPaths(); err != nil {
		return err
	}
	return c.Validate()
}

// solanaCLIConfig is the subset of the Solana CLI config file read by the
// client.
type solanaCLIConfig struct {
	JSONRPCURL  string `yaml:"json_rpc_url"`
	KeypairPath string `yaml:"keypair_path"`
	Commitment  string `yaml:"commitment"`
}

func SolanaCLIConfigPath() (string, error) {
	return utils.ExpandHome("~/.config/solana/cli/config.yml")
}

func (c *Config) applySolanaCLI(path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	var sc solanaCLIConfig
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if len(sc.JSONRPCURL) > 0 {
		c.RPCURL = sc.JSONRPCURL
	}
	if len(sc.KeypairPath) > 0 {
		c.PayerKeypair = sc.KeypairPath
	}
	if len(sc.Commitment) > 0 {
		c.Commitment = rpc.Commitment(sc.Commitment)
	}
	return nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(raw, c); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"RPC_URL":         &c.RPCURL,
		"PAYER_KEYPAIR":   &c.PayerKeypair,
		"PROGRAM_KEYPAIR": &c.ProgramKeypair,
		"PROGRAM_OBJECT":  &c.ProgramObject,
		"PROGRAM_ID":      &c.ProgramID,
		"SEED":            &c.Seed,
		"LOG_LEVEL":       &c.LogLevel,
		"LOG_FILE":        &c.LogFile,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}
	if v, ok := os.LookupEnv(envPrefix + "COMMITMENT"); ok {
		c.Commitment = rpc.Commitment(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "AIRDROP"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sAIRDROP: %w", ErrInvalidConfig, envPrefix, err)
		}
		c.Airdrop = b
	}
	return nil
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.PayerKeypair, &c.ProgramKeypair, &c.ProgramObject, &c.LogFile} {
		expanded, err := utils.ExpandHome(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	u, err := url.Parse(c.RPCURL)
	if err != nil {
		return fmt.Errorf("%w: rpc url: %w", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: rpc url %q must be http or https", ErrInvalidConfig, c.RPCURL)
	}
	if !c.Commitment.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, rpc.ErrInvalidCommitment, c.Commitment)
	}
	if len(c.PayerKeypair) == 0 {
		return fmt.Errorf("%w: payer keypair path is empty", ErrInvalidConfig)
	}
	if len(c.ProgramID) > 0 {
		if _, err := codec.ParseAddress(c.ProgramID); err != nil {
			return fmt.Errorf("%w: program id: %w", ErrInvalidConfig, err)
		}
	} else if len(c.ProgramKeypair) == 0 {
		return fmt.Errorf("%w: program keypair path is empty", ErrInvalidConfig)
	}
	if len(c.Seed) > consts.MaxSeedLen {
		return fmt.Errorf("%w: %w: %d bytes", ErrInvalidConfig, codec.ErrMaxSeedLength, len(c.Seed))
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive", ErrInvalidConfig)
	}
	if c.ConfirmTimeout <= 0 {
		return fmt.Errorf("%w: confirm timeout must be positive", ErrInvalidConfig)
	}
	if _, err := logging.ToLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}
	if err := c.Trace.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Program returns the configured program id, if any.
func (c *Config) Program() (codec.Address, bool) {
	if len(c.ProgramID) == 0 {
		return codec.EmptyAddress, false
	}
	addr, err := codec.ParseAddress(c.ProgramID)
	return addr, err == nil
}

// Fees returns the balance the payer needs to cover [rent] plus the
// signature budget.
func (c *Config) Fees(rent uint64) uint64 {
	return rent + c.LamportsPerSignature*c.SignatureBudget
}
