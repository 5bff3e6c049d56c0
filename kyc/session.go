// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kyc drives the client flow: connect, fund the payer, check the
// program and its storage account, then write and read customer records.
package kyc

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/kyc-client/chain"
	"github.com/ava-labs/kyc-client/codec"
	"github.com/ava-labs/kyc-client/config"
	"github.com/ava-labs/kyc-client/crypto/ed25519"
	"github.com/ava-labs/kyc-client/keys"
	"github.com/ava-labs/kyc-client/locator"
	"github.com/ava-labs/kyc-client/record"
	"github.com/ava-labs/kyc-client/rpc"
	"github.com/ava-labs/kyc-client/utils"

	kyctrace "github.com/ava-labs/kyc-client/trace"
)

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE} -destination=mock_ledger.go . Ledger

// Ledger is the node API used by a Session.
type Ledger interface {
	locator.Client

	GetVersion(ctx context.Context) (*rpc.VersionReply, error)
	GetBalance(ctx context.Context, addr codec.Address) (uint64, error)
	RequestAirdropAndConfirm(ctx context.Context, addr codec.Address, lamports uint64) (ed25519.Signature, error)
}

// Session holds the state established by the setup steps. Steps must run in
// order: EstablishPayer, then CheckProgram, before records are written or
// read.
type Session struct {
	log    logging.Logger
	tracer trace.Tracer
	ledger Ledger
	cfg    *config.Config

	payer    ed25519.PrivateKey
	hasPayer bool

	locator  *locator.Locator
	location *locator.Location
}

type Option func(*Session)

// WithTracer records a span for each session step.
func WithTracer(t trace.Tracer) Option {
	return func(s *Session) {
		s.tracer = t
	}
}

func NewSession(log logging.Logger, ledger Ledger, cfg *config.Config, opts ...Option) *Session {
	s := &Session{
		log:    log,
		tracer: kyctrace.Noop("kyc"),
		ledger: ledger,
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EstablishConnection checks that the node is reachable.
func (s *Session) EstablishConnection(ctx context.Context) (*rpc.VersionReply, error) {
	ctx, span := s.tracer.Start(ctx, "Session.EstablishConnection")
	defer span.End()

	version, err := s.ledger.GetVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to %s", err, s.cfg.RPCURL)
	}
	s.log.Info("connection to cluster established",
		zap.String("url", s.cfg.RPCURL),
		zap.String("version", version.SolanaCore),
		zap.Uint32("featureSet", version.FeatureSet),
	)
	return version, nil
}

// SetPayer uses [payer] instead of the configured keypair file.
func (s *Session) SetPayer(payer ed25519.PrivateKey) {
	s.payer = payer
	s.hasPayer = true
}

func (s *Session) Payer() (ed25519.PrivateKey, error) {
	if !s.hasPayer {
		return ed25519.EmptyPrivateKey, ErrNoPayer
	}
	return s.payer, nil
}

// LoadPayer reads the payer keypair, generating and saving a new one when
// the file does not exist.
func (s *Session) LoadPayer() (ed25519.PrivateKey, error) {
	if s.hasPayer {
		return s.payer, nil
	}
	payer, created, err := keys.LoadOrGenerate(s.cfg.PayerKeypair)
	if err != nil {
		return ed25519.EmptyPrivateKey, fmt.Errorf("%w: failed to load payer %s", err, s.cfg.PayerKeypair)
	}
	if created {
		s.log.Info("generated payer keypair",
			zap.String("path", s.cfg.PayerKeypair),
			zap.Stringer("address", payer.PublicKey()),
		)
	}
	s.SetPayer(payer)
	return payer, nil
}

// EstablishPayer ensures the payer can cover rent for one record account
// and the signature budget. A short balance is topped up with at most one
// airdrop. It returns the final balance.
func (s *Session) EstablishPayer(ctx context.Context) (uint64, error) {
	ctx, span := s.tracer.Start(ctx, "Session.EstablishPayer")
	defer span.End()

	payer, err := s.LoadPayer()
	if err != nil {
		return 0, err
	}
	addr := payer.PublicKey()

	rent, err := s.ledger.GetMinimumBalanceForRentExemption(ctx, record.Size)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to fetch rent exemption", err)
	}
	fees := s.cfg.Fees(rent)

	balance, err := s.ledger.GetBalance(ctx, addr)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to fetch balance", err)
	}
	if balance < fees {
		if !s.cfg.Airdrop {
			return balance, fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientFunds, addr, utils.FormatBalance(balance), utils.FormatBalance(fees))
		}
		s.log.Info("requesting airdrop",
			zap.Stringer("address", addr),
			zap.Uint64("lamports", fees-balance),
		)
		if _, err := s.ledger.RequestAirdropAndConfirm(ctx, addr, fees-balance); err != nil {
			return balance, fmt.Errorf("%w: airdrop failed: %w", ErrInsufficientFunds, err)
		}
		balance, err = s.ledger.GetBalance(ctx, addr)
		if err != nil {
			return 0, fmt.Errorf("%w: failed to fetch balance", err)
		}
		if balance < fees {
			return balance, fmt.Errorf("%w: %s has %s after airdrop, needs %s", ErrInsufficientFunds, addr, utils.FormatBalance(balance), utils.FormatBalance(fees))
		}
	}
	s.log.Info("using payer",
		zap.Stringer("address", addr),
		zap.String("balance", utils.FormatBalance(balance)),
	)
	return balance, nil
}

// ProgramID resolves the program id from the config or the program
// keypair file.
func (s *Session) ProgramID() (codec.Address, error) {
	if id, ok := s.cfg.Program(); ok {
		return id, nil
	}
	priv, err := keys.Load(s.cfg.ProgramKeypair)
	if err != nil {
		return codec.EmptyAddress, fmt.Errorf(
			"%w: %s: %w: program may need to be deployed with `solana program deploy %s`",
			ErrProgramKeypair,
			s.cfg.ProgramKeypair,
			err,
			s.cfg.ProgramObject,
		)
	}
	return priv.PublicKey(), nil
}

// LoadProgram checks that the program is deployed and executable.
func (s *Session) LoadProgram(ctx context.Context) (codec.Address, error) {
	program, err := s.ProgramID()
	if err != nil {
		return codec.EmptyAddress, err
	}
	info, err := s.ledger.GetAccountInfo(ctx, program)
	switch {
	case errors.Is(err, rpc.ErrAccountNotFound):
		if utils.FileExists(s.cfg.ProgramObject) {
			return codec.EmptyAddress, fmt.Errorf(
				"%w: deploy %s with `solana program deploy %s`",
				ErrProgramNotDeployed,
				program,
				s.cfg.ProgramObject,
			)
		}
		return codec.EmptyAddress, fmt.Errorf("%w: %s", ErrProgramNotBuilt, program)
	case err != nil:
		return codec.EmptyAddress, fmt.Errorf("%w: failed to fetch program %s", err, program)
	case !info.Executable:
		return codec.EmptyAddress, fmt.Errorf("%w: %s", ErrProgramNotExecutable, program)
	}
	s.log.Info("using program", zap.Stringer("program", program))
	s.locator = locator.New(s.log, s.ledger, program)
	return program, nil
}

// CheckProgram verifies the program and makes sure the payer's record
// account exists. It returns true if the account was created.
func (s *Session) CheckProgram(ctx context.Context) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "Session.CheckProgram")
	defer span.End()

	payer, err := s.Payer()
	if err != nil {
		return false, err
	}
	if _, err := s.LoadProgram(ctx); err != nil {
		return false, err
	}
	loc, err := s.locator.Derive(payer.PublicKey(), s.cfg.Seed)
	if err != nil {
		return false, err
	}
	s.location = loc
	return s.locator.EnsureStorage(ctx, loc, record.Size, payer)
}

// Location returns the record account derived by CheckProgram.
func (s *Session) Location() (*locator.Location, error) {
	if s.location == nil {
		return nil, ErrNoProgram
	}
	return s.location, nil
}

// WriteCustomer submits a write instruction carrying the encoded customer
// record to the program.
func (s *Session) WriteCustomer(ctx context.Context, customerID, customerName string) (ed25519.Signature, error) {
	ctx, span := s.tracer.Start(ctx, "Session.WriteCustomer")
	defer span.End()

	payer, err := s.Payer()
	if err != nil {
		return ed25519.EmptySignature, err
	}
	loc, err := s.Location()
	if err != nil {
		return ed25519.EmptySignature, err
	}
	data, err := record.Encode(int(record.OpcodeWrite), customerID, customerName)
	if err != nil {
		return ed25519.EmptySignature, err
	}
	s.log.Info("writing customer record",
		zap.Stringer("account", loc.Address),
		zap.String("customerID", customerID),
	)
	instr := chain.NewInstruction(loc.Program, data, chain.Writable(loc.Address))
	sig, err := s.ledger.SendAndConfirm(ctx, payer, nil, instr)
	if err != nil {
		return ed25519.EmptySignature, fmt.Errorf("%w: failed to write customer record", err)
	}
	s.log.Info("customer record written", zap.Stringer("signature", sig))
	return sig, nil
}

// ReadCustomer fetches and decodes the record account.
func (s *Session) ReadCustomer(ctx context.Context) (*record.Component, error) {
	ctx, span := s.tracer.Start(ctx, "Session.ReadCustomer")
	defer span.End()

	loc, err := s.Location()
	if err != nil {
		return nil, err
	}
	s.log.Debug("reading customer record", zap.Stringer("account", loc.Address))
	data, err := s.locator.Fetch(ctx, loc.Address)
	if err != nil {
		return nil, err
	}
	return record.Decode(data)
}
