// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package locator derives the address of a program-owned storage account
// from a base key and a seed, and creates that account when it is missing.
package locator

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/kyc-client/chain"
	"github.com/ava-labs/kyc-client/codec"
	"github.com/ava-labs/kyc-client/crypto/ed25519"
	"github.com/ava-labs/kyc-client/rpc"
)

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE} -destination=mock_client.go . Client

// Client is the subset of the ledger API used to locate and create
// storage accounts.
type Client interface {
	GetAccountInfo(ctx context.Context, addr codec.Address) (*rpc.AccountInfo, error)
	GetMinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error)
	SendAndConfirm(
		ctx context.Context,
		payer ed25519.PrivateKey,
		signers []ed25519.PrivateKey,
		instrs ...*chain.Instruction,
	) (ed25519.Signature, error)
}

// Location identifies a storage account by its derivation inputs.
type Location struct {
	Base    codec.Address
	Seed    string
	Program codec.Address
	Address codec.Address
}

type Locator struct {
	log     logging.Logger
	client  Client
	program codec.Address
}

func New(log logging.Logger, client Client, program codec.Address) *Locator {
	return &Locator{
		log:     log,
		client:  client,
		program: program,
	}
}

// DeriveAddress returns the address of the account created from [base]
// with [seed] and owned by [program]. It performs no network access.
func DeriveAddress(base codec.Address, seed string, program codec.Address) (codec.Address, error) {
	return codec.CreateWithSeed(base, seed, program)
}

func (l *Locator) Program() codec.Address {
	return l.program
}

// Derive returns the location derived from [base] and [seed] under the
// locator's program.
func (l *Locator) Derive(base codec.Address, seed string) (*Location, error) {
	addr, err := DeriveAddress(base, seed, l.program)
	if err != nil {
		return nil, err
	}
	return &Location{
		Base:    base,
		Seed:    seed,
		Program: l.program,
		Address: addr,
	}, nil
}

// Query returns the account at [loc], or nil if it does not exist.
func (l *Locator) Query(ctx context.Context, loc *Location) (*rpc.AccountInfo, error) {
	info, err := l.client.GetAccountInfo(ctx, loc.Address)
	switch {
	case errors.Is(err, rpc.ErrAccountNotFound):
		return nil, nil
	case err != nil:
		return nil, err
	default:
		return info, nil
	}
}

// EnsureStorage creates the account at [loc] with [size] bytes of space
// if it does not exist yet. [funder] pays rent and must be the base key
// of [loc]. It returns true if this call created the account.
//
// The size of an existing account is not checked against [size].
func (l *Locator) EnsureStorage(
	ctx context.Context,
	loc *Location,
	size uint64,
	funder ed25519.PrivateKey,
) (bool, error) {
	if funder.PublicKey() != loc.Base {
		return false, fmt.Errorf("%w: funder %s, base %s", ErrBaseMismatch, funder.PublicKey(), loc.Base)
	}

	info, err := l.Query(ctx, loc)
	if err != nil {
		return false, fmt.Errorf("%w: failed to query %s", err, loc.Address)
	}
	if info != nil {
		l.checkExisting(loc, info, size)
		return false, nil
	}

	rent, err := l.client.GetMinimumBalanceForRentExemption(ctx, size)
	if err != nil {
		return false, fmt.Errorf("%w: failed to fetch rent exemption", err)
	}
	instr, err := chain.CreateAccountWithSeed(
		funder.PublicKey(),
		loc.Address,
		loc.Base,
		loc.Seed,
		rent,
		size,
		loc.Program,
	)
	if err != nil {
		return false, err
	}
	l.log.Info("creating storage account",
		zap.Stringer("address", loc.Address),
		zap.String("seed", loc.Seed),
		zap.Uint64("space", size),
		zap.Uint64("lamports", rent),
	)
	sig, err := l.client.SendAndConfirm(ctx, funder, nil, instr)
	if err != nil {
		// Another client may have created the account first.
		info, qerr := l.Query(ctx, loc)
		if qerr == nil && info != nil {
			l.log.Info("storage account created concurrently",
				zap.Stringer("address", loc.Address),
				zap.Error(err),
			)
			l.checkExisting(loc, info, size)
			return false, nil
		}
		return false, fmt.Errorf("%w: failed to create %s", err, loc.Address)
	}
	l.log.Info("created storage account",
		zap.Stringer("address", loc.Address),
		zap.Stringer("signature", sig),
	)
	return true, nil
}

func (l *Locator) checkExisting(loc *Location, info *rpc.AccountInfo, size uint64) {
	if uint64(len(info.Data)) != size {
		l.log.Warn("existing storage account has unexpected size",
			zap.Stringer("address", loc.Address),
			zap.Int("size", len(info.Data)),
			zap.Uint64("expected", size),
		)
	}
	if info.Owner != loc.Program {
		l.log.Warn("existing storage account has unexpected owner",
			zap.Stringer("address", loc.Address),
			zap.Stringer("owner", info.Owner),
			zap.Stringer("expected", loc.Program),
		)
	}
}

// Fetch returns the raw data of the account at [addr]. It returns
// [rpc.ErrAccountNotFound] if the account was never created.
func (l *Locator) Fetch(ctx context.Context, addr codec.Address) ([]byte, error) {
	info, err := l.client.GetAccountInfo(ctx, addr)
	if err != nil {
		return nil, err
	}
	return info.Data, nil
}
