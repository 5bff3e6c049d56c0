// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/ava-labs/kyc-client/chain"
	"github.com/ava-labs/kyc-client/codec"
	"github.com/ava-labs/kyc-client/crypto/ed25519"
	"github.com/ava-labs/kyc-client/requester"
)

type JSONRPCClient struct {
	requester *requester.EndpointRequester

	commitment     Commitment
	pollInterval   time.Duration
	confirmTimeout time.Duration
}

type Option func(*JSONRPCClient)

func WithCommitment(c Commitment) Option {
	return func(cli *JSONRPCClient) {
		cli.commitment = c
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(cli *JSONRPCClient) {
		cli.pollInterval = d
	}
}

func WithConfirmTimeout(d time.Duration) Option {
	return func(cli *JSONRPCClient) {
		cli.confirmTimeout = d
	}
}

func NewJSONRPCClient(uri string, req *requester.EndpointRequester, opts ...Option) *JSONRPCClient {
	if req == nil {
		req = requester.New(strings.TrimSuffix(uri, "/"), "")
	}
	cli := &JSONRPCClient{
		requester:      req,
		commitment:     CommitmentConfirmed,
		pollInterval:   DefaultPollInterval,
		confirmTimeout: DefaultConfirmTimeout,
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

func (cli *JSONRPCClient) Commitment() Commitment {
	return cli.commitment
}

func (cli *JSONRPCClient) GetVersion(ctx context.Context) (*VersionReply, error) {
	resp := new(VersionReply)
	err := cli.requester.SendRequest(
		ctx,
		"getVersion",
		nil,
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetBalance(ctx context.Context, addr codec.Address) (uint64, error) {
	resp := new(BalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		"getBalance",
		[]interface{}{addr, commitmentConfig{cli.commitment}},
		resp,
	)
	return resp.Value, err
}

// GetAccountInfo returns [ErrAccountNotFound] when no account exists at
// [addr].
func (cli *JSONRPCClient) GetAccountInfo(ctx context.Context, addr codec.Address) (*AccountInfo, error) {
	resp := new(AccountInfoReply)
	if err := cli.requester.SendRequest(
		ctx,
		"getAccountInfo",
		[]interface{}{addr, accountInfoConfig{Encoding: encodingBase64, Commitment: cli.commitment}},
		resp,
	); err != nil {
		return nil, err
	}
	if resp.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, addr)
	}
	return resp.Value, nil
}

func (cli *JSONRPCClient) GetMinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error) {
	var resp uint64
	err := cli.requester.SendRequest(
		ctx,
		"getMinimumBalanceForRentExemption",
		[]interface{}{size},
		&resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetLatestBlockhash(ctx context.Context) (*Blockhash, error) {
	resp := new(BlockhashReply)
	if err := cli.requester.SendRequest(
		ctx,
		"getLatestBlockhash",
		[]interface{}{commitmentConfig{cli.commitment}},
		resp,
	); err != nil {
		return nil, err
	}
	return &resp.Value, nil
}

func (cli *JSONRPCClient) RequestAirdrop(ctx context.Context, addr codec.Address, lamports uint64) (ed25519.Signature, error) {
	var resp ed25519.Signature
	err := cli.requester.SendRequest(
		ctx,
		"requestAirdrop",
		[]interface{}{addr, lamports},
		&resp,
	)
	return resp, err
}

// SendTransaction submits a signed transaction without waiting for it to
// be processed.
func (cli *JSONRPCClient) SendTransaction(ctx context.Context, tx *chain.Transaction) (ed25519.Signature, error) {
	b, err := tx.Bytes()
	if err != nil {
		return ed25519.EmptySignature, err
	}
	var resp ed25519.Signature
	err = cli.requester.SendRequest(
		ctx,
		"sendTransaction",
		[]interface{}{
			base64.StdEncoding.EncodeToString(b),
			sendTransactionConfig{Encoding: encodingBase64, PreflightCommitment: cli.commitment},
		},
		&resp,
	)
	return resp, err
}

// GetSignatureStatuses returns one status per signature. A nil status
// means the node has not seen the transaction.
func (cli *JSONRPCClient) GetSignatureStatuses(ctx context.Context, sigs ...ed25519.Signature) ([]*SignatureStatus, error) {
	resp := new(SignatureStatusesReply)
	if err := cli.requester.SendRequest(
		ctx,
		"getSignatureStatuses",
		[]interface{}{sigs, signatureStatusesConfig{SearchTransactionHistory: true}},
		resp,
	); err != nil {
		return nil, err
	}
	if len(resp.Value) != len(sigs) {
		return nil, fmt.Errorf("%w: requested %d, received %d", ErrUnexpectedStatuses, len(sigs), len(resp.Value))
	}
	return resp.Value, nil
}

// WaitForTransaction blocks until [sig] reaches the client commitment,
// the transaction fails or the confirm timeout elapses.
func (cli *JSONRPCClient) WaitForTransaction(ctx context.Context, sig ed25519.Signature) error {
	ctx, cancel := context.WithTimeout(ctx, cli.confirmTimeout)
	defer cancel()

	return Wait(ctx, cli.pollInterval, func(ctx context.Context) (bool, error) {
		statuses, err := cli.GetSignatureStatuses(ctx, sig)
		if err != nil {
			return false, err
		}
		status := statuses[0]
		if status == nil {
			return false, nil
		}
		if status.Failed() {
			return false, fmt.Errorf("%w: %s: %s", ErrTransactionFailed, sig, status.Err)
		}
		return cli.commitment.Reached(status.ConfirmationStatus), nil
	})
}

// SendAndConfirm compiles [instrs] into a transaction paid for by [payer],
// signs it with [payer] and [signers], submits it and waits for it to be
// confirmed.
func (cli *JSONRPCClient) SendAndConfirm(
	ctx context.Context,
	payer ed25519.PrivateKey,
	signers []ed25519.PrivateKey,
	instrs ...*chain.Instruction,
) (ed25519.Signature, error) {
	blockhash, err := cli.GetLatestBlockhash(ctx)
	if err != nil {
		return ed25519.EmptySignature, fmt.Errorf("%w: failed to fetch blockhash", err)
	}
	msg, err := chain.NewMessage(payer.PublicKey(), blockhash.Blockhash, instrs...)
	if err != nil {
		return ed25519.EmptySignature, err
	}
	tx := chain.NewTx(msg)
	if err := tx.Sign(append([]ed25519.PrivateKey{payer}, signers...)...); err != nil {
		return ed25519.EmptySignature, fmt.Errorf("%w: failed to sign transaction", err)
	}
	sig, err := cli.SendTransaction(ctx, tx)
	if err != nil {
		return ed25519.EmptySignature, err
	}
	if sig != tx.ID() {
		return ed25519.EmptySignature, fmt.Errorf("%w: node returned %s for %s", ErrTransactionFailed, sig, tx.ID())
	}
	return sig, cli.WaitForTransaction(ctx, sig)
}

// RequestAirdropAndConfirm requests [lamports] for [addr] and waits for the
// transfer to land.
func (cli *JSONRPCClient) RequestAirdropAndConfirm(ctx context.Context, addr codec.Address, lamports uint64) (ed25519.Signature, error) {
	sig, err := cli.RequestAirdrop(ctx, addr, lamports)
	if err != nil {
		return ed25519.EmptySignature, err
	}
	return sig, cli.WaitForTransaction(ctx, sig)
}

func Wait(ctx context.Context, interval time.Duration, check func(ctx context.Context) (bool, error)) error {
	for ctx.Err() == nil {
		exit, err := check(ctx)
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
		select {
		case <-ctx.Done():
		case <-time.After(interval):
		}
	}
	return ctx.Err()
}
