// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kyc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/kyc-client/chain"
	"github.com/ava-labs/kyc-client/codec"
	"github.com/ava-labs/kyc-client/config"
	"github.com/ava-labs/kyc-client/crypto/ed25519"
	"github.com/ava-labs/kyc-client/keys"
	"github.com/ava-labs/kyc-client/locator"
	"github.com/ava-labs/kyc-client/record"
	"github.com/ava-labs/kyc-client/rpc"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const testRent = 2_234_160

var (
	testCustomerID   = "2342342323"
	testCustomerName = "XYZ Technologies pvt ltd..  "
)

type testEnv struct {
	cfg     *config.Config
	payer   ed25519.PrivateKey
	program ed25519.PrivateKey
	ledger  *MockLedger
	session *Session
}

func newTestEnv(t *testing.T) *testEnv {
	require := require.New(t)
	dir := t.TempDir()

	cfg := config.Default()
	cfg.PayerKeypair = filepath.Join(dir, "id.json")
	cfg.ProgramKeypair = filepath.Join(dir, "program", "kyc-keypair.json")
	cfg.ProgramObject = filepath.Join(dir, "program", "kyc.so")

	payer, err := ed25519.PrivateKeyFromSeed(bytes.Repeat([]byte{1}, 32))
	require.NoError(err)
	require.NoError(keys.Save(cfg.PayerKeypair, payer))
	program, err := ed25519.PrivateKeyFromSeed(bytes.Repeat([]byte{2}, 32))
	require.NoError(err)
	require.NoError(keys.Save(cfg.ProgramKeypair, program))

	ledger := NewMockLedger(gomock.NewController(t))
	return &testEnv{
		cfg:     cfg,
		payer:   payer,
		program: program,
		ledger:  ledger,
		session: NewSession(logging.NoLog{}, ledger, cfg),
	}
}

func (e *testEnv) kycAddress(t *testing.T) codec.Address {
	addr, err := locator.DeriveAddress(e.payer.PublicKey(), config.DefaultSeed, e.program.PublicKey())
	require.NoError(t, err)
	return addr
}

// ready runs the setup steps against an existing program and record
// account.
func (e *testEnv) ready(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	e.session.SetPayer(e.payer)
	gomock.InOrder(
		e.ledger.EXPECT().GetAccountInfo(gomock.Any(), e.program.PublicKey()).Return(&rpc.AccountInfo{Executable: true}, nil),
		e.ledger.EXPECT().GetAccountInfo(gomock.Any(), e.kycAddress(t)).Return(&rpc.AccountInfo{
			Owner: e.program.PublicKey(),
			Space: record.Size,
			Data:  make([]byte, record.Size),
		}, nil),
	)
	created, err := e.session.CheckProgram(ctx)
	require.NoError(err)
	require.False(created)
}

type recordingTracer struct {
	oteltrace.Tracer

	tp *sdktrace.TracerProvider
}

func (r recordingTracer) Close() error {
	return r.tp.Shutdown(context.Background())
}

func TestSessionTracer(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := recordingTracer{Tracer: tp.Tracer("kyc"), tp: tp}
	session := NewSession(logging.NoLog{}, env.ledger, env.cfg, WithTracer(tracer))

	env.ledger.EXPECT().GetVersion(gomock.Any()).DoAndReturn(func(ctx context.Context) (*rpc.VersionReply, error) {
		require.True(oteltrace.SpanFromContext(ctx).SpanContext().IsValid())
		return &rpc.VersionReply{SolanaCore: "1.18.22"}, nil
	})
	_, err := session.EstablishConnection(ctx)
	require.NoError(err)
	require.NoError(tracer.Close())

	spans := recorder.Ended()
	require.Len(spans, 1)
	require.Equal("Session.EstablishConnection", spans[0].Name())
}

func TestEstablishConnection(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)

	env.ledger.EXPECT().GetVersion(gomock.Any()).Return(&rpc.VersionReply{SolanaCore: "1.18.22"}, nil)
	version, err := env.session.EstablishConnection(ctx)
	require.NoError(err)
	require.Equal("1.18.22", version.SolanaCore)

	errRefused := errors.New("connection refused")
	env.ledger.EXPECT().GetVersion(gomock.Any()).Return(nil, errRefused)
	_, err = env.session.EstablishConnection(ctx)
	require.ErrorIs(err, errRefused)
}

func TestEstablishPayerFunded(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)
	fees := env.cfg.Fees(testRent)

	gomock.InOrder(
		env.ledger.EXPECT().GetMinimumBalanceForRentExemption(gomock.Any(), uint64(record.Size)).Return(uint64(testRent), nil),
		env.ledger.EXPECT().GetBalance(gomock.Any(), env.payer.PublicKey()).Return(fees, nil),
	)

	balance, err := env.session.EstablishPayer(ctx)
	require.NoError(err)
	require.Equal(fees, balance)

	payer, err := env.session.Payer()
	require.NoError(err)
	require.Equal(env.payer, payer)
}

func TestEstablishPayerAirdrop(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)
	fees := env.cfg.Fees(testRent)

	gomock.InOrder(
		env.ledger.EXPECT().GetMinimumBalanceForRentExemption(gomock.Any(), uint64(record.Size)).Return(uint64(testRent), nil),
		env.ledger.EXPECT().GetBalance(gomock.Any(), env.payer.PublicKey()).Return(uint64(1_000), nil),
		env.ledger.EXPECT().RequestAirdropAndConfirm(gomock.Any(), env.payer.PublicKey(), fees-1_000).Return(ed25519.Signature{1}, nil).Times(1),
		env.ledger.EXPECT().GetBalance(gomock.Any(), env.payer.PublicKey()).Return(fees, nil),
	)

	balance, err := env.session.EstablishPayer(ctx)
	require.NoError(err)
	require.Equal(fees, balance)
}

func TestEstablishPayerStillShort(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)
	fees := env.cfg.Fees(testRent)

	gomock.InOrder(
		env.ledger.EXPECT().GetMinimumBalanceForRentExemption(gomock.Any(), uint64(record.Size)).Return(uint64(testRent), nil),
		env.ledger.EXPECT().GetBalance(gomock.Any(), env.payer.PublicKey()).Return(uint64(0), nil),
		env.ledger.EXPECT().RequestAirdropAndConfirm(gomock.Any(), env.payer.PublicKey(), fees).Return(ed25519.Signature{1}, nil).Times(1),
		env.ledger.EXPECT().GetBalance(gomock.Any(), env.payer.PublicKey()).Return(fees-1, nil),
	)

	balance, err := env.session.EstablishPayer(ctx)
	require.ErrorIs(err, ErrInsufficientFunds)
	require.Equal(fees-1, balance)
}

func TestEstablishPayerAirdropFails(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)
	errLimit := errors.New("airdrop limit reached")

	gomock.InOrder(
		env.ledger.EXPECT().GetMinimumBalanceForRentExemption(gomock.Any(), uint64(record.Size)).Return(uint64(testRent), nil),
		env.ledger.EXPECT().GetBalance(gomock.Any(), env.payer.PublicKey()).Return(uint64(0), nil),
		env.ledger.EXPECT().RequestAirdropAndConfirm(gomock.Any(), env.payer.PublicKey(), gomock.Any()).Return(ed25519.EmptySignature, errLimit),
	)

	_, err := env.session.EstablishPayer(ctx)
	require.ErrorIs(err, ErrInsufficientFunds)
	require.ErrorIs(err, errLimit)
}

func TestEstablishPayerAirdropDisabled(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.cfg.Airdrop = false

	gomock.InOrder(
		env.ledger.EXPECT().GetMinimumBalanceForRentExemption(gomock.Any(), uint64(record.Size)).Return(uint64(testRent), nil),
		env.ledger.EXPECT().GetBalance(gomock.Any(), env.payer.PublicKey()).Return(uint64(0), nil),
	)

	_, err := env.session.EstablishPayer(ctx)
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestLoadPayerGenerates(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.cfg.PayerKeypair = filepath.Join(t.TempDir(), "solana", "id.json")

	payer, err := env.session.LoadPayer()
	require.NoError(err)

	saved, err := keys.Load(env.cfg.PayerKeypair)
	require.NoError(err)
	require.Equal(payer, saved)

	// A second session reuses the generated key.
	again, err := NewSession(logging.NoLog{}, env.ledger, env.cfg).LoadPayer()
	require.NoError(err)
	require.Equal(payer, again)
}

func TestCheckProgramKeypairMissing(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.session.SetPayer(env.payer)
	env.cfg.ProgramKeypair = filepath.Join(t.TempDir(), "missing.json")

	_, err := env.session.CheckProgram(context.Background())
	require.ErrorIs(err, ErrProgramKeypair)
	require.ErrorIs(err, ErrConfiguration)
	require.ErrorIs(err, os.ErrNotExist)
	require.Contains(err.Error(), "solana program deploy "+env.cfg.ProgramObject)
}

func TestCheckProgramNotDeployed(t *testing.T) {
	tests := []struct {
		name      string
		built     bool
		info      *rpc.AccountInfo
		infoErr   error
		expectErr error
	}{
		{
			name:      "built",
			built:     true,
			infoErr:   rpc.ErrAccountNotFound,
			expectErr: ErrProgramNotDeployed,
		},
		{
			name:      "not built",
			infoErr:   rpc.ErrAccountNotFound,
			expectErr: ErrProgramNotBuilt,
		},
		{
			name:      "not executable",
			built:     true,
			info:      &rpc.AccountInfo{Executable: false},
			expectErr: ErrProgramNotExecutable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctx := context.Background()
			env := newTestEnv(t)
			env.session.SetPayer(env.payer)
			if tt.built {
				require.NoError(os.WriteFile(env.cfg.ProgramObject, []byte{0x7f, 'E', 'L', 'F'}, 0o600))
			}

			var infoErr error
			if tt.infoErr != nil {
				infoErr = fmt.Errorf("%w: %s", tt.infoErr, env.program.PublicKey())
			}
			env.ledger.EXPECT().GetAccountInfo(gomock.Any(), env.program.PublicKey()).Return(tt.info, infoErr)

			_, err := env.session.CheckProgram(ctx)
			require.ErrorIs(err, tt.expectErr)
			require.ErrorIs(err, ErrConfiguration)

			_, err = env.session.Location()
			require.ErrorIs(err, ErrNoProgram)
		})
	}
}

func TestCheckProgramNoPayer(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.session.CheckProgram(context.Background())
	require.ErrorIs(t, err, ErrNoPayer)
}

func TestCheckProgramCreatesAccount(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)
	env.session.SetPayer(env.payer)
	kycAddr := env.kycAddress(t)

	gomock.InOrder(
		env.ledger.EXPECT().GetAccountInfo(gomock.Any(), env.program.PublicKey()).Return(&rpc.AccountInfo{Executable: true}, nil),
		env.ledger.EXPECT().GetAccountInfo(gomock.Any(), kycAddr).Return(nil, rpc.ErrAccountNotFound),
		env.ledger.EXPECT().GetMinimumBalanceForRentExemption(gomock.Any(), uint64(record.Size)).Return(uint64(testRent), nil),
		env.ledger.EXPECT().SendAndConfirm(gomock.Any(), env.payer, gomock.Any(), gomock.Any()).Return(ed25519.Signature{1}, nil).Times(1),
	)

	created, err := env.session.CheckProgram(ctx)
	require.NoError(err)
	require.True(created)

	loc, err := env.session.Location()
	require.NoError(err)
	require.Equal(kycAddr, loc.Address)
	require.Equal(env.program.PublicKey(), loc.Program)
}

func TestCheckProgramID(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)
	env.session.SetPayer(env.payer)
	env.cfg.ProgramKeypair = ""
	env.cfg.ProgramID = env.program.PublicKey().String()

	env.ledger.EXPECT().GetAccountInfo(gomock.Any(), env.program.PublicKey()).Return(&rpc.AccountInfo{Executable: true}, nil)

	program, err := env.session.LoadProgram(ctx)
	require.NoError(err)
	require.Equal(env.program.PublicKey(), program)
}

func TestWriteCustomer(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)
	env.ready(t)

	expected, err := record.Encode(100, testCustomerID, testCustomerName)
	require.NoError(err)
	env.ledger.EXPECT().SendAndConfirm(gomock.Any(), env.payer, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ ed25519.PrivateKey, signers []ed25519.PrivateKey, instrs ...*chain.Instruction) (ed25519.Signature, error) {
			require.Empty(signers)
			require.Equal([]*chain.Instruction{{
				Program:  env.program.PublicKey(),
				Accounts: []chain.AccountMeta{chain.Writable(env.kycAddress(t))},
				Data:     expected,
			}}, instrs)
			return ed25519.Signature{2}, nil
		},
	).Times(1)

	sig, err := env.session.WriteCustomer(ctx, testCustomerID, testCustomerName)
	require.NoError(err)
	require.Equal(ed25519.Signature{2}, sig)
}

func TestWriteCustomerNotReady(t *testing.T) {
	env := newTestEnv(t)
	env.session.SetPayer(env.payer)

	_, err := env.session.WriteCustomer(context.Background(), testCustomerID, testCustomerName)
	require.ErrorIs(t, err, ErrNoProgram)
}

func TestReadCustomer(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	env := newTestEnv(t)
	env.ready(t)

	data, err := record.Encode(100, testCustomerID, testCustomerName)
	require.NoError(err)
	env.ledger.EXPECT().GetAccountInfo(gomock.Any(), env.kycAddress(t)).Return(&rpc.AccountInfo{Data: data}, nil)

	c, err := env.session.ReadCustomer(ctx)
	require.NoError(err)
	require.Equal(uint8(100), c.Opcode)
	require.Equal(testCustomerID, c.CustomerIDText())
	require.Equal(testCustomerName, c.CustomerNameText())
}

func TestReadCustomerErrors(t *testing.T) {
	tests := []struct {
		name string
		info *rpc.AccountInfo
		err  error
	}{
		{
			name: "never created",
			err:  ErrAccountNotFound,
		},
		{
			name: "wrong size",
			info: &rpc.AccountInfo{Data: make([]byte, record.Size-1)},
			err:  ErrMalformedRecord,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			env := newTestEnv(t)
			env.ready(t)

			var infoErr error
			if tt.info == nil {
				infoErr = rpc.ErrAccountNotFound
			}
			env.ledger.EXPECT().GetAccountInfo(gomock.Any(), env.kycAddress(t)).Return(tt.info, infoErr)

			_, err := env.session.ReadCustomer(ctx)
			require.ErrorIs(t, err, tt.err)
		})
	}
}
