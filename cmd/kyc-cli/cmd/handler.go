// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/kyc-client/config"
	"github.com/ava-labs/kyc-client/consts"
	"github.com/ava-labs/kyc-client/kyc"
	"github.com/ava-labs/kyc-client/record"
	"github.com/ava-labs/kyc-client/requester"
	"github.com/ava-labs/kyc-client/rpc"
	"github.com/ava-labs/kyc-client/utils"

	kyctrace "github.com/ava-labs/kyc-client/trace"
)

type Handler struct {
	cfg      *config.Config
	log      logging.Logger
	tracer   trace.Tracer
	registry *prometheus.Registry
	cli      *rpc.JSONRPCClient
	session  *kyc.Session
}

func NewHandler(cfg *config.Config) (*Handler, error) {
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	registry := prometheus.NewRegistry()
	metrics, err := requester.NewMetrics(registry)
	if err != nil {
		return nil, err
	}
	tracer, err := kyctrace.New(consts.Name, consts.Version, &cfg.Trace)
	if err != nil {
		return nil, err
	}
	cli := rpc.NewJSONRPCClient(
		cfg.RPCURL,
		requester.New(
			cfg.RPCURL,
			"",
			requester.WithMetrics(metrics),
			requester.WithTracer(tracer),
		),
		rpc.WithCommitment(cfg.Commitment),
		rpc.WithPollInterval(cfg.PollInterval),
		rpc.WithConfirmTimeout(cfg.ConfirmTimeout),
	)
	return &Handler{
		cfg:      cfg,
		log:      log,
		tracer:   tracer,
		registry: registry,
		cli:      cli,
		session:  kyc.NewSession(log, cli, cfg, kyc.WithTracer(tracer)),
	}, nil
}

// Close flushes logs and spans and writes collected metrics to
// [prometheusFile] when it is set.
func (h *Handler) Close(prometheusFile string) error {
	defer h.log.Stop()
	if err := h.tracer.Close(); err != nil {
		h.log.Warn("failed to flush traces", zap.Error(err))
	}
	if len(prometheusFile) == 0 {
		return nil
	}
	return prometheus.WriteToTextfile(prometheusFile, h.registry)
}

// Connect establishes the connection and the payer.
func (h *Handler) Connect(ctx context.Context) error {
	version, err := h.session.EstablishConnection(ctx)
	if err != nil {
		return err
	}
	utils.Outf("{{yellow}}connected:{{/}} %s (%s)\n", h.cfg.RPCURL, version.SolanaCore)

	balance, err := h.session.EstablishPayer(ctx)
	if err != nil {
		return err
	}
	payer, err := h.session.Payer()
	if err != nil {
		return err
	}
	utils.Outf(
		"{{yellow}}payer:{{/}} %s {{yellow}}balance:{{/}} %s %s\n",
		payer.PublicKey(),
		utils.FormatBalance(balance),
		consts.Symbol,
	)
	return nil
}

// Prepare connects and makes sure the record account exists.
func (h *Handler) Prepare(ctx context.Context) error {
	if err := h.Connect(ctx); err != nil {
		return err
	}
	created, err := h.session.CheckProgram(ctx)
	if err != nil {
		return err
	}
	loc, err := h.session.Location()
	if err != nil {
		return err
	}
	utils.Outf("{{yellow}}program:{{/}} %s\n", loc.Program)
	if created {
		utils.Outf("{{green}}created record account:{{/}} %s (%d bytes)\n", loc.Address, record.Size)
	} else {
		utils.Outf("{{yellow}}record account:{{/}} %s\n", loc.Address)
	}
	return nil
}

func printComponent(c *record.Component, raw bool) {
	id, name := c.CustomerIDText(), c.CustomerNameText()
	if raw {
		id, name = string(c.CustomerID[:]), string(c.CustomerName[:])
	}
	utils.Outf("{{yellow}}opcode:{{/}} %d\n", c.Opcode)
	utils.Outf("{{yellow}}customer id:{{/}} %q\n", id)
	utils.Outf("{{yellow}}customer name:{{/}} %q\n", name)
}
