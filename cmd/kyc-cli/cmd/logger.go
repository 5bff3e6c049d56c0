// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"io"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ava-labs/kyc-client/config"
)

const (
	logMaxSizeMB  = 8
	logMaxBackups = 3
	logMaxAgeDays = 7
)

// unclosable keeps Stop from closing a process-wide stream.
type unclosable struct {
	io.Writer
}

func (unclosable) Close() error {
	return nil
}

// newLogger writes to stderr and, when configured, to a rotating file.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	level, err := logging.ToLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	cores := []logging.WrappedCore{
		logging.NewWrappedCore(level, unclosable{os.Stderr}, logging.Colors.ConsoleEncoder()),
	}
	if len(cfg.LogFile) > 0 {
		cores = append(cores, logging.NewWrappedCore(
			level,
			&lumberjack.Logger{
				Filename:   cfg.LogFile,
				MaxSize:    logMaxSizeMB,
				MaxBackups: logMaxBackups,
				MaxAge:     logMaxAgeDays,
				Compress:   true,
			},
			logging.Plain.FileEncoder(),
		))
	}
	return logging.NewLogger("kyc", cores...), nil
}
