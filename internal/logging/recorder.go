// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

var _ logging.Logger = (*Recorder)(nil)

type Entry struct {
	Level  logging.Level
	Msg    string
	Fields []zap.Field
}

// Recorder is a logging.Logger that keeps entries at or above its level
// in memory.
type Recorder struct {
	lock    sync.Mutex
	level   logging.Level
	entries []Entry
}

func NewRecorder(level logging.Level) *Recorder {
	return &Recorder{level: level}
}

// Entries returns the recorded entries logged at [level].
func (r *Recorder) Entries(level logging.Level) []Entry {
	r.lock.Lock()
	defer r.lock.Unlock()

	var entries []Entry
	for _, e := range r.entries {
		if e.Level == level {
			entries = append(entries, e)
		}
	}
	return entries
}

// Messages returns the messages logged at [level] in order, or nil if
// there are none.
func (r *Recorder) Messages(level logging.Level) []string {
	var msgs []string
	for _, e := range r.Entries(level) {
		msgs = append(msgs, e.Msg)
	}
	return msgs
}

func (r *Recorder) record(level logging.Level, msg string, fields []zap.Field) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if level < r.level {
		return
	}
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: fields})
}

func (r *Recorder) Fatal(msg string, fields ...zap.Field) { r.record(logging.Fatal, msg, fields) }

func (r *Recorder) Error(msg string, fields ...zap.Field) { r.record(logging.Error, msg, fields) }

func (r *Recorder) Warn(msg string, fields ...zap.Field) { r.record(logging.Warn, msg, fields) }

func (r *Recorder) Info(msg string, fields ...zap.Field) { r.record(logging.Info, msg, fields) }

func (r *Recorder) Trace(msg string, fields ...zap.Field) { r.record(logging.Trace, msg, fields) }

func (r *Recorder) Debug(msg string, fields ...zap.Field) { r.record(logging.Debug, msg, fields) }

func (r *Recorder) Verbo(msg string, fields ...zap.Field) { r.record(logging.Verbo, msg, fields) }

func (r *Recorder) Enabled(level logging.Level) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	return level >= r.level
}

func (r *Recorder) SetLevel(level logging.Level) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.level = level
}

func (*Recorder) RecoverAndExit(f, exit func()) {
	defer exit()
	f()
}

func (*Recorder) RecoverAndPanic(f func()) { f() }

func (*Recorder) Stop() {}

func (*Recorder) StopOnPanic() {}

func (*Recorder) Write(p []byte) (int, error) {
	return len(p), nil
}
