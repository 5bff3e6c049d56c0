// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/ava-labs/kyc-client/codec"
)

type Context struct {
	Slot uint64 `json:"slot"`
}

type VersionReply struct {
	SolanaCore string `json:"solana-core"`
	FeatureSet uint32 `json:"feature-set"`
}

type BalanceReply struct {
	Context Context `json:"context"`
	Value   uint64  `json:"value"`
}

// AccountInfo is the state of a single on-chain account.
type AccountInfo struct {
	Lamports   uint64        `json:"lamports"`
	Owner      codec.Address `json:"owner"`
	Executable bool          `json:"executable"`
	RentEpoch  uint64        `json:"rentEpoch"`
	Space      uint64        `json:"space"`
	Data       AccountData   `json:"data"`
}

// AccountData is returned by the node as ["<payload>", "<encoding>"].
type AccountData []byte

func (d *AccountData) UnmarshalJSON(b []byte) error {
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 2 || raw[1] != encodingBase64 {
		return fmt.Errorf("%w: %s", ErrInvalidEncoding, b)
	}
	decoded, err := base64.StdEncoding.DecodeString(raw[0])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	*d = decoded
	return nil
}

func (d AccountData) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{base64.StdEncoding.EncodeToString(d), encodingBase64})
}

type AccountInfoReply struct {
	Context Context      `json:"context"`
	Value   *AccountInfo `json:"value"`
}

type Blockhash struct {
	Blockhash            codec.Hash `json:"blockhash"`
	LastValidBlockHeight uint64     `json:"lastValidBlockHeight"`
}

type BlockhashReply struct {
	Context Context   `json:"context"`
	Value   Blockhash `json:"value"`
}

// SignatureStatus reports the progress of a submitted transaction. Err is
// the raw transaction error, null when the transaction succeeded.
type SignatureStatus struct {
	Slot               uint64          `json:"slot"`
	Confirmations      *uint64         `json:"confirmations"`
	Err                json.RawMessage `json:"err"`
	ConfirmationStatus Commitment      `json:"confirmationStatus"`
}

// Failed reports whether the transaction was executed with an error.
func (s *SignatureStatus) Failed() bool {
	return len(s.Err) > 0 && string(s.Err) != "null"
}

type SignatureStatusesReply struct {
	Context Context            `json:"context"`
	Value   []*SignatureStatus `json:"value"`
}

type commitmentConfig struct {
	Commitment Commitment `json:"commitment,omitempty"`
}

type accountInfoConfig struct {
	Encoding   string     `json:"encoding"`
	Commitment Commitment `json:"commitment,omitempty"`
}

type sendTransactionConfig struct {
	Encoding            string     `json:"encoding"`
	PreflightCommitment Commitment `json:"preflightCommitment,omitempty"`
}

type signatureStatusesConfig struct {
	SearchTransactionHistory bool `json:"searchTransactionHistory"`
}
