// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ava-labs/kyc-client/utils"
)

var (
	ErrInputEmpty     = errors.New("input is empty")
	ErrInputTooLarge  = errors.New("input is too large")
	ErrAmountTooLarge = errors.New("amount is too large")
)

// ValidateText checks that [input] is non-empty and fits in [maxLen]
// bytes.
func ValidateText(input string, maxLen int) error {
	if len(strings.TrimSpace(input)) == 0 {
		return ErrInputEmpty
	}
	if len(input) > maxLen {
		return fmt.Errorf("%w: %d bytes, max %d", ErrInputTooLarge, len(input), maxLen)
	}
	return nil
}

// Text reads a value of at most [maxLen] bytes. Surrounding whitespace is
// kept.
func Text(label string, maxLen int) (string, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			return ValidateText(input, maxLen)
		},
	}
	return promptText.Run()
}

// ValidateAmount parses [input] as a token amount no larger than [maxAmount]
// lamports.
func ValidateAmount(input string, maxAmount uint64) (uint64, error) {
	if len(strings.TrimSpace(input)) == 0 {
		return 0, ErrInputEmpty
	}
	amount, err := utils.ParseBalance(input)
	if err != nil {
		return 0, err
	}
	if amount == 0 {
		return 0, ErrInputEmpty
	}
	if amount > maxAmount {
		return 0, fmt.Errorf("%w: max %s", ErrAmountTooLarge, utils.FormatBalance(maxAmount))
	}
	return amount, nil
}

// Amount reads a token amount and returns it in lamports.
func Amount(label string, maxAmount uint64) (uint64, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := ValidateAmount(input, maxAmount)
			return err
		},
	}
	rawAmount, err := promptText.Run()
	if err != nil {
		return 0, err
	}
	return ValidateAmount(rawAmount, maxAmount)
}
