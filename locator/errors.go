// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package locator

import "errors"

var ErrBaseMismatch = errors.New("funder is not the base key")
