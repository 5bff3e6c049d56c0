// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/onsi/ginkgo/v2/formatter"

	"github.com/ava-labs/kyc-client/consts"
)

// Outputs to stdout.
//
// e.g.,
//
//	Outf("{{green}}{{bold}}hi there %q{{/}}", "aa")
//	Outf("{{magenta}}{{bold}}hi therea{{/}} {{cyan}}{{underline}}b{{/}}")
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(formatter.ColorableStdOut, s)
}

// FormatBalance renders [bal] lamports as a decimal token amount.
func FormatBalance(bal uint64) string {
	return strconv.FormatFloat(float64(bal)/math.Pow10(consts.Decimals), 'f', consts.Decimals, 64)
}

// ParseBalance converts a decimal token amount into lamports.
func ParseBalance(bal string) (uint64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(bal), 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, fmt.Errorf("negative balance %q", bal)
	}
	return uint64(math.Round(f * math.Pow10(consts.Decimals))), nil
}

// ExpandHome replaces a leading "~" in [p] with the user's home directory.
func ExpandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

// FileExists reports whether [p] names an existing regular file.
func FileExists(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}
