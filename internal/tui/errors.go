// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	errNoJobToDecrypt = errors.New("no job to decrypt yet")
	errNothingToCopy  = errors.New("nothing to copy yet")
)
