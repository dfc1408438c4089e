// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal panel application runtime.
//
// It runs the terminal UI inside a process lifecycle that stops on
// SIGTERM or SIGQUIT as well as on the UI's own quit key.
package client
