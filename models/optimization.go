// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the payloads exchanged with the optimization backend.
// They are transient: received once, rendered once, never stored.
package models

import "encoding/json"

// OptimizationRequest is the submit-flow input. Tickers is the raw value of
// the ticker field (comma or space separated) and is forwarded unvalidated.
type OptimizationRequest struct {
	Tickers string `json:"tickers"`
}

// OptimizationResult is the success body of POST /optimize.
type OptimizationResult struct {
	Selected       []string `json:"selected"`
	ExpectedReturn float64  `json:"expected_return"`
	Risk           float64  `json:"risk"`
	Method         string   `json:"method"`
	JobID          string   `json:"job_id"`

	// CiphertextHex and NonceHex are opaque to the panel (AES-GCM on the
	// backend side) and are only displayed.
	CiphertextHex string `json:"ciphertext_hex"`
	NonceHex      string `json:"nonce_hex"`
}

// DecryptionResult is the success body of GET /decrypt, keyed to the job id
// it was requested for. Plaintext is any JSON value, kept verbatim.
type DecryptionResult struct {
	JobID     string          `json:"job_id"`
	Plaintext json.RawMessage `json:"plaintext"`
}

// ErrorResponse is the failure body shared by both backend endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
