// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the web
// panel, its embedded script and the terminal panel.
//
// The Msg* prefixes are prepended to the underlying description of a failed
// action. Both front ends render the same wording.
package app

const (
	// MsgFetchErrorPrefix precedes the description of a submit that never
	// produced a JSON body (network failure, timeout, non-JSON response).
	MsgFetchErrorPrefix = "Fetch Error: "

	// MsgServerErrorPrefix precedes the backend's own "error" message, for
	// both submit and decrypt.
	MsgServerErrorPrefix = "Error: "

	// MsgUnexpectedResponsePrefix precedes the raw body of a submit response
	// that is neither an error nor a result.
	MsgUnexpectedResponsePrefix = "Unexpected response: "

	// MsgDecryptionFailedPrefix precedes the description of a decrypt that
	// never produced a JSON body.
	MsgDecryptionFailedPrefix = "Decryption failed: "

	// MsgDecryptingFormat is the status line shown while a decrypt runs.
	MsgDecryptingFormat = "Decrypting job %s..."

	MsgOptimizationResultTitle = "Optimization Result"
	MsgDecryptedTitle          = "Decrypted Result"

	// MsgInternalServerError is written when a fragment cannot be rendered.
	MsgInternalServerError = "internal server error"

	// MsgTooManyRequests is written when the /ui rate limit rejects a call.
	MsgTooManyRequests = "too many requests, slow down"
)
