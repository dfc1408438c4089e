// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the optimization backend.
//
// [OptimizerAdapter] hides the transport from the service layer. The only
// implementation is HTTP/REST on resty ([NewHTTPOptimizerAdapter]).
//
// Every failure is classified into one of three terminal kinds defined in
// errors.go: [TransportError], [ServerError] and [SchemaError]. Callers
// match them with [errors.As], or with [errors.Is] against [ErrTransport],
// [ErrServer] and [ErrSchema].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-portfolio-panel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/optimizer_adapter_mock.go -package=mock

// OptimizerAdapter is the client side of the backend's two endpoints.
type OptimizerAdapter interface {
	// Optimize sends the raw ticker string as form field "tickers" to
	// POST /optimize. The HTTP status is ignored; only the body decides the
	// outcome. Returns a [ServerError] when the body carries "error", a
	// [SchemaError] when the success shape is absent, and a [TransportError]
	// when the call fails or the body is not JSON.
	Optimize(ctx context.Context, req models.OptimizationRequest) (models.OptimizationResult, error)

	// Decrypt fetches GET /decrypt?job_id=<jobID>. Returns a [ServerError]
	// when the body carries "error" and a [TransportError] when the call
	// fails or the body is not JSON. A body without "plaintext" yields a
	// JSON null plaintext.
	Decrypt(ctx context.Context, jobID string) (models.DecryptionResult, error)
}
