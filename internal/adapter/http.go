package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-portfolio-panel/internal/config"
	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/MKhiriev/go-portfolio-panel/internal/utils"
	"github.com/MKhiriev/go-portfolio-panel/models"
)

const (
	optimizePath = "/optimize"
	decryptPath  = "/decrypt"

	opOptimize = "optimize"
	opDecrypt  = "decrypt"
)

var nullPlaintext = json.RawMessage("null")

type httpOptimizerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPOptimizerAdapter constructs the resty implementation of
// [OptimizerAdapter]. The base URL is normalised from cfg.HTTPAddress (a
// missing scheme means http). A zero cfg.RequestTimeout leaves calls without
// a client-side timeout.
//
// Returns an error if the address is empty or cannot be parsed.
func NewHTTPOptimizerAdapter(cfg config.Backend, logger *logger.Logger) (OptimizerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid backend address: %w", err)
	}

	return &httpOptimizerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Optimize implements [OptimizerAdapter].
func (h *httpOptimizerAdapter) Optimize(ctx context.Context, req models.OptimizationRequest) (models.OptimizationResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"tickers": req.Tickers}).
		Post(optimizePath)
	if err != nil {
		return models.OptimizationResult{}, newTransportError(opOptimize, err)
	}

	h.logger.Debug().
		Int("status", resp.StatusCode()).
		Int("size", len(resp.Body())).
		Msg("optimize response received")

	env, err := decodeEnvelope(opOptimize, resp)
	if err != nil {
		return models.OptimizationResult{}, err
	}
	if err = serverError(opOptimize, env); err != nil {
		return models.OptimizationResult{}, err
	}

	return decodeOptimizationResult(env, resp.Body())
}

// optimizationPayload mirrors models.OptimizationResult with pointer
// numerics so missing fields can be told apart from zeros.
type optimizationPayload struct {
	Selected       []string `json:"selected"`
	ExpectedReturn *float64 `json:"expected_return"`
	Risk           *float64 `json:"risk"`
	Method         string   `json:"method"`
	JobID          string   `json:"job_id"`
	CiphertextHex  string   `json:"ciphertext_hex"`
	NonceHex       string   `json:"nonce_hex"`
}

func decodeOptimizationResult(env envelope, body []byte) (models.OptimizationResult, error) {
	raw := string(bytes.TrimSpace(body))

	selected, ok := env["selected"]
	if !ok || !isJSONArray(selected) {
		return models.OptimizationResult{}, &SchemaError{Reason: "missing selected assets", Body: raw}
	}

	var p optimizationPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return models.OptimizationResult{}, &SchemaError{Reason: err.Error(), Body: raw}
	}
	if p.ExpectedReturn == nil || p.Risk == nil {
		return models.OptimizationResult{}, &SchemaError{Reason: "missing expected return or risk", Body: raw}
	}

	return models.OptimizationResult{
		Selected:       p.Selected,
		ExpectedReturn: *p.ExpectedReturn,
		Risk:           *p.Risk,
		Method:         p.Method,
		JobID:          p.JobID,
		CiphertextHex:  p.CiphertextHex,
		NonceHex:       p.NonceHex,
	}, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// Decrypt implements [OptimizerAdapter].
func (h *httpOptimizerAdapter) Decrypt(ctx context.Context, jobID string) (models.DecryptionResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("job_id", jobID).
		Get(decryptPath)
	if err != nil {
		return models.DecryptionResult{}, newTransportError(opDecrypt, err)
	}

	h.logger.Debug().
		Str("job_id", jobID).
		Int("status", resp.StatusCode()).
		Msg("decrypt response received")

	env, err := decodeEnvelope(opDecrypt, resp)
	if err != nil {
		return models.DecryptionResult{}, err
	}
	if err = serverError(opDecrypt, env); err != nil {
		return models.DecryptionResult{}, err
	}

	plaintext, ok := env["plaintext"]
	if !ok {
		plaintext = nullPlaintext
	}

	return models.DecryptionResult{JobID: jobID, Plaintext: plaintext}, nil
}
