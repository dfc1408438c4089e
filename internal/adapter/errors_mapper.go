package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// envelope is the top-level JSON object of a backend response, kept raw so
// each field can be checked before the success shape is assumed.
type envelope map[string]json.RawMessage

// decodeEnvelope parses the body of resp. A body that is not JSON is a
// transport failure; valid JSON that is not an object yields a nil envelope.
func decodeEnvelope(op string, resp *resty.Response) (envelope, error) {
	body := resp.Body()
	if !json.Valid(body) {
		return nil, newTransportError(op, describeInvalidBody(resp))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil
	}
	return env, nil
}

func describeInvalidBody(resp *resty.Response) error {
	status := resp.StatusCode()
	if len(bytes.TrimSpace(resp.Body())) == 0 {
		return fmt.Errorf("empty response body (HTTP %d %s)", status, http.StatusText(status))
	}
	return fmt.Errorf("response is not valid JSON (HTTP %d %s)", status, http.StatusText(status))
}

// serverError returns a [ServerError] when the envelope carries a truthy
// "error" field. null, false, "" and 0 count as absent.
func serverError(op string, env envelope) error {
	raw, ok := env["error"]
	if !ok {
		return nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	switch value := v.(type) {
	case nil:
		return nil
	case bool:
		if !value {
			return nil
		}
	case string:
		if value == "" {
			return nil
		}
		return &ServerError{Op: op, Message: value}
	case float64:
		if value == 0 {
			return nil
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return &ServerError{Op: op, Message: string(raw)}
	}
	return &ServerError{Op: op, Message: compact.String()}
}
