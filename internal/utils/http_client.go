package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-portfolio-panel"

// HTTPClient embeds *resty.Client so the whole resty API is available while
// leaving room for panel-specific defaults.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client bound to baseURL. A zero
// timeout leaves requests without a client-side deadline; cancellation then
// comes only from the request context or the transport itself.
//
//	client := utils.NewHTTPClient("http://localhost:5000", 0)
//	resp, err := client.R().SetContext(ctx).Get("/decrypt")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPClient{Client: c}
}
