package smsgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Behyna/sms-services/dispatcher/pkg/httpclient"
)

type Gateway interface {
	Send(ctx context.Context, to string, message string, metadata map[string]any) (Result, error)
}

type Config struct {
	URL      string        `mapstructure:"url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Sender   string        `mapstructure:"sender"`
	TestMode bool          `mapstructure:"test_mode"`
}

// Result describes a successful provider submission.
type Result struct {
	ProviderID string
	Length     int
	Parts      int
	Encoding   Encoding
}

type sendRequest struct {
	To       string         `json:"to"`
	Message  string         `json:"message"`
	Sender   string         `json:"sender,omitempty"`
	Test     bool           `json:"test,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type sendResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type HTTPGateway struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewHTTPGateway(cfg Config, client httpclient.HTTPClient) Gateway {
	return &HTTPGateway{cfg: cfg, client: client}
}

// Send performs the single network call of the dispatch pipeline. Everything
// else in this package is pure computation.
func (g *HTTPGateway) Send(ctx context.Context, to string, message string, metadata map[string]any) (Result, error) {
	payload := sendRequest{
		To:       to,
		Message:  message,
		Sender:   g.cfg.Sender,
		Test:     g.cfg.TestMode,
		Metadata: metadata,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, NewDeliveryError(ErrorCodeServerError, err)
	}

	headers := map[string]string{"Content-Type": "application/json"}

	resp, err := g.client.Post(ctx, g.cfg.URL, bytes.NewReader(body), headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Result{}, NewDeliveryError(ErrorCodeTimeout, err)
		}

		return Result{}, NewDeliveryError(ErrorCodeNetworkError, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusBadRequest:
			return Result{}, NewDeliveryError(ErrorCodeInvalidNumber, nil)
		default:
			return Result{}, NewDeliveryError(ErrorCodeServerError, nil)
		}
	}

	var decoded sendResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, NewDeliveryError(ErrorCodeServerError, err)
	}

	m := Measure(message)

	return Result{
		ProviderID: decoded.ID,
		Length:     m.Length,
		Parts:      m.Parts,
		Encoding:   m.Encoding,
	}, nil
}
