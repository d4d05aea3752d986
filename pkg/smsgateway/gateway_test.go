package smsgateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Behyna/sms-services/dispatcher/pkg/mocks"
	"github.com/Behyna/sms-services/dispatcher/pkg/smsgateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func matchSendBody(to, message string) interface{} {
	return mock.MatchedBy(func(body interface{}) bool {
		reader, ok := body.(io.Reader)
		if !ok {
			return false
		}

		raw, err := io.ReadAll(reader)
		if err != nil {
			return false
		}

		var req struct {
			To      string `json:"to"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &req); err != nil {
			return false
		}

		return req.To == to && req.Message == message
	})
}

func TestHTTPGateway_Send(t *testing.T) {
	cfg := smsgateway.Config{
		URL:     "https://api.provider.test/v1/sms",
		Timeout: 5 * time.Second,
		Sender:  "NOTIFY",
	}

	headers := map[string]string{"Content-Type": "application/json"}
	to := "+48601234567"
	message := "Your appointment is confirmed."

	t.Run("successful send returns provider id and measurement", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		gw := smsgateway.NewHTTPGateway(cfg, mockClient)

		resp := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`{"id":"prov-123","status":"sent"}`)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchSendBody(to, message),
			headers).Return(resp, nil)

		result, err := gw.Send(context.Background(), to, message, nil)

		assert.NoError(t, err)
		assert.Equal(t, "prov-123", result.ProviderID)
		assert.Equal(t, len(message), result.Length)
		assert.Equal(t, 1, result.Parts)
		assert.Equal(t, smsgateway.EncodingGSM7, result.Encoding)
		mockClient.AssertExpectations(t)
	})

	t.Run("bad request maps to invalid number", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		gw := smsgateway.NewHTTPGateway(cfg, mockClient)

		resp := &http.Response{
			StatusCode: 400,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchSendBody(to, message),
			headers).Return(resp, nil)

		_, err := gw.Send(context.Background(), to, message, nil)

		assert.Error(t, err)
		assert.Equal(t, smsgateway.ErrorCodeInvalidNumber, smsgateway.CodeOf(err))
		mockClient.AssertExpectations(t)
	})

	t.Run("server failure maps to server error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		gw := smsgateway.NewHTTPGateway(cfg, mockClient)

		resp := &http.Response{
			StatusCode: 500,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchSendBody(to, message),
			headers).Return(resp, nil)

		_, err := gw.Send(context.Background(), to, message, nil)

		assert.Error(t, err)
		assert.Equal(t, smsgateway.ErrorCodeServerError, smsgateway.CodeOf(err))
		mockClient.AssertExpectations(t)
	})

	t.Run("deadline maps to timeout", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		gw := smsgateway.NewHTTPGateway(cfg, mockClient)

		mockClient.On("Post", context.Background(), cfg.URL, matchSendBody(to, message),
			headers).Return((*http.Response)(nil), context.DeadlineExceeded)

		_, err := gw.Send(context.Background(), to, message, nil)

		assert.Error(t, err)
		assert.Equal(t, smsgateway.ErrorCodeTimeout, smsgateway.CodeOf(err))
		mockClient.AssertExpectations(t)
	})

	t.Run("connection failure maps to network error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		gw := smsgateway.NewHTTPGateway(cfg, mockClient)

		mockClient.On("Post", context.Background(), cfg.URL, matchSendBody(to, message),
			headers).Return((*http.Response)(nil), errors.New("connection refused"))

		_, err := gw.Send(context.Background(), to, message, nil)

		assert.Error(t, err)
		assert.Equal(t, smsgateway.ErrorCodeNetworkError, smsgateway.CodeOf(err))
		mockClient.AssertExpectations(t)
	})

	t.Run("malformed response body maps to server error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		gw := smsgateway.NewHTTPGateway(cfg, mockClient)

		resp := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`{"id":`)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchSendBody(to, message),
			headers).Return(resp, nil)

		_, err := gw.Send(context.Background(), to, message, nil)

		assert.Error(t, err)
		assert.Equal(t, smsgateway.ErrorCodeServerError, smsgateway.CodeOf(err))
		mockClient.AssertExpectations(t)
	})
}
