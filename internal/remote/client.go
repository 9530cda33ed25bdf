// Package remote implements mockapi.Backend against a genuine backend over
// HTTP. Transport failures, timeouts and non-2xx replies are folded into the
// same {success, message} result the fake returns, so callers never change.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/mockapi"
)

const maxBody = 1 << 20

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

var _ mockapi.Backend = (*Client)(nil)

func (c *Client) Register(ctx context.Context, p mockapi.Profile) mockapi.AuthResult {
	var res mockapi.AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", p, &res); err != nil {
		c.logger.Warn("remote register failed", zap.Error(err))
		return mockapi.AuthResult{Success: false, Message: describe(err)}
	}
	return normalize(res)
}

func (c *Client) SocialLogin(ctx context.Context, provider string) mockapi.AuthResult {
	var res mockapi.AuthResult
	path := "/auth/social/" + url.PathEscape(strings.ToLower(strings.TrimSpace(provider)))
	if err := c.do(ctx, http.MethodPost, path, nil, &res); err != nil {
		c.logger.Warn("remote social login failed", zap.Error(err))
		return mockapi.AuthResult{Success: false, Message: describe(err)}
	}
	return normalize(res)
}

func (c *Client) GetKYCStatus(ctx context.Context, userID string) (mockapi.KYCData, error) {
	var data mockapi.KYCData
	if err := c.do(ctx, http.MethodGet, "/kyc/"+url.PathEscape(userID), nil, &data); err != nil {
		return mockapi.KYCData{}, fmt.Errorf("remote kyc: %w", err)
	}
	if data.UserID == "" {
		data.UserID = userID
	}
	data.Progress = mockapi.KYCProgress(data.Documents)
	return data, nil
}

// StatusError is a non-2xx reply from the backend.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend http %d: %s", e.Code, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Message: replyMessage(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	return nil
}

// replyMessage pulls a human readable message out of an error body.
func replyMessage(raw []byte) string {
	var m struct {
		Message     string `json:"message"`
		Description string `json:"description"`
		Error       string `json:"error"`
	}
	if json.Unmarshal(raw, &m) == nil {
		for _, s := range []string{m.Message, m.Description, m.Error} {
			if s != "" {
				return s
			}
		}
	}
	return strings.TrimSpace(string(raw))
}

func describe(err error) string {
	var se *StatusError
	switch {
	case errors.Is(err, context.Canceled):
		return "request cancelled"
	case errors.Is(err, context.DeadlineExceeded), isTimeout(err):
		return "backend timed out"
	case errors.As(err, &se):
		if se.Code == http.StatusConflict {
			return "account already exists"
		}
		if se.Code >= 500 {
			return "backend unavailable, try again later"
		}
		if se.Message != "" {
			return se.Message
		}
		return http.StatusText(se.Code)
	default:
		return "backend unreachable"
	}
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// normalize keeps the contract: a failed result always carries a message.
func normalize(res mockapi.AuthResult) mockapi.AuthResult {
	if !res.Success {
		res.User = nil
		if res.Message == "" {
			res.Message = "request failed"
		}
	}
	return res
}
