package alertharvest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alertharvest/ah-mcp-gateway/pkg/config"
	"github.com/alertharvest/ah-mcp-gateway/pkg/models"
)

const defaultTimeout = 10 * time.Second

// Response is the body shape AlertHarvest returns. Fields the upstream
// omits are left at their zero values.
type Response struct {
	ID      int64  `json:"id,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// Client is an HTTP client for the AlertHarvest alert API
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient creates a new AlertHarvest client from configuration
func NewClient(cfg *config.AlertHarvestConfig) (*Client, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid alertharvest url %q: %w", cfg.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported protocol scheme %q, alertharvest url must start with http:// or https://", u.Scheme)
	}

	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// CreateAlert creates a new alert. If the draft carries no timestamp the
// current UTC time is assigned before sending.
func (c *Client) CreateAlert(ctx context.Context, draft models.AlertDraft) (*Response, error) {
	if draft.Timestamp == "" {
		draft.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return c.do(ctx, http.MethodPost, "/api/create_alert/", draft)
}

// AcknowledgeAlert marks an alert as seen without resolving it
func (c *Client) AcknowledgeAlert(ctx context.Context, id models.AlertID) (*Response, error) {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/acknowledge_alert/%d", id), nil)
}

// AcknowledgeAlertsBulk acknowledges multiple alerts in a single request.
// Per-id success or failure is decided entirely by AlertHarvest.
func (c *Client) AcknowledgeAlertsBulk(ctx context.Context, ids []models.AlertID) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/api/acknowledge_alerts_bulk/", bulkBody(ids))
}

// UnacknowledgeAlert marks an alert as unread again
func (c *Client) UnacknowledgeAlert(ctx context.Context, id models.AlertID) (*Response, error) {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/unacknowledge_alert/%d", id), nil)
}

// CloseAlert marks an alert as resolved
func (c *Client) CloseAlert(ctx context.Context, id models.AlertID) (*Response, error) {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/close_alert/%d", id), nil)
}

// CloseAlertsBulk closes multiple alerts in a single request
func (c *Client) CloseAlertsBulk(ctx context.Context, ids []models.AlertID) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/api/close_alerts_bulk/", bulkBody(ids))
}

// CloseExpiredAlerts asks AlertHarvest to close alerts per its own expiration rules
func (c *Client) CloseExpiredAlerts(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/api/close_expired_alerts/", nil)
}

func bulkBody(ids []models.AlertID) map[string][]models.AlertID {
	return map[string][]models.AlertID{"alert_ids": ids}
}

// do performs a single HTTP exchange against AlertHarvest and classifies
// the result. Every call is independent and stateless; there is no retry.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	u := *c.baseURL
	u.Path = path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logrus.Debugf("AlertHarvest request: %s %s", method, u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{StatusCode: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, &UnavailableError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("server error: %s", string(respBody)),
		}
	case resp.StatusCode >= 400:
		return nil, &RejectedError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		// Some routes answer with an empty body on success
		return &Response{Status: "success"}, nil
	}

	var result Response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &UnexpectedResponseError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
			Err:        err,
		}
	}

	// AlertHarvest reports some failures as 200 with an error status in the body
	if result.Status == "error" {
		return nil, &RejectedError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return &result, nil
}
