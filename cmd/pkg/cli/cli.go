package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Kravtmk/whoami-app/internal/model"
)

type Client struct {
	Host string
	HTTP *http.Client
}

func NewClient(host string) *Client {
	return &Client{
		Host: strings.TrimRight(host, "/"),
		HTTP: &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a non-2xx answer of the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Request sends a raw request and pretty-prints the answer to w.
func (c *Client) Request(w io.Writer, method, endpoint, data string) error {
	var body io.Reader
	if data != "" {
		body = strings.NewReader(data)
	}
	req, err := http.NewRequest(method, c.Host+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	fmt.Fprintf(w, "Status: %s\n", resp.Status)
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err == nil {
		fmt.Fprintln(w, "Response:")
		fmt.Fprintln(w, pretty.String())
	} else {
		fmt.Fprintf(w, "Response: %s\n", string(raw))
	}
	return nil
}

func (c *Client) Today(ctx context.Context, userID string) (model.TodayDTO, error) {
	var out model.TodayDTO
	q := url.Values{"userId": {userID}}
	err := c.doJSON(ctx, http.MethodGet, "/today?"+q.Encode(), nil, &out)
	return out, err
}

func (c *Client) AddSegment(ctx context.Context, userID string, seg model.Segment) (model.AppendSegmentResponseDTO, error) {
	var out model.AppendSegmentResponseDTO
	q := url.Values{"userId": {userID}}
	err := c.doJSON(ctx, http.MethodPost, "/today/segment?"+q.Encode(), seg, &out)
	return out, err
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Host+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e model.ErrorDTO
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
