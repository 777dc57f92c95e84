package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"zonetree/internal/model"
)

// DefaultEndpoint is the Cloudflare v4 API base URL.
const DefaultEndpoint = "https://api.cloudflare.com/client/v4"

const listPageSize = 50

// Client talks to a Cloudflare-compatible v4 API. All responses use the
// standard envelope: {success, errors, result, result_info}.
type Client struct {
	endpoint string
	token    string
	httpc    *http.Client
	trace    *log.Logger
}

func NewClient(endpoint, token string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    token,
		httpc:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetTrace enables request tracing (method, path, status, duration) on the
// given logger. A nil logger disables tracing.
func (c *Client) SetTrace(l *log.Logger) { c.trace = l }

type envelope struct {
	Success    bool            `json:"success"`
	Errors     []envelopeError `json:"errors"`
	Result     json.RawMessage `json:"result"`
	ResultInfo *resultInfo     `json:"result_info"`
}

type envelopeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type resultInfo struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

func (c *Client) ListZones(ctx context.Context) ([]model.Zone, error) {
	var zones []model.Zone
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("page", fmt.Sprintf("%d", page))
		q.Set("per_page", fmt.Sprintf("%d", listPageSize))
		var batch []model.Zone
		info, err := c.do(ctx, http.MethodGet, "/zones", q, nil, &batch)
		if err != nil {
			return nil, err
		}
		zones = append(zones, batch...)
		if info == nil || page >= info.TotalPages {
			return zones, nil
		}
	}
}

func (c *Client) ListRecords(ctx context.Context, zoneID string) ([]model.Record, error) {
	var records []model.Record
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("page", fmt.Sprintf("%d", page))
		q.Set("per_page", fmt.Sprintf("%d", listPageSize))
		var batch []model.Record
		info, err := c.do(ctx, http.MethodGet, "/zones/"+url.PathEscape(zoneID)+"/dns_records", q, nil, &batch)
		if err != nil {
			return nil, err
		}
		records = append(records, batch...)
		if info == nil || page >= info.TotalPages {
			return records, nil
		}
	}
}

func (c *Client) CreateRecord(ctx context.Context, zoneID string, payload model.RecordPayload) (model.Record, error) {
	var rec model.Record
	_, err := c.do(ctx, http.MethodPost, "/zones/"+url.PathEscape(zoneID)+"/dns_records", nil, payload, &rec)
	return rec, err
}

func (c *Client) UpdateRecord(ctx context.Context, zoneID, recordID string, payload model.RecordPayload) (model.Record, error) {
	var rec model.Record
	_, err := c.do(ctx, http.MethodPut, "/zones/"+url.PathEscape(zoneID)+"/dns_records/"+url.PathEscape(recordID), nil, payload, &rec)
	return rec, err
}

func (c *Client) DeleteRecord(ctx context.Context, zoneID, recordID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/zones/"+url.PathEscape(zoneID)+"/dns_records/"+url.PathEscape(recordID), nil, nil, nil)
	return err
}

// do performs one API call and decodes the envelope. A non-success
// envelope or a transport failure comes back as *Error; out, when non-nil,
// receives the envelope's result field.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (*resultInfo, error) {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errorf(0, "encode request: %v", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, errorf(0, "build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errorf(0, "request %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	if c.trace != nil {
		c.trace.Printf("%s %s -> %d (%s)", method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorf(resp.StatusCode, "read response: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errorf(resp.StatusCode, "unexpected response from %s %s", method, path)
	}
	if !env.Success || resp.StatusCode >= 400 {
		msg := fmt.Sprintf("%s %s failed", method, path)
		if len(env.Errors) > 0 {
			msg = env.Errors[0].Message
		}
		return nil, errorf(resp.StatusCode, "%s", msg)
	}
	if out != nil {
		if err := json.Unmarshal(env.Result, out); err != nil {
			return nil, errorf(resp.StatusCode, "decode result: %v", err)
		}
	}
	return env.ResultInfo, nil
}
