package portal

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

	"github.com/luhambo/maintenance/internal/common/dto"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// NetworkErrorMessage is reported when the API cannot be reached or answers garbage
const NetworkErrorMessage = "Network error. Please check if server is running."

// Result is a decoded {success, message, ...} envelope
type Result struct {
	Success bool
	Message string
	body    gjson.Result
}

// Decode unmarshals the envelope field key into v
func (r Result) Decode(key string, v any) error {
	field := r.body.Get(key)
	if !field.Exists() {
		return fmt.Errorf("field %q missing from response", key)
	}
	return json.Unmarshal([]byte(field.Raw), v)
}

// ID reads a numeric id field such as reportId
func (r Result) ID(key string) uint {
	return uint(r.body.Get(key).Uint())
}

func networkError() Result {
	return Result{Message: NetworkErrorMessage}
}

// Client calls the REST API. Calls never fail with a Go error; transport
// problems come back as an unsuccessful Result carrying NetworkErrorMessage.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient targets baseURL, e.g. http://localhost:3000/api
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   15 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger.Named("client"),
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) Result {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			c.logger.Error("failed to encode request", zap.String("path", path), zap.Error(err))
			return networkError()
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		c.logger.Error("failed to build request", zap.String("url", target), zap.Error(err))
		return networkError()
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("API call failed", zap.String("method", method), zap.String("url", target), zap.Error(err))
		return networkError()
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil || !gjson.ValidBytes(raw) {
		c.logger.Warn("unreadable API response", zap.String("url", target), zap.Int("status", resp.StatusCode), zap.Error(err))
		return networkError()
	}

	parsed := gjson.ParseBytes(raw)
	return Result{
		Success: parsed.Get("success").Bool(),
		Message: parsed.Get("message").String(),
		body:    parsed,
	}
}

func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) Result {
	return c.do(ctx, http.MethodPost, "/register", nil, req)
}

func (c *Client) LoginStudent(ctx context.Context, identifier, password string) Result {
	return c.do(ctx, http.MethodPost, "/login/student", nil, dto.StudentLoginRequest{Identifier: identifier, Password: password})
}

func (c *Client) LoginAdmin(ctx context.Context, username, password string) Result {
	return c.do(ctx, http.MethodPost, "/login/admin", nil, dto.AdminLoginRequest{Username: username, Password: password})
}

func (c *Client) SubmitReport(ctx context.Context, req dto.SubmitReportRequest) Result {
	return c.do(ctx, http.MethodPost, "/reports", nil, req)
}

func (c *Client) StudentReports(ctx context.Context, studentID uint) Result {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/reports/student/%d", studentID), nil, nil)
}

// Reports lists all reports; empty filter fields are left out of the query
func (c *Client) Reports(ctx context.Context, f ReportFilter) Result {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Building != "" {
		q.Set("building", f.Building)
	}
	if f.Priority != "" {
		q.Set("priority", f.Priority)
	}
	return c.do(ctx, http.MethodGet, "/reports", q, nil)
}

func (c *Client) UpdateReport(ctx context.Context, id uint, req dto.UpdateReportRequest) Result {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/reports/%d", id), nil, req)
}

func (c *Client) Messages(ctx context.Context, reportID uint) Result {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/chat/%d", reportID), nil, nil)
}

func (c *Client) SendMessage(ctx context.Context, reportID uint, req dto.PostMessageRequest) Result {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/chat/%d", reportID), nil, req)
}

func (c *Client) Users(ctx context.Context, search string) Result {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	return c.do(ctx, http.MethodGet, "/users", q, nil)
}

func (c *Client) StudentStats(ctx context.Context, studentID uint) Result {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/stats/student/%d", studentID), nil, nil)
}

func (c *Client) AdminStats(ctx context.Context) Result {
	return c.do(ctx, http.MethodGet, "/stats/admin", nil, nil)
}
