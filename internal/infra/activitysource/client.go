package activitysource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
	"github.com/arlebowski/Tiny-Time-sub003/internal/observability/logging"
	"github.com/arlebowski/Tiny-Time-sub003/internal/observability/tracing"
)

// Client fetches activity records from the core Tiny Time API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: newHTTPClient(baseURL),
	}
}

func (c *Client) ListFeedings(ctx context.Context, start, end time.Time) ([]domain.Feeding, error) {
	var resp listResponse[feedingRecord]
	if err := c.getRange(ctx, "/api/v1/feedings", start, end, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.Feeding, 0, len(resp.Items))
	for _, r := range resp.Items {
		out = append(out, feedingToDomain(r))
	}
	return out, nil
}

func (c *Client) ListNursingSessions(ctx context.Context, start, end time.Time) ([]domain.NursingSession, error) {
	var resp listResponse[nursingSessionRecord]
	if err := c.getRange(ctx, "/api/v1/nursing-sessions", start, end, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.NursingSession, 0, len(resp.Items))
	for _, r := range resp.Items {
		out = append(out, nursingToDomain(r))
	}
	return out, nil
}

func (c *Client) ListSolidsSessions(ctx context.Context, start, end time.Time) ([]domain.SolidsSession, error) {
	var resp listResponse[solidsSessionRecord]
	if err := c.getRange(ctx, "/api/v1/solids-sessions", start, end, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.SolidsSession, 0, len(resp.Items))
	for _, r := range resp.Items {
		out = append(out, solidsToDomain(r))
	}
	return out, nil
}

func (c *Client) ListSleepSessions(ctx context.Context, start, end time.Time) ([]domain.SleepSession, error) {
	var resp listResponse[sleepSessionRecord]
	if err := c.getRange(ctx, "/api/v1/sleep-sessions", start, end, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.SleepSession, 0, len(resp.Items))
	for _, r := range resp.Items {
		out = append(out, sleepToDomain(r))
	}
	return out, nil
}

func (c *Client) GetKidProfile(ctx context.Context) (*domain.KidProfile, error) {
	var record kidProfileRecord
	if err := c.get(ctx, "/api/v1/kid", nil, &record); err != nil {
		return nil, err
	}
	if record.ID == "" {
		return nil, domain.ErrKidNotFound
	}
	return kidToDomain(record), nil
}

// getRange queries a list endpoint with an epoch-millisecond window, the
// unit the core API stores timestamps in.
func (c *Client) getRange(ctx context.Context, path string, start, end time.Time, out any) error {
	q := url.Values{}
	q.Set("start", strconv.FormatInt(start.UnixMilli(), 10))
	q.Set("end", strconv.FormatInt(end.UnixMilli(), 10))
	return c.get(ctx, path, q, out)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	ctx, span := tracing.StartExternalAPISpan(ctx, pathOperation(path), u.String())
	defer span.End()

	slog.DebugContext(ctx, "fetching from Tiny Time API",
		slog.String("url", u.String()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "failed to send request to Tiny Time API",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		span.RecordError(err)
		slog.ErrorContext(ctx, "unexpected status code from Tiny Time API",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// pathOperation names the client span after the endpoint's last segment.
func pathOperation(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Ping checks upstream reachability for readiness probes.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
