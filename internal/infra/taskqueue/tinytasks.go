//go:build !gcloud

package taskqueue

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"
)

type TinyTasksClient struct {
	baseURL    string
	queueName  string
	httpClient *http.Client
	maxRetries int
}

func NewTinyTasksClient(baseURL, queueName string, maxRetries int) *TinyTasksClient {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &TinyTasksClient{
		baseURL:   baseURL,
		queueName: queueName,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: maxRetries,
	}
}

func (c *TinyTasksClient) RegisterReminder(ctx context.Context, task *ReminderTask) (*TaskResponse, error) {
	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder task: %w", err)
	}

	encodedBody := base64.StdEncoding.EncodeToString(payload)

	taskReq := TinyTasksRequest{
		Task: TinyTask{
			HTTPRequest: TinyTasksHTTPRequest{
				Body: encodedBody,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
			},
		},
	}

	if !task.ScheduleAt.IsZero() {
		taskReq.Task.ScheduleTime = task.ScheduleAt.Format(time.RFC3339)
	}

	reqBody, err := json.Marshal(taskReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tiny tasks request: %w", err)
	}

	url := fmt.Sprintf("%s/tasks", c.baseURL)
	if c.queueName != "" && c.queueName != "default" {
		url = fmt.Sprintf("%s/tasks/%s", c.baseURL, c.queueName)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.Debug("retrying reminder registration",
				slog.String("item_id", task.ItemID),
				slog.String("date_key", task.DateKey),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := c.doRequest(ctx, url, reqBody, task.ItemID, task.DateKey)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	slog.Error("all retries exhausted for reminder registration",
		slog.String("item_id", task.ItemID),
		slog.String("date_key", task.DateKey),
		slog.Int("max_retries", c.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return nil, fmt.Errorf("failed to register task after %d retries: %w", c.maxRetries, lastErr)
}

func (c *TinyTasksClient) doRequest(ctx context.Context, url string, reqBody []byte, itemID, dateKey string) (*TaskResponse, error) {
	slog.Debug("registering reminder to Tiny Tasks",
		slog.String("url", url),
		slog.String("item_id", itemID),
		slog.String("date_key", dateKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("failed to send request to Tiny Tasks",
			slog.String("item_id", itemID),
			slog.String("date_key", dateKey),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.Warn("unexpected status code from Tiny Tasks",
			slog.String("item_id", itemID),
			slog.String("date_key", dateKey),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var taskResp TinyTasksResponse
	if err := json.NewDecoder(resp.Body).Decode(&taskResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	scheduleTime, _ := time.Parse(time.RFC3339, taskResp.ScheduleTime)
	createTime, _ := time.Parse(time.RFC3339, taskResp.CreateTime)

	slog.Info("reminder task registered to Tiny Tasks",
		slog.String("task_name", taskResp.Name),
		slog.String("item_id", itemID),
		slog.String("date_key", dateKey),
	)

	return &TaskResponse{
		Name:         taskResp.Name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

func (c *TinyTasksClient) DeleteTask(ctx context.Context, taskID string) error {
	url := fmt.Sprintf("%s/tasks/%s", c.baseURL, taskID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		slog.Info("task not found in Tiny Tasks (may have been processed)",
			slog.String("task_id", taskID),
		)
		return nil
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	slog.Info("task deleted from Tiny Tasks",
		slog.String("task_id", taskID),
	)
	return nil
}
