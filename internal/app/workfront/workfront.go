package workfront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/wfint/cloudinary-sync/internal/app/models"
	"github.com/wfint/cloudinary-sync/internal/config"
	"github.com/wfint/cloudinary-sync/internal/utils/errs"
	"github.com/wfint/cloudinary-sync/internal/utils/logger"
	"go.uber.org/zap"
)

// Client talks to the Workfront REST API. Search and update calls carry
// the API key header; document downloads authenticate with a session ID.
type Client struct {
	apiBase      string
	downloadBase string
	apiKey       string
	client       *http.Client
}

func CreateClient(cfg *config.Config) *Client {
	return &Client{
		apiBase:      cfg.WorkfrontAPIBase(),
		downloadBase: cfg.WorkfrontBaseURL,
		apiKey:       cfg.WorkfrontAPIKey,
		client:       &http.Client{},
	}
}

func (c *Client) setAPIHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apiKey", c.apiKey)
}

func (c *Client) SearchTasks(ctx context.Context, status string, limit int, includeDocuments bool) ([]*models.Task, error) {
	const funcName = "Client.SearchTasks"

	fields := "fields=*"
	if includeDocuments {
		fields = "fields=*,documents"
	}
	reqURL := fmt.Sprintf("%s/TASK/search?%s&isComplete=false&$$LIMIT=%d&status_Sort=desc&status=%s",
		c.apiBase, fields, limit, url.QueryEscape(status))

	logger.Debug("searching tasks",
		zap.String("function", funcName),
		zap.String("status", status),
		zap.Int("limit", limit),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrRemoteRequest, err)
	}
	c.setAPIHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("task search request failed",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", errs.ErrRemoteRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("task search returned error status",
			zap.String("function", funcName),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: search returned status %d", errs.ErrRemoteRequest, resp.StatusCode)
	}

	var payload struct {
		Data []*models.Task `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %v", errs.ErrRemoteRequest, err)
	}

	logger.Info("task search completed",
		zap.String("function", funcName),
		zap.String("status", status),
		zap.Int("found", len(payload.Data)),
	)

	return payload.Data, nil
}

func (c *Client) DownloadDocument(ctx context.Context, documentID string, sessionID string) ([]byte, error) {
	const funcName = "Client.DownloadDocument"

	reqURL := fmt.Sprintf("%s/document/download?ID=%s", c.downloadBase, url.QueryEscape(documentID))

	logger.Debug("downloading document",
		zap.String("function", funcName),
		zap.String("document_id", documentID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrRemoteRequest, err)
	}
	req.Header.Set("sessionID", sessionID)

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("document download failed",
			zap.String("function", funcName),
			zap.String("document_id", documentID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", errs.ErrRemoteRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("document download returned error status",
			zap.String("function", funcName),
			zap.String("document_id", documentID),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: download returned status %d", errs.ErrRemoteRequest, resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read document body: %v", errs.ErrRemoteRequest, err)
	}

	logger.Info("document downloaded",
		zap.String("function", funcName),
		zap.String("document_id", documentID),
		zap.Int("size_bytes", len(content)),
	)

	return content, nil
}

func (c *Client) UpdateDocument(ctx context.Context, documentID string, description string) (int, error) {
	const funcName = "Client.UpdateDocument"
	logger.Debug("updating document description",
		zap.String("function", funcName),
		zap.String("document_id", documentID),
	)

	statusCode, err := c.put(ctx, fmt.Sprintf("%s/document/%s", c.apiBase, url.PathEscape(documentID)),
		map[string]string{"description": description})
	if err != nil {
		logger.Error("failed to update document",
			zap.String("function", funcName),
			zap.String("document_id", documentID),
			zap.Error(err),
		)
		return statusCode, err
	}

	logger.Info("document updated successfully",
		zap.String("function", funcName),
		zap.String("document_id", documentID),
	)

	return statusCode, nil
}

func (c *Client) UpdateTaskStatus(ctx context.Context, taskID string, status string) (int, error) {
	const funcName = "Client.UpdateTaskStatus"
	logger.Debug("updating task status",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
		zap.String("new_status", status),
	)

	statusCode, err := c.put(ctx, fmt.Sprintf("%s/task/%s", c.apiBase, url.PathEscape(taskID)),
		map[string]string{"status": status})
	if err != nil {
		logger.Error("failed to update task status",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
			zap.String("new_status", status),
			zap.Error(err),
		)
		return statusCode, err
	}

	logger.Info("task status updated successfully",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
		zap.String("new_status", status),
	)

	return statusCode, nil
}

func (c *Client) put(ctx context.Context, reqURL string, body map[string]string) (int, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrRemoteRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(encoded))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrRemoteRequest, err)
	}
	c.setAPIHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrRemoteRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("%w: update returned status %d", errs.ErrRemoteRequest, resp.StatusCode)
	}

	return resp.StatusCode, nil
}
