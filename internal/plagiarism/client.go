// Package plagiarism talks to the crosscheck similarity-scoring service.
// The workflow treats it as a fire-and-collect collaborator: submit a
// document, come back later for the percentage.
package plagiarism

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Checker is the surface the article service depends on.
type Checker interface {
	Submit(ctx context.Context, articleID int64, title string, fileURL string) (string, error)
	FetchScore(ctx context.Context, reportID string) (*int32, error)
}

type client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) Checker {
	return &client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type submitRequest struct {
	ArticleID int64  `json:"article_id"`
	Title     string `json:"title"`
	FileURL   string `json:"file_url"`
}

type submitResponse struct {
	ReportID string `json:"report_id"`
}

// Submit uploads the document reference for scoring and returns the report
// ID to poll later.
func (c *client) Submit(ctx context.Context, articleID int64, title string, fileURL string) (string, error) {
	body, err := json.Marshal(submitRequest{
		ArticleID: articleID,
		Title:     title,
		FileURL:   fileURL,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling submit request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/reports", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("submitting document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("crosscheck submit returned %d", resp.StatusCode)
	}

	var out submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding submit response: %w", err)
	}
	return out.ReportID, nil
}

type reportResponse struct {
	ReportID string `json:"report_id"`
	Status   string `json:"status"`
	Score    *int32 `json:"score,omitempty"`
}

// FetchScore returns the similarity percentage, or nil while the report is
// still being processed.
func (c *client) FetchScore(ctx context.Context, reportID string) (*int32, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/reports/"+reportID, nil)
	if err != nil {
		return nil, fmt.Errorf("building report request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crosscheck report returned %d", resp.StatusCode)
	}

	var out reportResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding report response: %w", err)
	}
	return out.Score, nil
}
