// Package gemini implements the inference.Generator interface against the
// Google Generative Language REST API.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/rgkonda/englishtutor/internal/logger"
)

type Client struct {
	httpClient       *resty.Client
	apiKey           string
	model            string
	maxRetryAttempts uint
	log              *logger.Logger
}

func NewClient(apiKey, model string, retryAttempts uint, timeout time.Duration, log *logger.Logger) *Client {
	client := resty.New()
	client.SetBaseURL("https://generativelanguage.googleapis.com/v1beta")
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(timeout)

	if log == nil {
		log = logger.NewNop()
	}

	return &Client{
		httpClient:       client,
		apiKey:           apiKey,
		model:            model,
		maxRetryAttempts: retryAttempts,
		log:              log,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// GenerateText implements the inference.Generator interface
func (client *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	var result string
	if err := retry.Do(
		func() error {
			response, err := client.generateContent(ctx, prompt)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}
	return result, nil
}

func (client *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	requestBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", client.apiKey).
		SetBody(requestBody).
		SetResult(&generateContentResponse{}).
		Post("/models/" + client.model + ":generateContent")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*generateContentResponse)
	if responseBody == nil || len(responseBody.Candidates) == 0 {
		return "", fmt.Errorf("empty response body or candidates: %s", response.String())
	}

	parts := responseBody.Candidates[0].Content.Parts
	if len(parts) == 0 || strings.TrimSpace(parts[0].Text) == "" {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}

	client.log.Debugw("gemini response content",
		"model", client.model,
		"finishReason", responseBody.Candidates[0].FinishReason,
	)

	return parts[0].Text, nil
}
