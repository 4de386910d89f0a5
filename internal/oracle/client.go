package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mailtriage/config"
	"mailtriage/pkg/circuitbreaker"
	"mailtriage/pkg/metrics"
)

// Client calls an OpenAI-compatible chat-completions endpoint and returns
// the raw completion text. It is the only component that touches the
// network; everything above it sees a prompt-in, text-out oracle.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	cb         *circuitbreaker.CircuitBreaker // 熔断器
}

func NewClient(cfg config.OracleConfig) *Client {
	// 创建熔断器，配置更严格的阈值以确保快速失败
	cbConfig := circuitbreaker.Config{
		FailureThreshold:    3,
		SuccessThreshold:    2,
		Timeout:             30 * time.Second,
		HalfOpenMaxRequests: 2,
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		cb: circuitbreaker.NewCircuitBreaker(cbConfig),
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt with deterministic sampling (temperature zero)
// and returns the reply text verbatim.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	var content string

	err := c.cb.Execute(func() error {
		start := time.Now()

		reqBody := chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "user", Content: prompt},
			},
			Temperature: 0,
		}

		b, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(b))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		latency := time.Since(start)
		if err != nil {
			metrics.RecordOracleCallLatency("error", latency)
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			metrics.RecordOracleCallLatency("auth", latency)
			return &CallError{Kind: KindAuth, Err: fmt.Errorf("oracle auth rejected: %d", resp.StatusCode)}
		case resp.StatusCode >= 500:
			metrics.RecordOracleCallLatency("5xx", latency)
			return &CallError{Kind: KindBadStatus, Err: fmt.Errorf("oracle 5xx: %d", resp.StatusCode)}
		case resp.StatusCode != http.StatusOK:
			metrics.RecordOracleCallLatency(fmt.Sprintf("%d", resp.StatusCode), latency)
			return &CallError{Kind: KindBadStatus, Err: fmt.Errorf("oracle error: %d", resp.StatusCode)}
		}

		var parsed chatResponse
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			metrics.RecordOracleCallLatency("malformed", latency)
			return &CallError{Kind: KindMalformed, Err: err}
		}
		if len(parsed.Choices) == 0 {
			metrics.RecordOracleCallLatency("malformed", latency)
			return &CallError{Kind: KindMalformed, Err: fmt.Errorf("oracle returned no choices")}
		}

		metrics.RecordOracleCallLatency("success", latency)
		content = parsed.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}

	return content, nil
}
