package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"wrestler_elo/internal/app"
	"wrestler_elo/internal/config"
	"wrestler_elo/internal/retry"

	"github.com/rs/zerolog/log"
)

// CurrentWrestlersElosQuery selects every wrestler's current, maximum and minimum Elo
const CurrentWrestlersElosQuery = `query getCurrentWrestlersElos {
  currentWrestlerStats {
    currentWrestlerStat {
      name
      brand
      currentElo { elo date }
      maxElo { elo date }
      minElo { elo date }
    }
  }
}`

type Client struct {
	url          string
	client       *http.Client
	retry        *retry.Policy
	apiCallCount int64
	apiCallMutex sync.Mutex
}

func NewClient(url string) *Client {
	return NewClientWithRetry(url, config.DefaultResilienceConfig.GraphQLRequest)
}

// NewClientWithRetry creates a client using the given retry profile
func NewClientWithRetry(url string, retryConfig config.RetryConfig) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		retry: retry.NewPolicy(retryConfig),
	}
}

// IncrementAPICall safely increments the API call counter
func (c *Client) IncrementAPICall() {
	c.apiCallMutex.Lock()
	c.apiCallCount++
	c.apiCallMutex.Unlock()
}

// GetAPICallCount returns the number of HTTP requests sent, retries included
func (c *Client) GetAPICallCount() int64 {
	c.apiCallMutex.Lock()
	defer c.apiCallMutex.Unlock()
	return c.apiCallCount
}

type request struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName,omitempty"`
}

type response struct {
	Data   *app.CurrentWrestlerStatsResponse `json:"data"`
	Errors []Error                           `json:"errors"`
}

// Error is a single entry of a GraphQL errors array
type Error struct {
	Message string   `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// ResponseError reports GraphQL errors returned with a 200 status
type ResponseError struct {
	Errors []Error
}

func (e *ResponseError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, gqlErr := range e.Errors {
		messages = append(messages, gqlErr.Message)
	}
	return "graphql errors: " + strings.Join(messages, "; ")
}

// makeAPIRequest creates and executes the HTTP POST for a query
func (c *Client) makeAPIRequest(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Debug().
			Err(err).
			Str("url", c.url).
			Msg("GraphQL request failed")
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	c.IncrementAPICall()
	return resp, nil
}

// handleAPIResponse processes the HTTP response and returns the body bytes.
// Client errors are permanent; server errors may be retried.
func (c *Client) handleAPIResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("GraphQL request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, retry.Permanent(err)
		}
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// GetCurrentWrestlerStats runs the current wrestler Elo query
func (c *Client) GetCurrentWrestlerStats(ctx context.Context) (*app.CurrentWrestlerStatsResponse, error) {
	body, err := json.Marshal(request{
		Query:         CurrentWrestlersElosQuery,
		OperationName: "getCurrentWrestlersElos",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	log.Debug().Str("url", c.url).Msg("Fetching current wrestler stats")

	var result *app.CurrentWrestlerStatsResponse
	err = c.retry.Execute(ctx, "GetCurrentWrestlerStats", func(ctx context.Context) error {
		resp, err := c.makeAPIRequest(ctx, body)
		if err != nil {
			return err
		}

		respBody, err := c.handleAPIResponse(resp)
		if err != nil {
			return err
		}

		result, err = decodeResponse(respBody)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("wrestlers", len(result.Stats())).
		Msg("Successfully fetched current wrestler stats")

	return result, nil
}

// decodeResponse unpacks a GraphQL envelope. Decoding failures and GraphQL
// errors are permanent.
func decodeResponse(body []byte) (*app.CurrentWrestlerStatsResponse, error) {
	var envelope response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, retry.Permanent(fmt.Errorf("failed to decode stats response: %w", err))
	}

	if len(envelope.Errors) > 0 {
		return nil, retry.Permanent(&ResponseError{Errors: envelope.Errors})
	}

	if envelope.Data == nil {
		return nil, retry.Permanent(fmt.Errorf("stats response has no data"))
	}

	return envelope.Data, nil
}
