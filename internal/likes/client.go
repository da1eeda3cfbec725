package likes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrUpstream wraps any non-2xx answer from the likes API. The relay has no
// retry or circuit breaking; upstream failures surface directly.
var ErrUpstream = errors.New("likes API request failed")

// Result is the normalized response of the external likes-granting API.
// Field names follow its JSON contract.
type Result struct {
	PlayerNickname     string `json:"PlayerNickname"`
	LikesBefore        int    `json:"LikesBefore"`
	LikesAfter         int    `json:"LikesAfter"`
	LikesGiven         int    `json:"LikesGivenByAPI"`
	SuccessfulRequests int    `json:"SuccessfulRequests"`
	TotalTokensUsed    int    `json:"TotalTokensUsed"`
	UID                string `json:"UID"`
	Status             int    `json:"status"`
}

// Client relays player IDs to the external likes API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendLikes requests likes for the given player UID. It returns the decoded
// result plus the raw response body for audit logging.
func (c *Client) SendLikes(ctx context.Context, uid string) (*Result, []byte, error) {
	reqURL := fmt.Sprintf("%s/like?uid=%s", c.baseURL, url.QueryEscape(uid))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("likes API request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, nil, fmt.Errorf("decode response: %w", err)
	}

	return &result, raw, nil
}
