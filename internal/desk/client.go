// Package desk talks to a height-adjustable desk controller exposed
// over local HTTP. The controller reports the current table height;
// comparing it against the stand threshold infers posture without the
// user having to confirm anything.
package desk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/deskcoach/internal/domain"
)

// ErrDeskUnavailable indicates the desk controller is unreachable or
// returned an unusable response.
var ErrDeskUnavailable = errors.New("desk controller unavailable")

// heightResponse is the JSON body returned by the controller.
// table_height is expressed in centimeters.
type heightResponse struct {
	TableHeight *float64 `json:"table_height"`
}

// Client fetches the current desk height.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a desk controller client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// HeightMM fetches the current desk height in millimeters, retrying a
// small number of quick attempts before giving up.
func (c *Client) HeightMM(ctx context.Context) (int, error) {
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/"

	var lastErr error
	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		mm, err := c.fetch(ctx, url)
		if err == nil {
			return mm, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		if attempt < c.cfg.Retries {
			time.Sleep(500 * time.Millisecond)
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrDeskUnavailable, lastErr)
}

// InferPosture maps a height sample to a posture using the stand
// threshold: at or above means standing.
func InferPosture(heightMM, standThresholdMM int) domain.Posture {
	if heightMM >= standThresholdMM {
		return domain.PostureStanding
	}
	return domain.PostureSitting
}

func (c *Client) fetch(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building desk request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("calling desk controller: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("desk controller returned %d", resp.StatusCode)
	}

	var body heightResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decoding desk response: %w", err)
	}
	if body.TableHeight == nil {
		return 0, errors.New("missing table_height in desk response")
	}

	// Controller reports centimeters; the domain works in millimeters.
	return int(math.Round(*body.TableHeight * 10)), nil
}
