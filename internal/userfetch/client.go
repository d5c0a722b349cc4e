// Package userfetch pulls random identities from a randomuser.me style API.
package userfetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pwseed/pwseed-go/internal/model"
)

// DefaultURL is the public random user directory.
const DefaultURL = "https://randomuser.me/api/"

// maxBodySize bounds the decoded response.
const maxBodySize = 1 << 20

var (
	ErrNetwork = errors.New("user fetch: network error")
	ErrParse   = errors.New("user fetch: parse error")
)

type apiResponse struct {
	Results []struct {
		Name struct {
			First string `json:"first"`
			Last  string `json:"last"`
		} `json:"name"`
		Email string `json:"email"`
	} `json:"results"`
}

// Client fetches one identity per call. It does not retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. An empty baseURL selects DefaultURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchUser returns the first result's full name and email.
func (c *Client) FetchUser(ctx context.Context) (model.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.Identity{}, fmt.Errorf("%w: unexpected status %d", ErrNetwork, resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return toIdentity(body)
}

func toIdentity(body apiResponse) (model.Identity, error) {
	if len(body.Results) == 0 {
		return model.Identity{}, fmt.Errorf("%w: no results", ErrParse)
	}

	person := body.Results[0]
	first := strings.TrimSpace(person.Name.First)
	last := strings.TrimSpace(person.Name.Last)
	email := strings.TrimSpace(person.Email)

	if first == "" && last == "" {
		return model.Identity{}, fmt.Errorf("%w: missing name", ErrParse)
	}
	if email == "" {
		return model.Identity{}, fmt.Errorf("%w: missing email", ErrParse)
	}

	return model.Identity{
		FullName: strings.TrimSpace(first + " " + last),
		Email:    email,
	}, nil
}
