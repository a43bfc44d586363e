// Package books talks to the external books service that owns user
// identities, author profiles and logins.
package books

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnexpectedStatus is returned when the books service answers with a
// non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected status from books service")

// ErrBodyTooLarge is returned when a login answer exceeds maxLoginBody.
var ErrBodyTooLarge = errors.New("books service response too large")

const maxLoginBody = 1 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type profile struct {
	Name string `json:"name"`
}

// UserName fetches the display name of a books user.
func (c *Client) UserName(ctx context.Context, id int64) (string, error) {
	return c.name(ctx, "books.UserName", fmt.Sprintf("/api/user/%d", id))
}

// AuthorName fetches the name of a books author.
func (c *Client) AuthorName(ctx context.Context, id int64) (string, error) {
	return c.name(ctx, "books.AuthorName", fmt.Sprintf("/api/author/%d", id))
}

func (c *Client) name(ctx context.Context, op, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: %w: %d", op, ErrUnexpectedStatus, res.StatusCode)
	}

	var p profile
	if err = json.NewDecoder(res.Body).Decode(&p); err != nil {
		return "", fmt.Errorf("%s: decode profile: %w", op, err)
	}
	if p.Name == "" {
		return "", fmt.Errorf("%s: profile has no name", op)
	}

	return p.Name, nil
}

// LoginResult is the books service answer, passed through untouched.
type LoginResult struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (c *Client) Login(ctx context.Context, credentials io.Reader) (*LoginResult, error) {
	const op = "books.Login"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login/", credentials)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxLoginBody+1))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}
	if len(body) > maxLoginBody {
		return nil, fmt.Errorf("%s: %w", op, ErrBodyTooLarge)
	}

	return &LoginResult{
		StatusCode:  res.StatusCode,
		ContentType: res.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
