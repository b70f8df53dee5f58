package user

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Repository defines methods for loading generated users from their source.
type Repository interface {
	FetchBatch(ctx context.Context, size int) ([]User, error)
}

type httpRepository struct {
	client  *http.Client
	baseURL string
}

// NewHTTPRepository creates a Repository backed by the random user HTTP API.
// baseURL is the endpoint without the size query, e.g.
// https://random-data-api.com/api/users/random_user.
// A nil client falls back to http.DefaultClient.
func NewHTTPRepository(client *http.Client, baseURL string) Repository {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpRepository{
		client:  client,
		baseURL: baseURL,
	}
}

func (r *httpRepository) FetchBatch(ctx context.Context, size int) ([]User, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}

	u, err := url.Parse(r.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endpoint: %v", ErrFetchFailed, err)
	}
	q := u.Query()
	q.Set("size", strconv.Itoa(size))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}

	users, err := decodeUsers(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	return users, nil
}

// decodeUsers accepts a JSON array of users, a single user object
// (what the API sends for size=1), or null. Null entries inside the
// array make the whole batch unusable.
func decodeUsers(body []byte) ([]User, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	switch trimmed[0] {
	case '[':
		var entries []*User
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("failed to decode users: %w", err)
		}
		users := make([]User, 0, len(entries))
		for i, u := range entries {
			// A null entry has no user to show.
			if u == nil {
				return nil, fmt.Errorf("user at position %d is null", i)
			}
			users = append(users, *u)
		}
		return users, nil
	case '{':
		var u User
		if err := json.Unmarshal(trimmed, &u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		return []User{u}, nil
	case 'n':
		var users []User
		if err := json.Unmarshal(trimmed, &users); err != nil {
			return nil, fmt.Errorf("failed to decode users: %w", err)
		}
		return users, nil
	default:
		return nil, fmt.Errorf("unexpected response body starting with %q", trimmed[0])
	}
}
