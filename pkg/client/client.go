package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const DefaultTimeout = 10 * time.Second

type API interface {
	ListProfiles(ctx context.Context) ([]Profile, error)
	CreateProfile(ctx context.Context, name, timezone string) (*Profile, error)
	UpdateProfileTimezone(ctx context.Context, profileID uuid.UUID, timezone string) (*Profile, error)
	// ListEventsForProfile tz 為空時不附帶 wall clock 檢視
	ListEventsForProfile(ctx context.Context, profileID uuid.UUID, tz string) ([]Event, error)
	CreateEvent(ctx context.Context, in CreateEventInput) (*Event, error)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, in UpdateEventInput) (*Event, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
}

// APIError 非 2xx 回應；Message 取自 {"error": "..."}
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status=%d", e.StatusCode)
	}
	return e.Message
}

type HTTPClient struct {
	http    *http.Client
	baseURL string
}

// NewHTTPClient baseURL 例如 http://localhost:5000
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, errors.Wrap(err, "invalid base url")
	}
	return &HTTPClient{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (c *HTTPClient) ListProfiles(ctx context.Context) ([]Profile, error) {
	var out []Profile
	if err := c.doJSON(ctx, http.MethodGet, "/api/profiles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateProfile(ctx context.Context, name, timezone string) (*Profile, error) {
	in := map[string]string{"name": name, "timezone": timezone}
	var out Profile
	if err := c.doJSON(ctx, http.MethodPost, "/api/profiles", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProfileTimezone(ctx context.Context, profileID uuid.UUID, timezone string) (*Profile, error) {
	in := map[string]string{"timezone": timezone}
	var out Profile
	if err := c.doJSON(ctx, http.MethodPatch, "/api/profiles/"+profileID.String()+"/timezone", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListEventsForProfile(ctx context.Context, profileID uuid.UUID, tz string) ([]Event, error) {
	path := "/api/events/profile/" + profileID.String()
	if tz != "" {
		path += "?tz=" + url.QueryEscape(tz)
	}
	var out []Event
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, in CreateEventInput) (*Event, error) {
	var out Event
	if err := c.doJSON(ctx, http.MethodPost, "/api/events", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, eventID uuid.UUID, in UpdateEventInput) (*Event, error) {
	var out Event
	if err := c.doJSON(ctx, http.MethodPatch, "/api/events/"+eventID.String(), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/events/"+eventID.String(), nil, nil)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "marshal request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errors.Wrap(err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &payload) == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return errors.Wrap(json.Unmarshal(raw, out), "decode response")
}
