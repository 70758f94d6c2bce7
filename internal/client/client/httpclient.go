package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
	}, nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.call(ctx, http.MethodPost, "/register", jsonBody(body), false, nil)
}

// Login exchanges credentials for a token pair and keeps it for later calls.
func (c *HTTPClient) Login(ctx context.Context, username, password string) error {
	form := url.Values{"username": {username}, "password": {password}}
	b := body{contentType: "application/x-www-form-urlencoded", data: []byte(form.Encode())}

	var resp tokenResponse
	if err := c.call(ctx, http.MethodPost, "/token", b, false, &resp); err != nil {
		return err
	}

	c.mu.Lock()
	c.accessToken, c.refreshToken = resp.AccessToken, resp.RefreshToken
	c.mu.Unlock()
	return nil
}

func (c *HTTPClient) Logout() {
	c.mu.Lock()
	c.accessToken, c.refreshToken = "", ""
	c.mu.Unlock()
}

func (c *HTTPClient) IsLoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken != ""
}

func (c *HTTPClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.call(ctx, http.MethodGet, "/todos/", body{}, true, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, text string) (*models.Task, error) {
	var task models.Task
	if err := c.call(ctx, http.MethodPost, "/todos/", jsonBody(map[string]string{"task": text}), true, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id int64, upd TaskUpdate) (*models.Task, error) {
	var task models.Task
	if err := c.call(ctx, http.MethodPut, taskPath(id), jsonBody(upd), true, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id int64) error {
	return c.call(ctx, http.MethodDelete, taskPath(id), body{}, true, nil)
}

func taskPath(id int64) string {
	return "/todos/" + strconv.FormatInt(id, 10)
}

type body struct {
	contentType string
	data        []byte
	err         error
}

func jsonBody(v any) body {
	data, err := json.Marshal(v)
	return body{contentType: "application/json", data: data, err: err}
}

// call performs one API request. Authenticated calls that come back 401 are
// repeated once after a successful token refresh.
func (c *HTTPClient) call(ctx context.Context, method, path string, b body, authenticated bool, out any) error {
	if b.err != nil {
		return b.err
	}

	err := c.do(ctx, method, path, b, authenticated, out)
	if !authenticated || !errors.Is(err, ErrUnauthorized) {
		return err
	}

	if refreshErr := c.refresh(ctx); refreshErr != nil {
		return err
	}
	return c.do(ctx, method, path, b, authenticated, out)
}

func (c *HTTPClient) refresh(ctx context.Context) error {
	c.mu.Lock()
	refreshToken := c.refreshToken
	c.mu.Unlock()

	if refreshToken == "" {
		return ErrUnauthorized
	}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/refresh", jsonBody(map[string]string{"refresh_token": refreshToken}), false, &resp); err != nil {
		return err
	}

	c.mu.Lock()
	c.accessToken = resp.AccessToken
	c.mu.Unlock()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, b body, authenticated bool, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if b.data != nil {
		reader = bytes.NewReader(b.data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if b.contentType != "" {
		req.Header.Set("Content-Type", b.contentType)
	}
	req.Header.Set("Accept", "application/json")
	if authenticated {
		c.mu.Lock()
		token := c.accessToken
		c.mu.Unlock()
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		_ = json.Unmarshal(data, &er)
		return &APIError{StatusCode: resp.StatusCode, Detail: er.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
