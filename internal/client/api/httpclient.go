package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/blogit-app/blogit-cli/internal/client/models"
)

// HTTPClient is the JSON-over-HTTP implementation of Client.
//
// Every outbound request passes through do(), which attaches the current
// bearer token (if any) and a fresh X-Request-Id. The underlying
// http.Client carries no timeout: pending operations complete or fail on
// their own network timeline, and cancellation belongs to the caller's
// context.
type HTTPClient struct {
	baseURL    string
	routes     Routes
	tokens     TokenSource
	httpClient *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the backend at baseURL. tokens may be
// nil, in which case every request is sent unauthenticated.
func NewHTTPClient(baseURL string, routes Routes, tokens TokenSource) *HTTPClient {
	if tokens == nil {
		tokens = TokenSourceFunc(func(context.Context) string { return "" })
	}
	return &HTTPClient{
		baseURL:    baseURL,
		routes:     routes,
		tokens:     tokens,
		httpClient: &http.Client{},
	}
}

// errorBody is the shape backends use for failure messages.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do runs one JSON round-trip: marshal body (if any), send, map non-2xx
// responses through classify, and decode the response into out (if any).
// An undecodable success body is reported as a KindServer error.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if token := c.tokens.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		data, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(data, &eb)
		msg := eb.Message
		if msg == "" {
			msg = eb.Error
		}
		return classify(resp.StatusCode, msg)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return serverError(resp.StatusCode, fmt.Sprintf("undecodable response body: %v", err))
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, usernameOrEmail, password string) (*models.LoginResponse, error) {
	req := models.LoginRequest{UsernameOrEmail: usernameOrEmail, Password: password}
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, c.routes.login(), req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, serverError(http.StatusOK, "login response missing token")
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	var resp models.RegisterResponse
	if err := c.do(ctx, http.MethodPost, c.routes.register(), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	var resp models.UserProfile
	if err := c.do(ctx, http.MethodGet, c.routes.me(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListBlogs(ctx context.Context, category string) ([]models.BlogSummary, error) {
	path := c.routes.blogs()
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var resp []models.BlogSummary
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) GetBlog(ctx context.Context, id int64) (*models.BlogDetail, error) {
	var resp models.BlogDetail
	if err := c.do(ctx, http.MethodGet, c.routes.blog(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CreateBlog(ctx context.Context, payload models.BlogPayload) (*models.BlogDetail, error) {
	var resp models.BlogDetail
	if err := c.do(ctx, http.MethodPost, c.routes.blogs(), payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UpdateBlog(ctx context.Context, id int64, payload models.BlogPayload) (*models.BlogDetail, error) {
	var resp models.BlogDetail
	if err := c.do(ctx, http.MethodPut, c.routes.blog(id), payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) DeleteBlog(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.routes.blog(id), nil, nil)
}

func (c *HTTPClient) ToggleLike(ctx context.Context, id int64) (*models.LikeState, error) {
	var resp models.LikeState
	if err := c.do(ctx, http.MethodPost, c.routes.blogLike(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, id int64, content string) (*models.Comment, error) {
	req := models.CommentPayload{Content: content}
	var resp models.Comment
	if err := c.do(ctx, http.MethodPost, c.routes.blogComments(id), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetUserProfile(ctx context.Context, id int64) (*models.UserProfile, error) {
	var resp models.UserProfile
	if err := c.do(ctx, http.MethodGet, c.routes.user(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UpdateUserProfile(ctx context.Context, id int64, payload models.ProfilePayload) (*models.UserProfile, error) {
	var resp models.UserProfile
	if err := c.do(ctx, http.MethodPut, c.routes.user(id), payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
