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
	"strings"
)

var (
	// ErrSignInRequired is returned by operations needing an active session.
	ErrSignInRequired = errors.New("로그인이 필요합니다.")
	// ErrEmailTaken mirrors the server's signup conflict for emails.
	ErrEmailTaken = errors.New("이미 사용 중인 이메일입니다.")
	// ErrNicknameTaken mirrors the server's conflict for nicknames.
	ErrNicknameTaken = errors.New("이미 사용 중인 별명입니다.")
	// ErrInvalidCredentials covers every denied sign-in uniformly.
	ErrInvalidCredentials = errors.New("이메일 또는 비밀번호가 올바르지 않습니다.")
)

// APIError is a non-2xx server response with its message decoded.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned %d", e.Code)
}

// Client talks to the Gratitude Grove API and keeps the session snapshot
// plus a local feed cache.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session

	feedCache []FeedItem
}

// New builds a client against baseURL (e.g. "http://localhost:2333/api/v1").
func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		session: session,
	}
}

// Session exposes the snapshot store, mainly for the CLI's whoami.
func (c *Client) Session() *Session { return c.session }

// EmailAvailable is a fail-closed pre-check: any transport or server error
// reports the email as unavailable. The database unique index is the real
// authority at signup time.
func (c *Client) EmailAvailable(ctx context.Context, email string) bool {
	var out struct {
		Available bool `json:"available"`
	}
	err := c.do(ctx, http.MethodGet, "/auth/check-email?email="+queryEscape(email), nil, &out)
	return err == nil && out.Available
}

// NicknameAvailable is the fail-closed pre-check for nicknames.
func (c *Client) NicknameAvailable(ctx context.Context, nickname string) bool {
	var out struct {
		Available bool `json:"available"`
	}
	err := c.do(ctx, http.MethodGet, "/auth/check-nickname?nickname="+queryEscape(nickname), nil, &out)
	return err == nil && out.Available
}

// SignUp registers and signs in. Availability is checked first so most
// conflicts are reported without a signup attempt; the signup call itself
// can still lose the race, and its 409 surfaces the same way.
func (c *Client) SignUp(ctx context.Context, email, password, nickname string) (*Profile, error) {
	if !c.EmailAvailable(ctx, email) {
		return nil, ErrEmailTaken
	}
	if !c.NicknameAvailable(ctx, nickname) {
		return nil, ErrNicknameTaken
	}

	body := map[string]string{"email": email, "password": password, "nickname": nickname}
	var out struct {
		Profile Profile `json:"profile"`
		Token   string  `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", body, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict {
			return nil, errors.New(apiErr.Message)
		}
		return nil, err
	}

	if err := c.session.SetActive(out.Profile, out.Token); err != nil {
		return nil, err
	}
	return c.session.Profile(), nil
}

// SignIn authenticates and persists the session snapshot. Every denial is
// normalized to ErrInvalidCredentials.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Profile, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Profile Profile `json:"profile"`
		Token   string  `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/signin", body, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if out.Token == "" {
		return nil, ErrInvalidCredentials
	}

	if err := c.session.SetActive(out.Profile, out.Token); err != nil {
		return nil, err
	}
	return c.session.Profile(), nil
}

// SignOut revokes the server session and clears the local snapshot. The
// snapshot is cleared even when the revoke call fails: a half-dead session
// on disk is worse than an orphaned session row.
func (c *Client) SignOut(ctx context.Context) error {
	if !c.session.Active() {
		return ErrSignInRequired
	}
	remoteErr := c.do(ctx, http.MethodPost, "/auth/signout", nil, nil)
	if err := c.session.Clear(); err != nil {
		return err
	}
	return remoteErr
}

// UpdateNickname changes the nickname on the server and refreshes the
// snapshot. Keeping the current nickname is accepted without a pre-check.
func (c *Client) UpdateNickname(ctx context.Context, nickname string) (*Profile, error) {
	if !c.session.Active() {
		return nil, ErrSignInRequired
	}
	if p := c.session.Profile(); p.Nickname != nickname && !c.NicknameAvailable(ctx, nickname) {
		return nil, ErrNicknameTaken
	}

	var out Profile
	body := map[string]string{"nickname": nickname}
	if err := c.do(ctx, http.MethodPatch, "/auth/nickname", body, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict {
			return nil, ErrNicknameTaken
		}
		return nil, err
	}

	if err := c.session.SetActive(out, c.session.Token()); err != nil {
		return nil, err
	}
	return c.session.Profile(), nil
}

// do issues one API request, attaching the bearer token when a session is
// active, and decodes either the response body or the error envelope.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var envelope struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &APIError{Code: resp.StatusCode, Message: envelope.Message}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func queryEscape(s string) string { return url.QueryEscape(s) }
