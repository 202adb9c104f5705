package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/common"
)

const defaultTimeout = 30 * time.Second

// HTTPClient implements Client against https://{domain}.bulgakov.app.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewHTTPClient returns a client bound to baseURL, e.g.
// "https://ithub.bulgakov.app". The token is set by SignIn.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// signInResponse is the sign-in payload. The api also wraps errors into
// the same shape, with message set and token empty.
type signInResponse struct {
	Token string `json:"token"`
	Data  struct {
		ID int64 `json:"id"`
	} `json:"data"`
	Message string `json:"message"`
}

// envelope wraps every data endpoint response.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *HTTPClient) SignIn(ctx context.Context, login, password string) (*Session, error) {
	form := url.Values{
		"login":    {login},
		"password": {password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v2/auth/sign-in", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: sign-in: %v", common.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: sign-in: read body: %v", common.ErrTransport, err)
	}

	var sr signInResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("%w: malformed sign-in response", common.ErrAuth)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", common.ErrAuth, sr.Message)
	}
	if sr.Token == "" || sr.Data.ID == 0 {
		return nil, fmt.Errorf("%w: sign-in response missing token or user id", common.ErrAuth)
	}

	c.token = sr.Token
	return &Session{Token: sr.Token, UserID: sr.Data.ID}, nil
}

func (c *HTTPClient) SubjectsPage(ctx context.Context, userID int64, page int) (*SubjectsPage, error) {
	path := fmt.Sprintf("/api/v2/users/%d/subjects?role=student&page=%d", userID, page)
	data, err := c.getData(ctx, path, "subjects")
	if err != nil {
		return nil, err
	}

	var sp SubjectsPage
	if err := json.Unmarshal(data, &sp); err != nil {
		return nil, fmt.Errorf("%w: subjects page %d: %v", common.ErrFetch, page, err)
	}
	return &sp, nil
}

func (c *HTTPClient) Subject(ctx context.Context, id int64) (*Subject, error) {
	data, err := c.getData(ctx, fmt.Sprintf("/api/v2/subjects/%d", id), "subject")
	if err != nil {
		return nil, err
	}

	var s Subject
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: subject %d: %v", common.ErrFetch, id, err)
	}
	s.Raw = data
	return &s, nil
}

func (c *HTTPClient) Step(ctx context.Context, id int64) (*Step, error) {
	data, err := c.getData(ctx, fmt.Sprintf("/api/v2/lessons/%d", id), "step")
	if err != nil {
		return nil, err
	}

	var s Step
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: step %d: %v", common.ErrFetch, id, err)
	}
	s.Raw = data
	return &s, nil
}

func (c *HTTPClient) File(ctx context.Context, link string) ([]byte, error) {
	// Relative links live on the platform origin and need the session
	// token; absolute links point at external storage and must not see it.
	platformLink := !strings.HasPrefix(link, "http")
	if platformLink {
		link = c.baseURL + "/" + strings.TrimLeft(link, "/")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("build file request: %w", err)
	}
	if platformLink {
		c.authorize(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: file %s: %v", common.ErrTransport, link, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: file %s: status %s", common.ErrFetch, link, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: file %s: read body: %v", common.ErrTransport, link, err)
	}
	return body, nil
}

// getData performs an authorized GET against a data endpoint and unwraps
// the response envelope. what names the resource for error messages.
func (c *HTTPClient) getData(ctx context.Context, path, what string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", what, err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrTransport, what, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read body: %v", common.ErrTransport, what, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %s: malformed response", common.ErrFetch, what)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: %s", common.ErrFetch, what, env.Message)
	}
	return env.Data, nil
}

func (c *HTTPClient) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
