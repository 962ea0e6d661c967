package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the Supabase GoTrue auth endpoints. Table access goes
// straight to Postgres through pgx, so only the auth surface lives here.
type Client struct {
	authURL    string
	anonKey    string
	httpClient *http.Client
}

func NewClient(projectURL, anonKey string) (*Client, error) {
	if projectURL == "" {
		return nil, fmt.Errorf("supabase project URL is required")
	}
	if anonKey == "" {
		return nil, fmt.Errorf("supabase anon key is required")
	}

	baseURL := strings.TrimRight(projectURL, "/")

	return &Client{
		authURL: baseURL + "/auth/v1",
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// User is the identity object GoTrue returns for a valid access token.
type User struct {
	ID           string         `json:"id"`
	Aud          string         `json:"aud,omitempty"`
	Role         string         `json:"role,omitempty"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone,omitempty"`
	ConfirmedAt  string         `json:"confirmed_at,omitempty"`
	LastSignInAt string         `json:"last_sign_in_at,omitempty"`
	AppMetadata  map[string]any `json:"app_metadata,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	CreatedAt    string         `json:"created_at,omitempty"`
	UpdatedAt    string         `json:"updated_at,omitempty"`
}

// APIError is a non-2xx response from the auth provider.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase: %s (status %d)", e.Message, e.Status)
}

// SignInWithOTP asks GoTrue to email a magic link / one-time passcode.
func (c *Client) SignInWithOTP(ctx context.Context, email string) error {
	payload := map[string]any{
		"email":       email,
		"create_user": true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	respBody, statusCode, err := c.request(ctx, http.MethodPost, c.authURL+"/otp", body, "")
	if err != nil {
		return err
	}
	if statusCode >= 400 {
		return parseError(respBody, statusCode)
	}
	return nil
}

// GetUser resolves an access token to its user identity.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	respBody, statusCode, err := c.request(ctx, http.MethodGet, c.authURL+"/user", nil, accessToken)
	if err != nil {
		return nil, err
	}
	if statusCode >= 400 {
		return nil, parseError(respBody, statusCode)
	}

	var user User
	if err := json.Unmarshal(respBody, &user); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if user.ID == "" {
		return nil, &APIError{Status: http.StatusUnauthorized, Message: "no user for token"}
	}
	return &user, nil
}

func (c *Client) request(ctx context.Context, method, url string, body []byte, bearer string) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("apikey", c.anonKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("auth provider request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	return respBody, resp.StatusCode, nil
}

func parseError(body []byte, statusCode int) error {
	var payload struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	message := http.StatusText(statusCode)
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Msg != "":
			message = payload.Msg
		case payload.Message != "":
			message = payload.Message
		case payload.ErrorDescription != "":
			message = payload.ErrorDescription
		}
	}
	return &APIError{Status: statusCode, Message: message}
}
