package backend

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

	"github.com/lingoapp/lingo/internal/content"
)

var (
	// ErrUnauthorized is returned when the backend rejects the session token.
	ErrUnauthorized = errors.New("session token rejected")

	// ErrNotConfigured is returned when no backend base URL is set.
	ErrNotConfigured = errors.New("backend not configured")
)

// DailyQuizTime is one day's study time in the statistics payload.
type DailyQuizTime struct {
	Date              string `json:"date"`
	Minutes           int    `json:"minutes"`
	QuestionsAnswered int    `json:"questionsAnswered,omitempty"`
}

// UserStatistics is the statistics-for-user payload, pulled at login and
// pushed (full replace) at logout.
type UserStatistics struct {
	TotalQuizMinutes int             `json:"totalQuizMinutes"`
	DailyQuizTimes   []DailyQuizTime `json:"dailyQuizTimes"`
	CompletedTopics  []string        `json:"completedTopics"`
}

// Client talks to the quiz backend. All methods validate response payloads
// against their JSON Schema before decoding.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a Client from config.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// SetToken replaces the session token after a successful login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login exchanges credentials for a session token. The token flow itself is
// the backend's concern; the client only carries the result.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return "", fmt.Errorf("encode credentials: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, "/auth/login", body)
	if err != nil {
		return "", err
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	c.token = resp.Token
	return resp.Token, nil
}

// TopicsForLevel fetches the topic reference list for a level.
func (c *Client) TopicsForLevel(ctx context.Context, level content.Level) ([]content.Topic, error) {
	var out []content.Topic
	path := fmt.Sprintf("/levels/%s/topics", url.PathEscape(string(level)))
	if err := c.getValidated(ctx, path, "topics", topicListSchema, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CategoriesForLevel fetches the category reference list for a level.
func (c *Client) CategoriesForLevel(ctx context.Context, level content.Level) ([]content.Category, error) {
	var out []content.Category
	path := fmt.Sprintf("/levels/%s/categories", url.PathEscape(string(level)))
	if err := c.getValidated(ctx, path, "categories", categoryListSchema, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// QuestionsForTopic fetches the questions served for a topic.
func (c *Client) QuestionsForTopic(ctx context.Context, topicID string) ([]content.Question, error) {
	var out []content.Question
	path := fmt.Sprintf("/topics/%s/questions", url.PathEscape(topicID))
	if err := c.getValidated(ctx, path, "questions", questionListSchema, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadingTextsForTopic fetches the reading passages linked to a topic.
func (c *Client) ReadingTextsForTopic(ctx context.Context, topicID string) ([]content.ReadingText, error) {
	var out []content.ReadingText
	path := fmt.Sprintf("/topics/%s/reading-texts", url.PathEscape(topicID))
	if err := c.getValidated(ctx, path, "readings", readingListSchema, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchStatistics pulls the user's persisted statistics, consumed at login.
func (c *Client) FetchStatistics(ctx context.Context) (*UserStatistics, error) {
	var out UserStatistics
	if err := c.getValidated(ctx, "/users/me/statistics", "statistics", statisticsSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PushStatistics uploads the full local aggregate. Full-replace semantics:
// the server stores what it receives, it does not merge.
func (c *Client) PushStatistics(ctx context.Context, stats UserStatistics) error {
	body, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode statistics: %w", err)
	}
	_, err = c.do(ctx, http.MethodPost, "/users/me/statistics", body)
	return err
}

// getValidated fetches a path, validates the payload against the schema and
// decodes it into out.
func (c *Client) getValidated(ctx context.Context, path, schemaName, schemaDef string, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := validatePayload(schemaName, schemaDef, raw); err != nil {
		return fmt.Errorf("%s payload: %w", schemaName, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", schemaName, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, path)
	}

	return io.ReadAll(resp.Body)
}
