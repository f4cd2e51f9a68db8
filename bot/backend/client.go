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
	"strconv"
	"time"

	coreconfig "questbot/core/config"
	"questbot/core/logger"

	"log/slog"
)

// ErrUnavailable marks transport-level failures: connection refused,
// timeout, malformed JSON. Domain errors never wrap it.
var ErrUnavailable = errors.New("quest backend unavailable")

const defaultTimeout = 10 * time.Second

// Client issues authenticated JSON calls to the quest backend's bot API.
// HTTP statuses >= 400 are not failures by themselves: the body still
// carries a JSON payload with an "error" field, surfaced as *APIError.
// There are no retries; the backend is trusted and co-located.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New builds a Client from backend configuration.
func New(cfg coreconfig.BackendConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.URL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Register performs the idempotent register-or-fetch call.
// Returns true when a new player record was created.
func (c *Client) Register(ctx context.Context, telegramID int64, username, firstName string) (bool, error) {
	var out struct {
		Created bool `json:"created"`
	}
	err := c.call(ctx, http.MethodPost, "register", nil, map[string]any{
		"telegram_id":       telegramID,
		"telegram_username": username,
		"first_name":        firstName,
	}, &out)
	return out.Created, err
}

// SubmitPhoto forwards a photo report's Telegram file handle.
func (c *Client) SubmitPhoto(ctx context.Context, telegramID int64, fileID string) error {
	return c.call(ctx, http.MethodPost, "photo", nil, map[string]any{
		"telegram_id": telegramID,
		"file_id":     fileID,
	}, nil)
}

// SubmitLocation forwards a location update (initial share or live tick).
func (c *Client) SubmitLocation(ctx context.Context, telegramID int64, lat, lng float64) (bool, error) {
	var out struct {
		OK bool `json:"ok"`
	}
	err := c.call(ctx, http.MethodPost, "location", nil, map[string]any{
		"telegram_id": telegramID,
		"lat":         lat,
		"lng":         lng,
	}, &out)
	return out.OK, err
}

// Profile fetches the player record.
func (c *Client) Profile(ctx context.Context, telegramID int64) (*Profile, error) {
	var out Profile
	if err := c.call(ctx, http.MethodGet, "profile", idQuery(telegramID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Leaderboard fetches the top players list.
func (c *Client) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	var out []LeaderboardEntry
	if err := c.call(ctx, http.MethodGet, "leaderboard", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Songs fetches the user's playlist and quota.
func (c *Client) Songs(ctx context.Context, telegramID int64) (*SongList, error) {
	var out SongList
	if err := c.call(ctx, http.MethodGet, "songs", idQuery(telegramID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddSong asks the backend to search the catalog and add the match.
func (c *Client) AddSong(ctx context.Context, telegramID int64, query string) (*AddedSong, error) {
	var out AddedSong
	err := c.call(ctx, http.MethodPost, "song", nil, map[string]any{
		"telegram_id": telegramID,
		"query":       query,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ActiveVoting returns the current voting session, or nil when none is active.
func (c *Client) ActiveVoting(ctx context.Context) (*Voting, error) {
	var out struct {
		Voting *Voting `json:"voting"`
	}
	if err := c.call(ctx, http.MethodGet, "voting/active", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Voting, nil
}

// VotingCandidates returns the players the user may vote for.
func (c *Client) VotingCandidates(ctx context.Context, telegramID int64) ([]Candidate, error) {
	var out []Candidate
	if err := c.call(ctx, http.MethodGet, "voting/candidates", idQuery(telegramID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Vote casts a vote for a candidate in the given category.
func (c *Client) Vote(ctx context.Context, telegramID int64, candidateID, category string) error {
	return c.call(ctx, http.MethodPost, "voting/vote", nil, map[string]any{
		"telegram_id":  telegramID,
		"candidate_id": candidateID,
		"category":     category,
	}, nil)
}

// Message forwards free participant text to the organizer dashboard.
func (c *Client) Message(ctx context.Context, telegramID int64, text string) error {
	return c.call(ctx, http.MethodPost, "message", nil, map[string]any{
		"telegram_id": telegramID,
		"text":        text,
	}, nil)
}

func idQuery(telegramID int64) url.Values {
	q := url.Values{}
	q.Set("telegram_id", strconv.FormatInt(telegramID, 10))
	return q
}

func (c *Client) call(ctx context.Context, method, endpoint string, query url.Values, payload, out any) error {
	reqURL := c.baseURL + "/api/bot/" + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("backend: encode %s: %w", endpoint, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("backend: build request %s: %w", endpoint, err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error(ctx, "api", "call.fail",
			slog.String("endpoint", endpoint),
			slog.String("method", method),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: read body: %v", ErrUnavailable, endpoint, err)
	}

	logger.Debug(ctx, "api", "call",
		slog.String("endpoint", endpoint),
		slog.String("method", method),
		slog.Int("http_status", resp.StatusCode),
		slog.Int64("duration_ms", logger.Took(start).Milliseconds()),
	)

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return fmt.Errorf("%w: %s: decode: %v", ErrUnavailable, endpoint, err)
		}
		if env.Error != "" {
			return &APIError{Code: env.Error, Message: env.Message}
		}
	} else if resp.StatusCode >= http.StatusBadRequest {
		// error status with a non-object body leaves nothing to interpret
		return fmt.Errorf("%w: %s: status %s", ErrUnavailable, endpoint, resp.Status)
	}

	if out != nil && len(trimmed) > 0 {
		if err := json.Unmarshal(trimmed, out); err != nil {
			return fmt.Errorf("%w: %s: decode: %v", ErrUnavailable, endpoint, err)
		}
	}
	return nil
}
