package backend

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Error codes the backend returns in the "error" field.
const (
	CodeNotFound     = "not_found"
	CodeLimit        = "limit"
	CodeDuplicate    = "duplicate"
	CodeAlreadyVoted = "already_voted"
)

// Vote categories accepted by the voting endpoint.
const (
	CategoryBest  = "best"
	CategoryWorst = "worst"
)

// APIError is a domain error reported by the backend in a response body.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

// Text returns the most human-readable description available.
func (e *APIError) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// IsNotOnTeam detects the backend's free-form "участник не в команде" error.
// The backend ships this as prose rather than a stable code, so the
// substring match lives here and nowhere else.
func IsNotOnTeam(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.Contains(strings.ToLower(apiErr.Text()), "не в команде")
}

// TeamRef is a user's team reference. The backend sends either a populated
// object, a bare id string, or null; only the name is of interest here.
type TeamRef struct {
	Name string
}

func (t *TeamRef) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || strings.HasPrefix(trimmed, `"`) {
		// unpopulated reference, no name available
		t.Name = ""
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	t.Name = obj.Name
	return nil
}

// Stats holds per-player activity counters.
type Stats struct {
	PhotosSent   int `json:"photos_sent"`
	MessagesSent int `json:"messages_sent"`
	SongsAdded   int `json:"songs_added"`
}

// Profile is a player record as served by the profile endpoint.
type Profile struct {
	FirstName string  `json:"first_name"`
	Team      TeamRef `json:"team_id"`
	Lives     int     `json:"lives"`
	Stats     Stats   `json:"stats"`
}

// LeaderboardEntry is one row of the top players list.
type LeaderboardEntry struct {
	FirstName string `json:"first_name"`
	Username  string `json:"telegram_username"`
	Lives     int    `json:"lives"`
	Level     int    `json:"level"`
}

// DisplayName resolves a printable name: first name, then username, then a placeholder.
func (e LeaderboardEntry) DisplayName() string {
	if e.FirstName != "" {
		return e.FirstName
	}
	if e.Username != "" {
		return e.Username
	}
	return "???"
}

// Song describes one playlist entry. External URL may be absent.
type Song struct {
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	ExternalURL string `json:"external_url"`
}

// SongList is the user's playlist with quota information.
type SongList struct {
	Count     int    `json:"count"`
	Remaining int    `json:"remaining"`
	Max       int    `json:"max"`
	Songs     []Song `json:"songs"`
}

// AddedSong is the result of a successful search-and-add call.
type AddedSong struct {
	Song      Song `json:"song"`
	Remaining int  `json:"remaining"`
}

// Voting identifies the currently active voting session.
type Voting struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// Candidate is a player eligible to receive a vote.
type Candidate struct {
	ID         string `json:"_id"`
	FirstName  string `json:"first_name"`
	Username   string `json:"telegram_username"`
	TelegramID int64  `json:"telegram_id"`
}

// DisplayName resolves a printable name and always terminates in a
// non-empty string: first name, then username, then the raw numeric id.
func (c Candidate) DisplayName() string {
	if c.FirstName != "" {
		return c.FirstName
	}
	if c.Username != "" {
		return c.Username
	}
	return strconv.FormatInt(c.TelegramID, 10)
}
