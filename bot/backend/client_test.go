package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	coreconfig "questbot/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(coreconfig.BackendConfig{URL: srv.URL, APIKey: "test-key"})
}

func TestRegisterCreated(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Api-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"user":{"first_name":"Вася"},"created":true}`))
	})

	created, err := client.Register(context.Background(), 42, "vasya", "Вася")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "/api/bot/register", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, float64(42), gotBody["telegram_id"])
	assert.Equal(t, "vasya", gotBody["telegram_username"])
}

func TestRegisterExisting(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{},"created":false}`))
	})

	created, err := client.Register(context.Background(), 42, "", "")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestSubmitPhotoNotOnTeam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Участник не в команде"}`))
	})

	err := client.SubmitPhoto(context.Background(), 42, "file123")
	require.Error(t, err)
	assert.True(t, IsNotOnTeam(err))
}

func TestSubmitPhotoOtherError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Участник не найден"}`))
	})

	err := client.SubmitPhoto(context.Background(), 42, "file123")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Участник не найден", apiErr.Text())
	assert.False(t, IsNotOnTeam(err))
}

func TestSubmitLocation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	ok, err := client.SubmitLocation(context.Background(), 42, 55.75, 37.61)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProfileTeamShapes(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		wantTeam string
	}{
		{"populated", `{"first_name":"Вася","team_id":{"name":"Красные"},"lives":2,"stats":{"photos_sent":3}}`, "Красные"},
		{"bare id", `{"first_name":"Вася","team_id":"66f0aa","lives":2,"stats":{}}`, ""},
		{"null", `{"first_name":"Вася","team_id":null,"lives":2,"stats":{}}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "42", r.URL.Query().Get("telegram_id"))
				_, _ = w.Write([]byte(tc.body))
			})
			p, err := client.Profile(context.Background(), 42)
			require.NoError(t, err)
			assert.Equal(t, tc.wantTeam, p.Team.Name)
			assert.Equal(t, 2, p.Lives)
		})
	}
}

func TestLeaderboardArrayBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"first_name":"A","lives":3,"level":2},{"telegram_username":"b","lives":1,"level":1}]`))
	})

	entries, err := client.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].DisplayName())
	assert.Equal(t, "b", entries[1].DisplayName())
}

func TestAddSongDomainErrors(t *testing.T) {
	for _, code := range []string{CodeNotFound, CodeLimit, CodeDuplicate} {
		t.Run(code, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": code, "message": "msg"})
			})
			_, err := client.AddSong(context.Background(), 42, "query")
			assert.True(t, IsCode(err, code))
		})
	}
}

func TestAddSongSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"song":{"name":"Believer","artist":"Imagine Dragons","external_url":"https://open.spotify.com/track/x"},"remaining":7}`))
	})

	added, err := client.AddSong(context.Background(), 42, "Imagine Dragons - Believer")
	require.NoError(t, err)
	assert.Equal(t, "Believer", added.Song.Name)
	assert.Equal(t, 7, added.Remaining)
}

func TestActiveVotingNull(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"voting":null}`))
	})

	voting, err := client.ActiveVoting(context.Background())
	require.NoError(t, err)
	assert.Nil(t, voting)
}

func TestVoteAlreadyVoted(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"already_voted","message":"Ты уже голосовал"}`))
	})

	err := client.Vote(context.Background(), 42, "cand1", CategoryBest)
	assert.True(t, IsCode(err, CodeAlreadyVoted))
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	client := New(coreconfig.BackendConfig{URL: srv.URL, APIKey: "k"})

	_, err := client.Profile(context.Background(), 42)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestMalformedJSONIsTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count": not-json`))
	})

	_, err := client.Songs(context.Background(), 42)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCandidateDisplayNameFallback(t *testing.T) {
	assert.Equal(t, "Вася", Candidate{FirstName: "Вася", Username: "v", TelegramID: 1}.DisplayName())
	assert.Equal(t, "v", Candidate{Username: "v", TelegramID: 1}.DisplayName())
	assert.Equal(t, "123", Candidate{TelegramID: 123}.DisplayName())
}
