package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"questbot/bot/backend"
	"questbot/bot/keyboards"
	coreconfig "questbot/core/config"
	"questbot/core/telegram/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

func newTestHandlers(t *testing.T, mux *http.ServeMux) (*Handlers, state.Manager) {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	api := backend.New(coreconfig.BackendConfig{URL: srv.URL, APIKey: "k"})
	fsm := state.NewMemoryManager()
	return New(api, fsm), fsm
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func jsonError(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestSongEntryQuotaExhausted(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/songs", jsonHandler(`{"count":10,"remaining":0,"max":10,"songs":[]}`))
	h, fsm := newTestHandlers(t, mux)

	reply, enter := h.songEntry(context.Background(), 42)
	assert.False(t, enter)
	assert.Contains(t, reply, "максимум песен (10/10)")
	assert.Equal(t, state.StateIdle, fsm.GetState(42))
}

func TestSongEntryOpensWaiting(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/songs", jsonHandler(`{"count":3,"remaining":7,"max":10,"songs":[]}`))
	h, _ := newTestHandlers(t, mux)

	reply, enter := h.songEntry(context.Background(), 42)
	assert.True(t, enter)
	assert.Contains(t, reply, "Добавлено: 3/10")
	assert.Contains(t, reply, "Осталось: 7")
	assert.Contains(t, reply, "/cancel")
}

func TestSongEntryUnregistered(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/songs", jsonError(http.StatusNotFound, `{"error":"Участник не найден"}`))
	h, _ := newTestHandlers(t, mux)

	reply, enter := h.songEntry(context.Background(), 42)
	assert.False(t, enter)
	assert.Contains(t, reply, "/start")
}

func TestSongOutcomeDuplicate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/song", jsonError(http.StatusConflict, `{"error":"duplicate"}`))
	h, _ := newTestHandlers(t, mux)

	reply := h.songOutcome(context.Background(), 42, "Imagine Dragons - Believer", false)
	assert.Contains(t, reply, "уже есть в твоём списке")
}

func TestSongOutcomeNotFoundVariants(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/song", jsonError(http.StatusNotFound, `{"error":"not_found"}`))
	h, _ := newTestHandlers(t, mux)

	text := h.songOutcome(context.Background(), 42, "xyz", false)
	assert.Contains(t, text, "Не нашёл такую песню")

	fromAudio := h.songOutcome(context.Background(), 42, "A - B", true)
	assert.Contains(t, fromAudio, "«A - B»")
}

func TestSongOutcomeSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/song", jsonHandler(`{"song":{"name":"Believer","artist":"Imagine Dragons"},"remaining":6}`))
	h, _ := newTestHandlers(t, mux)

	reply := h.songOutcome(context.Background(), 42, "believer", false)
	assert.Contains(t, reply, "добавлена в плейлист")
	assert.Contains(t, reply, "Осталось: 6")
}

func TestSongListReply(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/songs", jsonHandler(`{"count":1,"remaining":9,"max":10,"songs":[{"name":"One","artist":"A"}]}`))
	h, _ := newTestHandlers(t, mux)

	reply := h.songListReply(context.Background(), 42)
	assert.Contains(t, reply, "Твои песни (1/10)")
	assert.Contains(t, reply, "One — A")
}

func TestSongListReplyEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/songs", jsonHandler(`{"count":0,"remaining":10,"max":10,"songs":[]}`))
	h, _ := newTestHandlers(t, mux)

	assert.Contains(t, h.songListReply(context.Background(), 42), "пока нет добавленных песен")
}

func TestVotingEntryNoActiveSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/voting/active", jsonHandler(`{"voting":null}`))
	h, fsm := newTestHandlers(t, mux)

	text, markup := h.votingEntry(context.Background(), 42)
	assert.Contains(t, text, "нет активного голосования")
	assert.Nil(t, markup)
	assert.Equal(t, state.StateIdle, fsm.GetState(42))
}

func TestVotingEntryNoCandidates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/voting/active", jsonHandler(`{"voting":{"_id":"v1","title":"Итоги дня"}}`))
	mux.HandleFunc("/api/bot/voting/candidates", jsonHandler(`[]`))
	h, fsm := newTestHandlers(t, mux)

	text, markup := h.votingEntry(context.Background(), 42)
	assert.Contains(t, text, "Нет доступных кандидатов")
	assert.Nil(t, markup)
	assert.Equal(t, state.StateIdle, fsm.GetState(42))
}

func TestVotingTwoStepFlow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/voting/active", jsonHandler(`{"voting":{"_id":"v1","title":"Итоги дня"}}`))
	mux.HandleFunc("/api/bot/voting/candidates", jsonHandler(`[{"_id":"c1","first_name":"Вася"},{"_id":"c2","telegram_username":"petya"}]`))
	h, fsm := newTestHandlers(t, mux)

	text, markup := h.votingEntry(context.Background(), 42)
	assert.Contains(t, text, "Итоги дня")
	assert.Contains(t, text, "лучшего")
	require.NotNil(t, markup)
	require.Len(t, markup.InlineKeyboard, 3) // 2 candidates + skip
	assert.Equal(t, StateVotingBest, fsm.GetState(42))

	// One best-step action moves to the worst step with the stored candidates.
	worst := h.worstKeyboard(42)
	require.Len(t, worst.InlineKeyboard, 3)
	assert.Equal(t, "Вася", worst.InlineKeyboard[0][0].Text)
	assert.Equal(t, StateVotingWorst, fsm.GetState(42))

	// One worst-step action ends the flow.
	fsm.Clear(42)
	assert.Equal(t, state.StateIdle, fsm.GetState(42))
	assert.False(t, fsm.InProgress(42))
}

func TestCastVoteSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/voting/vote", jsonHandler(`{}`))
	h, _ := newTestHandlers(t, mux)

	text, alert := h.castVote(context.Background(), 42, "c1", backend.CategoryBest)
	assert.False(t, alert)
	assert.Contains(t, text, "Голос за лучшего принят")
}

func TestAudioQuery(t *testing.T) {
	assert.Equal(t, "Imagine Dragons - Believer", audioQuery(&tele.Audio{Performer: "Imagine Dragons", Title: "Believer"}))
	assert.Equal(t, "Believer", audioQuery(&tele.Audio{Title: "Believer"}))
	assert.Equal(t, "", audioQuery(&tele.Audio{}))
}

func TestCastVoteAlreadyVoted(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/voting/vote", jsonError(http.StatusConflict, `{"error":"already_voted"}`))
	h, _ := newTestHandlers(t, mux)

	text, alert := h.castVote(context.Background(), 42, "c1", backend.CategoryWorst)
	assert.True(t, alert)
	assert.Contains(t, text, "уже голосовал за худшего")
}

func TestPhotoReplyMapping(t *testing.T) {
	assert.Contains(t, photoReply(nil), "Фото принято")
	assert.Contains(t, photoReply(&backend.APIError{Code: "Участник не в команде"}), "ещё не в команде")
	assert.Contains(t, photoReply(&backend.APIError{Code: "Команда не найдена"}), "Ошибка: Команда не найдена")
	assert.Contains(t, photoReply(backend.ErrUnavailable), "временно недоступен")
}

func TestProfileReply(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/profile", jsonHandler(`{"first_name":"Вася","team_id":{"name":"Красные"},"lives":3,"stats":{"photos_sent":2,"messages_sent":5,"songs_added":1}}`))
	h, _ := newTestHandlers(t, mux)

	reply := h.profileReply(context.Background(), 42)
	assert.Contains(t, reply, "Вася")
	assert.Contains(t, reply, "Красные")
	assert.Contains(t, reply, "Фото отправлено: 2")
}

func TestProfileReplyError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/profile", jsonError(http.StatusNotFound, `{"error":"Участник не найден"}`))
	h, _ := newTestHandlers(t, mux)

	assert.Contains(t, h.profileReply(context.Background(), 42), "Попробуй /start")
}

func TestLeaderboardReplyEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/leaderboard", jsonHandler(`[]`))
	h, _ := newTestHandlers(t, mux)

	assert.Contains(t, h.leaderboardReply(context.Background()), "нет данных")
}

func TestSongInputDeclinesMenuButtons(t *testing.T) {
	h, fsm := newTestHandlers(t, http.NewServeMux())
	fsm.SetState(42, StateSongWaiting)

	b, err := tele.NewBot(tele.Settings{Offline: true})
	require.NoError(t, err)
	c := b.NewContext(tele.Update{Message: &tele.Message{
		Text:   keyboards.BtnProfile,
		Sender: &tele.User{ID: 42},
		Chat:   &tele.Chat{ID: 42},
	}})

	// The label goes back to the router, not to the song search, and the
	// dialog stays open.
	require.ErrorIs(t, h.SongInput(c), state.ErrNotHandled)
	assert.Equal(t, StateSongWaiting, fsm.GetState(42))
}

func TestSongWaitingNeverEnteredOnZeroQuota(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/songs", jsonHandler(`{"count":10,"remaining":0,"max":10,"songs":[]}`))
	h, fsm := newTestHandlers(t, mux)

	for i := 0; i < 3; i++ {
		_, enter := h.songEntry(context.Background(), 42)
		assert.False(t, enter)
	}
	assert.Equal(t, state.StateIdle, fsm.GetState(42))
}
