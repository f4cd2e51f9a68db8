package render

import (
	"strings"
	"testing"

	"questbot/bot/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcomeEscapesName(t *testing.T) {
	text := Welcome("<Вася>")
	assert.Contains(t, text, "Добро пожаловать")
	assert.Contains(t, text, "<b>&lt;Вася&gt;</b>")
}

func TestProfileTextDefaults(t *testing.T) {
	text := ProfileText(&backend.Profile{Lives: 2})
	assert.Contains(t, text, "Без имени")
	assert.Contains(t, text, "Без команды")
	assert.Contains(t, text, "❤️❤️🖤 (2)")
}

func TestProfileTextClampsNegativeLives(t *testing.T) {
	text := ProfileText(&backend.Profile{FirstName: "Вася", Lives: -1})
	assert.Contains(t, text, "🖤🖤🖤 (0)")
}

func TestLeaderboardMedalsAndOverflow(t *testing.T) {
	entries := []backend.LeaderboardEntry{
		{FirstName: "A", Lives: 7, Level: 3},
		{FirstName: "B", Lives: 2, Level: 2},
		{FirstName: "C", Lives: 1, Level: 1},
		{FirstName: "D", Lives: 0, Level: 1},
	}
	text := LeaderboardText(entries)
	assert.Contains(t, text, "🥇 <b>A</b> — ❤️❤️❤️❤️❤️+2 | Ур. 3")
	assert.Contains(t, text, "🥈 <b>B</b>")
	assert.Contains(t, text, "🥉 <b>C</b>")
	assert.Contains(t, text, "4. <b>D</b>")
}

func TestLeaderboardCapsAtTen(t *testing.T) {
	entries := make([]backend.LeaderboardEntry, 15)
	for i := range entries {
		entries[i] = backend.LeaderboardEntry{FirstName: "P", Lives: 1, Level: 1}
	}
	text := LeaderboardText(entries)
	assert.Equal(t, 10, strings.Count(text, "<b>P</b>"))
}

func TestSongAddedWithAndWithoutLink(t *testing.T) {
	song := backend.Song{Name: "Believer", Artist: "Imagine Dragons", ExternalURL: "https://open.spotify.com/track/x"}
	text := SongAdded(song, 7)
	assert.Contains(t, text, "<b>Believer</b>")
	assert.Contains(t, text, `<a href="https://open.spotify.com/track/x">`)
	assert.Contains(t, text, "Осталось: 7")

	text = SongAdded(backend.Song{Artist: "X"}, 0)
	assert.Contains(t, text, "Неизвестно")
	assert.NotContains(t, text, "<a href")
}

func TestSongListTextFooter(t *testing.T) {
	list := &backend.SongList{
		Count: 2, Max: 10,
		Songs: []backend.Song{
			{Name: "One", Artist: "A", ExternalURL: "https://x"},
			{Name: "Two", Artist: "B"},
		},
	}
	text := SongListText(list)
	assert.Contains(t, text, "Твои песни (2/10)")
	assert.Contains(t, text, `1. <a href="https://x">One</a> — A`)
	assert.Contains(t, text, "2. Two — B")
	assert.Contains(t, text, "Можно добавить ещё: 8")

	full := &backend.SongList{Count: 10, Max: 10, Songs: make([]backend.Song, 10)}
	assert.Contains(t, SongListText(full), "Лимит достигнут")
}

func TestCandidatesKeyboard(t *testing.T) {
	candidates := []backend.Candidate{
		{ID: "c1", FirstName: "Вася"},
		{ID: "c2", Username: "petya"},
		{ID: "c3", TelegramID: 777},
	}
	markup := CandidatesKeyboard(candidates, backend.CategoryBest)
	require.Len(t, markup.InlineKeyboard, 4)

	assert.Equal(t, "Вася", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "petya", markup.InlineKeyboard[1][0].Text)
	assert.Equal(t, "777", markup.InlineKeyboard[2][0].Text)
	assert.Equal(t, CallbackVoteBest, markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "c1", markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, CallbackVoteSkip, markup.InlineKeyboard[3][0].Unique)

	worst := CandidatesKeyboard(candidates, backend.CategoryWorst)
	assert.Equal(t, CallbackVoteWorst, worst.InlineKeyboard[0][0].Unique)
}

func TestVoteCopyPerCategory(t *testing.T) {
	assert.Contains(t, VoteAccepted(backend.CategoryBest), "лучшего")
	assert.Contains(t, VoteAccepted(backend.CategoryWorst), "худшего")
	assert.Contains(t, VoteAlreadyCast(backend.CategoryBest), "лучшего")
	assert.Contains(t, VoteAlreadyCast(backend.CategoryWorst), "худшего")
}
