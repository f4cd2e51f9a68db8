package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

func TestDefaultStateIsIdle(t *testing.T) {
	m := NewMemoryManager()
	require.Equal(t, StateIdle, m.GetState(42))
	require.False(t, m.InProgress(42))
}

func TestSetAndClearState(t *testing.T) {
	m := NewMemoryManager()
	m.SetState(1, State("song_waiting"))
	require.Equal(t, State("song_waiting"), m.GetState(1))
	require.True(t, m.InProgress(1))

	m.ClearState(1)
	require.Equal(t, StateIdle, m.GetState(1))
	require.False(t, m.InProgress(1))
}

func TestTempDataSurvivesStateChanges(t *testing.T) {
	m := NewMemoryManager()
	m.SetTemp(1, "voting_id", "64f0c2")
	m.SetState(1, State("voting_best"))
	m.SetState(1, State("voting_worst"))

	v, ok := m.GetTempString(1, "voting_id")
	require.True(t, ok)
	require.Equal(t, "64f0c2", v)
}

func TestClearRemovesEverything(t *testing.T) {
	m := NewMemoryManager()
	m.SetTemp(1, "k", "v")
	m.SetState(1, State("voting_best"))
	m.Clear(1)

	require.Equal(t, StateIdle, m.GetState(1))
	_, ok := m.GetTemp(1, "k")
	require.False(t, ok)
}

func TestGetTempStringRejectsOtherTypes(t *testing.T) {
	m := NewMemoryManager()
	m.SetTemp(1, "n", 5)
	_, ok := m.GetTempString(1, "n")
	require.False(t, ok)
}

func TestManagerHandlerDeclinesUnregisteredState(t *testing.T) {
	m := NewMemoryManager()
	m.SetState(1, State("nobody_registered_this"))

	b, err := tele.NewBot(tele.Settings{Offline: true})
	require.NoError(t, err)
	c := b.NewContext(tele.Update{Message: &tele.Message{
		Text:   "привет",
		Sender: &tele.User{ID: 1},
		Chat:   &tele.Chat{ID: 1},
	}})

	require.ErrorIs(t, m.ManagerHandler(c), ErrNotHandled)
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	m := NewMemoryManager()
	var wg sync.WaitGroup
	for i := int64(1); i <= 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			m.SetState(id, State("song_waiting"))
			m.SetTemp(id, "voting_id", "x")
			m.ClearState(id)
		}(i)
	}
	wg.Wait()
	for i := int64(1); i <= 50; i++ {
		require.Equal(t, StateIdle, m.GetState(i))
	}
}
