// Package handlers implements the conversation flows of the quest bot:
// registration, photo and location intake, song requests, voting, profile
// and leaderboard queries. Handlers translate chat events into backend
// calls and backend responses into replies; all game rules live remotely.
package handlers

import (
	"questbot/bot/backend"
	"questbot/core/telegram/state"
)

// Conversation states used by the flows. Anything else falls open to idle.
const (
	StateSongWaiting state.State = "song_waiting"
	StateVotingBest  state.State = "voting_best"
	StateVotingWorst state.State = "voting_worst"
)

// Temp-data keys of the voting flow.
const (
	tempVotingID   = "voting_id"
	tempCandidates = "candidates"
)

// Handlers bundles the backend client and the FSM manager shared by all flows.
type Handlers struct {
	api *backend.Client
	fsm state.Manager
}

// New constructs the handler set.
func New(api *backend.Client, fsm state.Manager) *Handlers {
	return &Handlers{api: api, fsm: fsm}
}
