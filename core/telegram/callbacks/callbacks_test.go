package callbacks

import (
	"testing"

	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

func TestParseCallbackData(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		unique  string
		payload string
	}{
		{"unique with payload", "\fvote_best|64f0c2", "vote_best", "64f0c2"},
		{"unique only", "\fvote_skip", "vote_skip", ""},
		{"escaped prefix", "\\fvote_worst|abc", "vote_worst", "abc"},
		{"payload with separator", "\fvote_best|a|b", "vote_best", "a|b"},
		{"empty", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unique, payload := ParseCallbackData(&tele.Callback{Data: tc.data})
			require.Equal(t, tc.unique, unique)
			require.Equal(t, tc.payload, payload)
		})
	}
}

func TestParseCallbackDataNil(t *testing.T) {
	unique, payload := ParseCallbackData(nil)
	require.Empty(t, unique)
	require.Empty(t, payload)
}
