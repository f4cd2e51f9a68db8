package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyButtons(t *testing.T) {
	markup := ReplyButtons(
		[]string{"One", "Two"},
		[]string{"Three"},
	)

	require.Len(t, markup.ReplyKeyboard, 2)
	require.Len(t, markup.ReplyKeyboard[0], 2)
	assert.Equal(t, "One", markup.ReplyKeyboard[0][0].Text)
	assert.Equal(t, "Three", markup.ReplyKeyboard[1][0].Text)
	assert.True(t, markup.ResizeKeyboard)
}

func TestReplyRowsLocationButton(t *testing.T) {
	markup := ReplyRows(
		[]ReplyBtn{{Text: "Share", Location: true}},
		[]ReplyBtn{{Text: "Plain"}},
	)

	require.Len(t, markup.ReplyKeyboard, 2)
	assert.Equal(t, "Share", markup.ReplyKeyboard[0][0].Text)
	assert.True(t, markup.ReplyKeyboard[0][0].Location)
	assert.False(t, markup.ReplyKeyboard[1][0].Location)
}

func TestInlineButtonsOneRowEach(t *testing.T) {
	markup := InlineButtons([]InlineBtn{
		{Text: "A", Unique: "pick", Data: "a"},
		{Text: "B", Unique: "pick", Data: "b"},
	})

	require.Len(t, markup.InlineKeyboard, 2)
	assert.Equal(t, "A", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "pick", markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "a", markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, "b", markup.InlineKeyboard[1][0].Data)
}

func TestInlineButtonsRows(t *testing.T) {
	markup := InlineButtonsRows(
		[]InlineBtn{{Text: "A", Unique: "x"}, {Text: "B", Unique: "y"}},
	)

	require.Len(t, markup.InlineKeyboard, 1)
	require.Len(t, markup.InlineKeyboard[0], 2)
	assert.Equal(t, "y", markup.InlineKeyboard[0][1].Unique)
}

func TestRemoveKeyboard(t *testing.T) {
	assert.True(t, RemoveKeyboard().RemoveKeyboard)
}
