package render

import (
	"questbot/bot/backend"
	"questbot/core/telegram/format"
	"questbot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// Callback uniques used by the voting inline keyboards. The category is
// encoded in the unique itself, so a button press is unambiguous no matter
// what the stored conversation state says.
const (
	CallbackVoteBest  = "vote_best"
	CallbackVoteWorst = "vote_worst"
	CallbackVoteSkip  = "vote_skip"
)

// VotingNone is shown when no voting session is active.
func VotingNone() string {
	return "❌ Сейчас нет активного голосования."
}

// VotingNoCandidates is shown when the candidate list is empty.
func VotingNoCandidates() string {
	return "❌ Нет доступных кандидатов для голосования."
}

// VotingBestPrompt opens the two-step flow with the session title.
func VotingBestPrompt(title string) string {
	return "🗳 " + format.Bold(title) + "\n\n🏆 Выбери <b>лучшего</b> игрока:"
}

// VotingWorstPrompt asks for the second, "worst" pick.
func VotingWorstPrompt() string {
	return "👎 Теперь выбери <b>худшего</b> игрока:"
}

// VotingThanks closes the flow.
func VotingThanks() string {
	return "🎉 Спасибо за участие в голосовании!\nРезультаты будут объявлены после завершения."
}

// VoteAccepted is the success toast for a cast vote.
func VoteAccepted(category string) string {
	if category == backend.CategoryWorst {
		return "✅ Голос за худшего принят!"
	}
	return "✅ Голос за лучшего принят!"
}

// VoteAlreadyCast is the alert for a duplicate vote in a category.
func VoteAlreadyCast(category string) string {
	if category == backend.CategoryWorst {
		return "Ты уже голосовал за худшего!"
	}
	return "Ты уже голосовал за лучшего!"
}

// VoteError is the alert for any other vote failure.
func VoteError(msg string) string {
	if msg == "" {
		msg = "попробуй ещё раз"
	}
	return "Ошибка: " + msg
}

// VoteSkipped is the toast confirming a skipped category.
func VoteSkipped() string {
	return "Пропущено"
}

// CandidatesKeyboard builds one button per candidate plus a skip row.
// The candidate id travels in the callback payload.
func CandidatesKeyboard(candidates []backend.Candidate, category string) *tele.ReplyMarkup {
	unique := CallbackVoteBest
	if category == backend.CategoryWorst {
		unique = CallbackVoteWorst
	}
	buttons := make([]keyboard.InlineBtn, 0, len(candidates)+1)
	for _, cand := range candidates {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   cand.DisplayName(),
			Unique: unique,
			Data:   cand.ID,
		})
	}
	buttons = append(buttons, keyboard.InlineBtn{Text: "⏭ Пропустить", Unique: CallbackVoteSkip})
	return keyboard.InlineButtons(buttons)
}
