package handlers

import (
	"context"
	"errors"

	"questbot/bot/backend"
	"questbot/bot/render"
	"questbot/core/logger"
	"questbot/core/telegram/callbacks"
	tghelpers "questbot/core/telegram/helpers"

	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Vote handles the voting menu button and opens the two-step best/worst flow.
func (h *Handlers) Vote(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	text, markup := h.votingEntry(ctx, c.Sender().ID)
	return tghelpers.SendHTML(c, text, markup)
}

// votingEntry fetches the active session and the candidate list. On success
// it stores both in the session bag and enters the "best" state.
func (h *Handlers) votingEntry(ctx context.Context, userID int64) (string, *tele.ReplyMarkup) {
	voting, err := h.api.ActiveVoting(ctx)
	if err != nil {
		if errors.Is(err, backend.ErrUnavailable) {
			return render.ServiceUnavailable(), nil
		}
		return render.VotingNone(), nil
	}
	if voting == nil {
		return render.VotingNone(), nil
	}

	candidates, err := h.api.VotingCandidates(ctx, userID)
	if err != nil {
		if errors.Is(err, backend.ErrUnavailable) {
			return render.ServiceUnavailable(), nil
		}
		return render.VotingNoCandidates(), nil
	}
	if len(candidates) == 0 {
		return render.VotingNoCandidates(), nil
	}

	h.fsm.SetTemp(userID, tempVotingID, voting.ID)
	h.fsm.SetTemp(userID, tempCandidates, candidates)
	h.fsm.SetState(userID, StateVotingBest)

	return render.VotingBestPrompt(voting.Title), render.CandidatesKeyboard(candidates, backend.CategoryBest)
}

// VoteBest casts a "best" vote. Whatever the outcome, the flow advances to
// the "worst" category: a duplicate or failed vote never blocks step two.
func (h *Handlers) VoteBest(c tele.Context) error {
	userID := c.Sender().ID
	ctx := tghelpers.BuildContext(c)

	text, alert := h.castVote(ctx, userID, callbacks.CallbackPayload(c), backend.CategoryBest)
	_ = c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: alert})

	return h.presentWorst(c, userID)
}

// VoteWorst casts a "worst" vote and closes the flow regardless of outcome.
func (h *Handlers) VoteWorst(c tele.Context) error {
	userID := c.Sender().ID
	ctx := tghelpers.BuildContext(c)

	text, alert := h.castVote(ctx, userID, callbacks.CallbackPayload(c), backend.CategoryWorst)
	_ = c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: alert})

	return h.finishVoting(c, userID)
}

// VoteSkip advances without submitting. The category lives in the pressed
// button's unique for cast votes; skip is the one case where the stored
// state decides which step is being skipped.
func (h *Handlers) VoteSkip(c tele.Context) error {
	userID := c.Sender().ID

	var err error
	if h.fsm.GetState(userID) == StateVotingBest {
		err = h.presentWorst(c, userID)
	} else {
		err = h.finishVoting(c, userID)
	}
	_ = c.Respond(&tele.CallbackResponse{Text: render.VoteSkipped()})
	return err
}

// castVote submits one vote and maps the outcome to a callback response.
// The bool marks responses that should pop as alerts.
func (h *Handlers) castVote(ctx context.Context, userID int64, candidateID, category string) (string, bool) {
	err := h.api.Vote(ctx, userID, candidateID, category)
	switch {
	case err == nil:
		return render.VoteAccepted(category), false
	case backend.IsCode(err, backend.CodeAlreadyVoted):
		return render.VoteAlreadyCast(category), true
	case errors.Is(err, backend.ErrUnavailable):
		return render.VoteError("сервис недоступен"), true
	default:
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			return render.VoteError(apiErr.Text()), true
		}
		return render.VoteError(""), true
	}
}

// presentWorst replaces the keyboard with the "worst" category one.
func (h *Handlers) presentWorst(c tele.Context, userID int64) error {
	markup := h.worstKeyboard(userID)
	return tghelpers.EditHTML(c, render.VotingWorstPrompt(), markup)
}

// worstKeyboard rebuilds the candidate keyboard from the session bag and
// moves the state to the "worst" step.
func (h *Handlers) worstKeyboard(userID int64) *tele.ReplyMarkup {
	candidates := h.storedCandidates(userID)
	h.fsm.SetState(userID, StateVotingWorst)
	return render.CandidatesKeyboard(candidates, backend.CategoryWorst)
}

// finishVoting renders the closing text and clears the session.
func (h *Handlers) finishVoting(c tele.Context, userID int64) error {
	votingID, _ := h.fsm.GetTempString(userID, tempVotingID)
	h.fsm.Clear(userID)
	logger.Debug(tghelpers.BuildContext(c), "service.quest", "voting.finish",
		slog.String("voting_id", votingID),
		slog.Int64("user_id", userID),
	)
	return tghelpers.EditOrSendHTML(c, render.VotingThanks())
}

func (h *Handlers) storedCandidates(userID int64) []backend.Candidate {
	val, ok := h.fsm.GetTemp(userID, tempCandidates)
	if !ok {
		return nil
	}
	candidates, _ := val.([]backend.Candidate)
	return candidates
}
