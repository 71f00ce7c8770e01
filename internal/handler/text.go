package handler

import (
	"errors"
	"fmt"
	"strings"

	"streamplan/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes free-text replies to the step that is expecting a form
// submission. Anything else is ignored.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	step, err := h.plans.Step(userID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return c.Send("Kein aktiver Streamplan. Starte mit /streamplan.")
	}
	if err != nil {
		h.logger.Error("Failed to resolve wizard step", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgExpired)
	}

	switch step {
	case domain.StepTime:
		return h.handleTimeReply(c, text)
	case domain.StepGame:
		return h.handleGameReply(c, text)
	default:
		return nil
	}
}

// handleTimeReply submits one time page from a line-per-day reply.
func (h *Handler) handleTimeReply(c tele.Context, text string) error {
	userID := c.Sender().ID

	scr, err := h.plans.Screen(userID)
	if err != nil {
		return c.Send(msgExpired)
	}

	lines := splitLines(text)
	if len(lines) != len(scr.Days) {
		if err := c.Send(fmt.Sprintf(
			"Bitte genau %d Zeilen senden, eine je Tag (%s).",
			len(scr.Days), dayList(scr.Days),
		)); err != nil {
			return err
		}
		return h.showScreen(c, scr)
	}

	values := make(map[domain.Weekday]string, len(scr.Days))
	for i, day := range scr.Days {
		values[day] = lines[i]
	}

	next, err := h.plans.SubmitTimes(userID, values)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			msgs := make([]string, 0, len(vErr.Fields)+1)
			msgs = append(msgs, "Bitte korrigiere folgende Eingaben:")
			for _, f := range vErr.Fields {
				msgs = append(msgs, f.String())
			}
			msgs = append(msgs, "Erlaubt: HH:MM, z. B. 18:00.")
			if err := c.Send(strings.Join(msgs, "\n")); err != nil {
				return err
			}
			return h.showScreen(c, scr)
		}
		if errors.Is(err, domain.ErrSessionNotFound) {
			return c.Send(msgExpired)
		}
		h.logger.Error("Failed to submit times", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgExpired)
	}
	return h.showScreen(c, next)
}

// handleGameReply submits the game form from a line-per-day reply. Missing
// lines and "-" mean no game yet.
func (h *Handler) handleGameReply(c tele.Context, text string) error {
	userID := c.Sender().ID

	scr, err := h.plans.Screen(userID)
	if err != nil {
		return c.Send(msgExpired)
	}

	lines := splitLines(text)
	values := make(map[domain.Weekday]string, len(scr.Days))
	for i, day := range scr.Days {
		if i >= len(lines) || lines[i] == "-" {
			continue
		}
		values[day] = lines[i]
	}

	next, err := h.plans.SubmitGames(userID, values)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return c.Send(msgExpired)
		}
		h.logger.Error("Failed to submit games", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgExpired)
	}
	return h.showScreen(c, next)
}

// splitLines splits a reply into trimmed, non-empty lines.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func dayList(days []domain.Weekday) string {
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}
