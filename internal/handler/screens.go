package handler

import (
	"errors"
	"fmt"
	"strings"

	"streamplan/internal/domain"
	"streamplan/internal/wizard"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// showScreen turns a screen descriptor into the message the user sees.
func (h *Handler) showScreen(c tele.Context, scr wizard.Screen) error {
	userID := c.Sender().ID

	// A game form with no fields has nothing to ask: submit it empty and
	// finish right away.
	if scr.Kind == wizard.ScreenGameForm && len(scr.Days) == 0 {
		if _, err := h.plans.SubmitGames(userID, nil); err != nil {
			h.logger.Error("Failed to skip empty game form", zap.Error(err))
			return h.display(c, msgExpired, nil)
		}
		return h.finish(c)
	}

	switch scr.Kind {
	case wizard.ScreenWeek:
		return h.showWeekScreen(c, scr)
	case wizard.ScreenStatus:
		return h.showStatusScreen(c, scr)
	case wizard.ScreenTimeForm:
		return h.showTimeScreen(c, scr)
	case wizard.ScreenGameForm:
		return h.showGameScreen(c, scr)
	case wizard.ScreenDone:
		return h.finish(c)
	default:
		h.logger.Warn("Unknown screen kind", zap.Int("kind", int(scr.Kind)))
		return nil
	}
}

func (h *Handler) showWeekScreen(c tele.Context, scr wizard.Screen) error {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(scr.WeekChoices)+1)
	for _, label := range scr.WeekChoices {
		rows = append(rows, markup.Row(markup.Data(label, "week_"+label)))
	}
	rows = append(rows, markup.Row(btnCancel))
	markup.Inline(rows...)

	return h.display(c, "📅 Wähle die Woche (von - bis):", markup)
}

func (h *Handler) showStatusScreen(c tele.Context, scr wizard.Screen) error {
	text := fmt.Sprintf(
		"📅 Status je Tag (Seite %d/%d)\n\nTippe auf einen Tag, um den Status zu wechseln:\n🟥 Kein Stream · 🟨 Eventuell · 🟩 Stream",
		scr.Page, scr.PageCount,
	)

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(scr.Days)+2)
	for _, day := range scr.Days {
		status := scr.Statuses[day]
		next := (status + 1) % 3
		btnText := fmt.Sprintf("%s %s — %s", status.Glyph(), day, status)
		rows = append(rows, markup.Row(markup.Data(btnText, fmt.Sprintf("status_%d_%d", day, next))))
	}

	nav := tele.Row{}
	if scr.HasBack {
		nav = append(nav, btnBack)
	}
	if scr.HasNext {
		nav = append(nav, btnNext)
	}
	if scr.HasProceed {
		nav = append(nav, btnProceed)
	}
	rows = append(rows, nav, markup.Row(btnCancel))
	markup.Inline(rows...)

	return h.display(c, text, markup)
}

func (h *Handler) showTimeScreen(c tele.Context, scr wizard.Screen) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🕒 Uhrzeiten (Seite %d/%d)\n\n", scr.Page, scr.PageCount)
	sb.WriteString("Antworte mit einer Nachricht — eine Zeile je Tag, Format HH:MM:\n\n")
	for _, day := range scr.Days {
		if t, ok := scr.Times[day]; ok {
			fmt.Fprintf(&sb, "%s (bisher %s)\n", day, t)
		} else {
			fmt.Fprintf(&sb, "%s\n", day)
		}
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnBack), markup.Row(btnCancel))

	return h.display(c, sb.String(), markup)
}

func (h *Handler) showGameScreen(c tele.Context, scr wizard.Screen) error {
	var sb strings.Builder
	sb.WriteString("🎮 Spiele\n\n")
	sb.WriteString("Antworte mit einer Zeile je Tag, '-' wenn noch offen:\n\n")
	for _, day := range scr.Days {
		t := scr.Times[day]
		if t == "" {
			t = "-"
		}
		fmt.Fprintf(&sb, "%s (%s)\n", day, t)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnBack), markup.Row(btnCancel))

	return h.display(c, sb.String(), markup)
}

// finish renders and dispatches the completed plan.
func (h *Handler) finish(c tele.Context) error {
	userID := c.Sender().ID

	err := h.plans.Complete(userID)
	switch {
	case err == nil:
		return h.display(c, msgPosted, nil)
	case errors.Is(err, domain.ErrNotConfigured):
		return h.display(c, msgNoDestination, nil)
	case errors.Is(err, domain.ErrSessionNotFound):
		return h.display(c, msgExpired, nil)
	default:
		h.logger.Error("Failed to complete plan", zap.Int64("user_id", userID), zap.Error(err))
		return h.display(c, msgPostFailed, nil)
	}
}

// display edits the triggering message for callbacks and sends a new one
// for plain messages.
func (h *Handler) display(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		if markup != nil {
			return c.Send(text, markup)
		}
		return c.Send(text)
	}

	var err error
	if markup != nil {
		err = c.Edit(text, markup)
	} else {
		err = c.Edit(text)
	}
	if err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		if markup != nil {
			return c.Send(text, markup)
		}
		return c.Send(text)
	}
	return c.Respond()
}
