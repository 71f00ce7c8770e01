package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"streamplan/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified,
// just acknowledge the callback. Otherwise acknowledge and return the error
// so the caller can send a new message instead.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries not bound to a static button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons that didn't come through their registered route
	switch callback.Unique {
	case "nav_back":
		return h.handleBack(c)
	case "nav_next":
		return h.handleNext(c)
	case "nav_proceed":
		return h.handleProceed(c)
	case "cancel":
		return h.handleCancel(c)
	}

	// Handle by data prefix (dynamic buttons)
	switch {
	case strings.HasPrefix(data, "week_"):
		return h.handleWeekSelection(c, data)
	case strings.HasPrefix(data, "status_"):
		return h.handleStatusSelection(c, data)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleWeekSelection records the chosen week and shows the first status page
func (h *Handler) handleWeekSelection(c tele.Context, data string) error {
	label := strings.TrimPrefix(strings.TrimSpace(data), "week_")

	scr, err := h.plans.ChooseWeek(c.Sender().ID, label)
	if err != nil {
		return h.transitionError(c, err)
	}
	return h.showScreen(c, scr)
}

// parseStatusData parses a "status_<day>_<status>" callback payload.
func parseStatusData(data string) (domain.Weekday, domain.DayStatus, error) {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(data), "status_"), "_")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed status payload %q", data)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed status payload %q", data)
	}
	status, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed status payload %q", data)
	}
	return domain.Weekday(day), domain.DayStatus(status), nil
}

// handleStatusSelection overwrites one day's status and redraws the page
func (h *Handler) handleStatusSelection(c tele.Context, data string) error {
	day, status, err := parseStatusData(data)
	if err != nil {
		h.logger.Warn("Bad status callback", zap.String("data", data), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Ungültige Auswahl"})
	}

	scr, err := h.plans.SetDayStatus(c.Sender().ID, day, status)
	if err != nil {
		return h.transitionError(c, err)
	}
	return h.showScreen(c, scr)
}

func (h *Handler) handleBack(c tele.Context) error {
	scr, err := h.plans.Back(c.Sender().ID)
	if err != nil {
		return h.transitionError(c, err)
	}
	return h.showScreen(c, scr)
}

func (h *Handler) handleNext(c tele.Context) error {
	scr, err := h.plans.Next(c.Sender().ID)
	if err != nil {
		return h.transitionError(c, err)
	}
	return h.showScreen(c, scr)
}

func (h *Handler) handleProceed(c tele.Context) error {
	scr, err := h.plans.Proceed(c.Sender().ID)
	if err != nil {
		return h.transitionError(c, err)
	}
	return h.showScreen(c, scr)
}

// handleCancel throws the wizard away
func (h *Handler) handleCancel(c tele.Context) error {
	h.plans.Cancel(c.Sender().ID)
	return h.display(c, msgCancelled, nil)
}

// transitionError reports a failed step transition without touching the
// session: expired sessions get the restart prompt, anything else a short
// alert on the same screen.
func (h *Handler) transitionError(c tele.Context, err error) error {
	if errors.Is(err, domain.ErrSessionNotFound) {
		return h.display(c, msgExpired, nil)
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Respond(&tele.CallbackResponse{Text: vErr.Error(), ShowAlert: true})
	}

	h.logger.Warn("Rejected wizard transition", zap.Int64("user_id", c.Sender().ID), zap.Error(err))
	return c.Respond(&tele.CallbackResponse{Text: "Das geht hier gerade nicht."})
}
