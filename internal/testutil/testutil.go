package testutil

import (
	"time"

	"streamplan/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// FixedClock returns a clock stuck at t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NewTestSession creates a session with the given per-day answers. Days
// absent from statuses stay NoStream.
func NewTestSession(userID, chatID int64, week string, statuses map[domain.Weekday]domain.DayStatus, times, games map[domain.Weekday]string) *domain.WizardSession {
	sess := domain.NewWizardSession(userID, chatID)
	sess.Week = week
	for d, s := range statuses {
		sess.DayStatus[d] = s
	}
	for d, t := range times {
		sess.DayTime[d] = t
	}
	for d, g := range games {
		sess.DayGame[d] = g
	}
	return sess
}
