package service

import (
	"fmt"

	"streamplan/internal/domain"
	"streamplan/internal/render"
	"streamplan/internal/repository"
	"streamplan/internal/session"
	"streamplan/internal/wizard"

	"go.uber.org/zap"
)

// Poster delivers a rendered plan to its destination channel. One
// fire-and-forget call; retries, if any, are the gateway's concern.
type Poster interface {
	Post(channelID int64, doc render.Document) error
}

// PlanService drives the streamplan wizard: it owns the session store and
// the step transitions, and dispatches the finished plan.
type PlanService struct {
	store    session.Store
	wizard   *wizard.Wizard
	channels repository.ChannelRepository
	poster   Poster
	logger   *zap.Logger
}

// NewPlanService creates a new plan service
func NewPlanService(
	store session.Store,
	wiz *wizard.Wizard,
	channels repository.ChannelRepository,
	poster Poster,
	logger *zap.Logger,
) *PlanService {
	return &PlanService{
		store:    store,
		wizard:   wiz,
		channels: channels,
		poster:   poster,
		logger:   logger,
	}
}

// Start begins a fresh wizard for the user, replacing any prior session,
// and returns the week-selection screen.
func (s *PlanService) Start(userID, chatID int64) wizard.Screen {
	sess := s.store.Start(userID, chatID)
	return s.wizard.NextScreen(sess)
}

// Screen reconstructs the screen for the user's current position.
func (s *PlanService) Screen(userID int64) (wizard.Screen, error) {
	sess, err := s.store.Get(userID)
	if err != nil {
		return wizard.Screen{}, err
	}
	return s.wizard.NextScreen(sess), nil
}

// Step returns the session's current step, for routing free-text replies.
func (s *PlanService) Step(userID int64) (domain.Step, error) {
	sess, err := s.store.Get(userID)
	if err != nil {
		return 0, err
	}
	return sess.Current.Step, nil
}

// Cancel throws the user's in-progress wizard away.
func (s *PlanService) Cancel(userID int64) {
	s.store.Discard(userID)
}

// apply runs one wizard transition on the user's session and returns the
// screen to show next. The session is untouched when the transition fails.
func (s *PlanService) apply(userID int64, fn func(*domain.WizardSession) error) (wizard.Screen, error) {
	sess, err := s.store.Get(userID)
	if err != nil {
		return wizard.Screen{}, err
	}
	if err := fn(sess); err != nil {
		return wizard.Screen{}, err
	}
	return s.wizard.NextScreen(sess), nil
}

// ChooseWeek records the week choice and moves to the first status page.
func (s *PlanService) ChooseWeek(userID int64, label string) (wizard.Screen, error) {
	return s.apply(userID, func(sess *domain.WizardSession) error {
		return s.wizard.ChooseWeek(sess, label)
	})
}

// SetDayStatus overwrites one day's status and redisplays the same page.
func (s *PlanService) SetDayStatus(userID int64, day domain.Weekday, status domain.DayStatus) (wizard.Screen, error) {
	return s.apply(userID, func(sess *domain.WizardSession) error {
		return s.wizard.SetDayStatus(sess, day, status)
	})
}

// Next pages forward within the status step.
func (s *PlanService) Next(userID int64) (wizard.Screen, error) {
	return s.apply(userID, s.wizard.Next)
}

// Back pages backward, crossing into the previous step when needed.
func (s *PlanService) Back(userID int64) (wizard.Screen, error) {
	return s.apply(userID, s.wizard.Back)
}

// Proceed leaves the status step for time entry, skipping it when no day
// streams.
func (s *PlanService) Proceed(userID int64) (wizard.Screen, error) {
	return s.apply(userID, s.wizard.Proceed)
}

// SubmitTimes submits one time page, all-or-nothing.
func (s *PlanService) SubmitTimes(userID int64, values map[domain.Weekday]string) (wizard.Screen, error) {
	return s.apply(userID, func(sess *domain.WizardSession) error {
		return s.wizard.SubmitTimes(sess, values)
	})
}

// SubmitGames submits the game form and moves the wizard to completion.
func (s *PlanService) SubmitGames(userID int64, values map[domain.Weekday]string) (wizard.Screen, error) {
	return s.apply(userID, func(sess *domain.WizardSession) error {
		return s.wizard.SubmitGames(sess, values)
	})
}

// Complete renders the finished plan and posts it to the chat's configured
// channel. The session is discarded as soon as completion is attempted: a
// failed or unconfigured dispatch surfaces an error but never leaves a
// resumable wizard behind.
func (s *PlanService) Complete(userID int64) error {
	sess, err := s.store.Get(userID)
	if err != nil {
		return err
	}
	defer s.store.Discard(userID)

	doc := render.Plan(sess)

	channelID, err := s.channels.Lookup(sess.ChatID)
	if err != nil {
		s.logger.Warn("No destination channel for plan",
			zap.Int64("chat_id", sess.ChatID),
			zap.Error(err),
		)
		return err
	}

	if err := s.poster.Post(channelID, doc); err != nil {
		s.logger.Error("Failed to post plan",
			zap.Int64("channel_id", channelID),
			zap.Error(err),
		)
		return fmt.Errorf("post plan: %w", err)
	}

	s.logger.Info("Plan posted",
		zap.Int64("user_id", userID),
		zap.Int64("channel_id", channelID),
		zap.String("week", sess.Week),
	)
	return nil
}
