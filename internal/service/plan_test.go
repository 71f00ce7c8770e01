package service

import (
	"fmt"
	"testing"
	"time"

	"streamplan/internal/domain"
	"streamplan/internal/render"
	"streamplan/internal/testutil"
	"streamplan/internal/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testToday = time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)

func newPlanService(store *testutil.MockStore, channels *testutil.MockChannelRepository, poster *testutil.MockPoster) *PlanService {
	wiz := wizard.NewWithClock(func() time.Time { return testToday })
	return NewPlanService(store, wiz, channels, poster, testutil.NewTestLogger())
}

func completedSession() *domain.WizardSession {
	sess := testutil.NewTestSession(123, 456, "10.06.2024 - 16.06.2024",
		map[domain.Weekday]domain.DayStatus{domain.Monday: domain.Scheduled},
		map[domain.Weekday]string{domain.Monday: "18:00"},
		map[domain.Weekday]string{domain.Monday: "Fortnite"},
	)
	sess.Current = domain.Page{Step: domain.StepDone}
	return sess
}

func TestPlanService_Start(t *testing.T) {
	store := new(testutil.MockStore)
	store.On("Start", int64(123), int64(456)).Return(domain.NewWizardSession(123, 456))

	svc := newPlanService(store, new(testutil.MockChannelRepository), new(testutil.MockPoster))

	scr := svc.Start(123, 456)
	assert.Equal(t, wizard.ScreenWeek, scr.Kind)
	assert.Len(t, scr.WeekChoices, 3)
	store.AssertExpectations(t)
}

func TestPlanService_ChooseWeek_SessionExpired(t *testing.T) {
	store := new(testutil.MockStore)
	store.On("Get", int64(123)).Return(nil, domain.ErrSessionNotFound)

	svc := newPlanService(store, new(testutil.MockChannelRepository), new(testutil.MockPoster))

	_, err := svc.ChooseWeek(123, "10.06.2024 - 16.06.2024")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestPlanService_Complete_Posts(t *testing.T) {
	sess := completedSession()

	store := new(testutil.MockStore)
	store.On("Get", int64(123)).Return(sess, nil)
	store.On("Discard", int64(123)).Return()

	channels := new(testutil.MockChannelRepository)
	channels.On("Lookup", int64(456)).Return(int64(789), nil)

	poster := new(testutil.MockPoster)
	poster.On("Post", int64(789), mock.MatchedBy(func(doc render.Document) bool {
		return doc.Title == "📅 Streamplan der Woche (10.06.2024 - 16.06.2024)"
	})).Return(nil)

	svc := newPlanService(store, channels, poster)

	assert.NoError(t, svc.Complete(123))
	store.AssertExpectations(t)
	channels.AssertExpectations(t)
	poster.AssertExpectations(t)
}

func TestPlanService_Complete_NotConfigured(t *testing.T) {
	sess := completedSession()

	store := new(testutil.MockStore)
	store.On("Get", int64(123)).Return(sess, nil)
	store.On("Discard", int64(123)).Return()

	channels := new(testutil.MockChannelRepository)
	channels.On("Lookup", int64(456)).Return(int64(0), domain.ErrNotConfigured)

	poster := new(testutil.MockPoster)

	svc := newPlanService(store, channels, poster)

	err := svc.Complete(123)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)

	// Nothing posted, but the session is gone regardless.
	poster.AssertNotCalled(t, "Post", mock.Anything, mock.Anything)
	store.AssertCalled(t, "Discard", int64(123))
}

func TestPlanService_Complete_PostFails(t *testing.T) {
	sess := completedSession()

	store := new(testutil.MockStore)
	store.On("Get", int64(123)).Return(sess, nil)
	store.On("Discard", int64(123)).Return()

	channels := new(testutil.MockChannelRepository)
	channels.On("Lookup", int64(456)).Return(int64(789), nil)

	poster := new(testutil.MockPoster)
	poster.On("Post", int64(789), mock.Anything).Return(fmt.Errorf("telegram down"))

	svc := newPlanService(store, channels, poster)

	err := svc.Complete(123)
	assert.Error(t, err)
	store.AssertCalled(t, "Discard", int64(123))
}

func TestPlanService_Complete_SessionExpired(t *testing.T) {
	store := new(testutil.MockStore)
	store.On("Get", int64(123)).Return(nil, domain.ErrSessionNotFound)

	svc := newPlanService(store, new(testutil.MockChannelRepository), new(testutil.MockPoster))

	assert.ErrorIs(t, svc.Complete(123), domain.ErrSessionNotFound)
	store.AssertNotCalled(t, "Discard", mock.Anything)
}

func TestPlanService_TransitionLeavesSessionUntouchedOnError(t *testing.T) {
	sess := domain.NewWizardSession(123, 456)

	store := new(testutil.MockStore)
	store.On("Get", int64(123)).Return(sess, nil)

	svc := newPlanService(store, new(testutil.MockChannelRepository), new(testutil.MockPoster))

	_, err := svc.ChooseWeek(123, "not a week")
	assert.Error(t, err)
	assert.Empty(t, sess.Week)
	assert.Equal(t, domain.StepWeek, sess.Current.Step)
}
