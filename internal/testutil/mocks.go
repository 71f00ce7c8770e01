package testutil

import (
	"streamplan/internal/domain"
	"streamplan/internal/render"

	"github.com/stretchr/testify/mock"
)

// MockChannelRepository is a mock for repository.ChannelRepository
type MockChannelRepository struct {
	mock.Mock
}

func (m *MockChannelRepository) Lookup(chatID int64) (int64, error) {
	args := m.Called(chatID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChannelRepository) Save(chatID, channelID int64) error {
	args := m.Called(chatID, channelID)
	return args.Error(0)
}

// MockPoster is a mock for service.Poster
type MockPoster struct {
	mock.Mock
}

func (m *MockPoster) Post(channelID int64, doc render.Document) error {
	args := m.Called(channelID, doc)
	return args.Error(0)
}

// MockStore is a mock for session.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Start(userID, chatID int64) *domain.WizardSession {
	args := m.Called(userID, chatID)
	return args.Get(0).(*domain.WizardSession)
}

func (m *MockStore) Get(userID int64) (*domain.WizardSession, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WizardSession), args.Error(1)
}

func (m *MockStore) Discard(userID int64) {
	m.Called(userID)
}
