// Package testutil provides shared mocks for service-level tests.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"linguaquest/internal/generator"
	"linguaquest/internal/models"
)

// MockWordStore mocks the word catalog store.
type MockWordStore struct {
	mock.Mock
}

func (m *MockWordStore) FindByTopicAndLevel(topic string, level models.Level, excludeTexts []string) ([]models.Word, error) {
	args := m.Called(topic, level, excludeTexts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Word), args.Error(1)
}

func (m *MockWordStore) FindByText(topic, normalizedText string) (*models.Word, error) {
	args := m.Called(topic, normalizedText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Word), args.Error(1)
}

func (m *MockWordStore) Insert(word *models.Word) (string, error) {
	args := m.Called(word)
	return args.String(0), args.Error(1)
}

func (m *MockWordStore) UpdateTranslation(wordID, translation, example string) error {
	args := m.Called(wordID, translation, example)
	return args.Error(0)
}

// MockLearnedWordsResolver mocks the learned-words resolver.
type MockLearnedWordsResolver struct {
	mock.Mock
}

func (m *MockLearnedWordsResolver) LearnedWords(userID int64, topic string) ([]string, error) {
	args := m.Called(userID, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockContentGenerator mocks the external vocabulary generator.
type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) GenerateWords(ctx context.Context, req generator.GenerationRequest) ([]generator.GeneratedWord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]generator.GeneratedWord), args.Error(1)
}

// MockWordSupplier mocks the word supply engine.
type MockWordSupplier struct {
	mock.Mock
}

func (m *MockWordSupplier) SupplyWords(ctx context.Context, userID int64, topic string, level models.Level) ([]models.Word, error) {
	args := m.Called(ctx, userID, topic, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Word), args.Error(1)
}

// MockWordUsageStore mocks the word-task association history.
type MockWordUsageStore struct {
	mock.Mock
}

func (m *MockWordUsageStore) FindWordTextsByUserAndTopic(userID int64, topic string) ([]string, error) {
	args := m.Called(userID, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTopicStore mocks the topic store.
type MockTopicStore struct {
	mock.Mock
}

func (m *MockTopicStore) List() ([]models.Topic, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Topic), args.Error(1)
}

func (m *MockTopicStore) FindByName(name string) (*models.Topic, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Topic), args.Error(1)
}

func (m *MockTopicStore) Create(name, description string) (int64, error) {
	args := m.Called(name, description)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserStore mocks the user account store.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(email, name, passwordHash string) (int64, error) {
	args := m.Called(email, name, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStore) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) FindByID(userID int64) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) UpdateLevel(userID int64, level models.Level) error {
	args := m.Called(userID, level)
	return args.Error(0)
}
