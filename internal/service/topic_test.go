package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"linguaquest/internal/apperr"
	"linguaquest/internal/cache"
	"linguaquest/internal/models"
	"linguaquest/internal/testutil"
)

func newTopicService(store *testutil.MockTopicStore) *TopicService {
	return NewTopicService(store, cache.NewTTL[[]models.Topic](time.Hour), zap.NewNop())
}

func TestListTopicsCachesResult(t *testing.T) {
	store := new(testutil.MockTopicStore)
	store.On("List").Return([]models.Topic{{ID: 1, Name: "Travel"}}, nil).Once()

	svc := newTopicService(store)

	for i := 0; i < 3; i++ {
		topics, err := svc.ListTopics()
		require.NoError(t, err)
		assert.Len(t, topics, 1)
	}

	// Only the first call hits the store.
	store.AssertNumberOfCalls(t, "List", 1)
}

func TestCreateTopicInvalidatesCache(t *testing.T) {
	store := new(testutil.MockTopicStore)
	store.On("List").Return([]models.Topic{{ID: 1, Name: "Travel"}}, nil)
	store.On("FindByName", "Food").Return(nil, nil)
	store.On("Create", "Food", "Cooking").Return(int64(2), nil)

	svc := newTopicService(store)

	_, err := svc.ListTopics()
	require.NoError(t, err)

	topic, err := svc.CreateTopic("Food", "Cooking")
	require.NoError(t, err)
	assert.Equal(t, int64(2), topic.ID)

	_, err = svc.ListTopics()
	require.NoError(t, err)
	store.AssertNumberOfCalls(t, "List", 2)
}

func TestCreateTopicRejectsDuplicate(t *testing.T) {
	store := new(testutil.MockTopicStore)
	store.On("FindByName", "Travel").Return(&models.Topic{ID: 1, Name: "Travel"}, nil)

	svc := newTopicService(store)
	_, err := svc.CreateTopic("Travel", "")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestEnsureDefaultsSeedsEmptyCatalog(t *testing.T) {
	store := new(testutil.MockTopicStore)
	store.On("List").Return([]models.Topic{}, nil)
	store.On("Create", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(int64(1), nil)

	svc := newTopicService(store)
	require.NoError(t, svc.EnsureDefaults())
	store.AssertNumberOfCalls(t, "Create", len(defaultTopics))
}

func TestEnsureDefaultsSkipsPopulatedCatalog(t *testing.T) {
	store := new(testutil.MockTopicStore)
	store.On("List").Return([]models.Topic{{ID: 1, Name: "Travel"}}, nil)

	svc := newTopicService(store)
	require.NoError(t, svc.EnsureDefaults())
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
