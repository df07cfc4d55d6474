package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linguaquest/internal/testutil"
)

func TestLearnedWordsNormalizesAndDeduplicates(t *testing.T) {
	usage := new(testutil.MockWordUsageStore)
	// The topic reaches the store untouched; case folding happens in the
	// repository query.
	usage.On("FindWordTextsByUserAndTopic", int64(3), " Travel ").
		Return([]string{"Visa", "visa", " passport "}, nil)

	svc := NewLearnedWordsService(usage)
	learned, err := svc.LearnedWords(3, " Travel ")
	require.NoError(t, err)
	assert.Equal(t, []string{"visa", "passport"}, learned)
	usage.AssertExpectations(t)
}

func TestLearnedWordsEmptyHistory(t *testing.T) {
	usage := new(testutil.MockWordUsageStore)
	usage.On("FindWordTextsByUserAndTopic", int64(3), "Travel").Return([]string{}, nil)

	svc := NewLearnedWordsService(usage)
	learned, err := svc.LearnedWords(3, "Travel")
	require.NoError(t, err)
	assert.Empty(t, learned)
}

func TestLearnedWordsPropagatesError(t *testing.T) {
	usage := new(testutil.MockWordUsageStore)
	usage.On("FindWordTextsByUserAndTopic", int64(3), "Travel").
		Return(nil, errors.New("connection refused"))

	svc := NewLearnedWordsService(usage)
	_, err := svc.LearnedWords(3, "Travel")
	require.Error(t, err)
}
