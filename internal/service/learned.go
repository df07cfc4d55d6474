package service

import (
	"github.com/samber/lo"
)

// WordUsageStore provides the word-task association history the resolver
// reads from.
type WordUsageStore interface {
	FindWordTextsByUserAndTopic(userID int64, topic string) ([]string, error)
}

// LearnedWordsResolver computes the set of words a user has already been
// served for a topic.
type LearnedWordsResolver interface {
	LearnedWords(userID int64, topic string) ([]string, error)
}

// LearnedWordsService resolves a user's learned words from their word-task
// association history. Every word ever associated with one of the user's
// tasks counts as learned, whether or not the task was finished: a word
// the user has seen must not be served again.
type LearnedWordsService struct {
	usage WordUsageStore
}

// NewLearnedWordsService creates a learned-words resolver backed by the
// association history.
func NewLearnedWordsService(usage WordUsageStore) *LearnedWordsService {
	return &LearnedWordsService{usage: usage}
}

// LearnedWords returns the normalized texts of the user's learned words
// for the topic, deduplicated. Topic matching is the store's concern: the
// raw topic passes through and the repository compares case-insensitively.
func (s *LearnedWordsService) LearnedWords(userID int64, topic string) ([]string, error) {
	texts, err := s.usage.FindWordTextsByUserAndTopic(userID, topic)
	if err != nil {
		return nil, err
	}

	normalized := lo.Map(texts, func(text string, _ int) string {
		return Normalize(text)
	})

	return lo.Uniq(normalized), nil
}
