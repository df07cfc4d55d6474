package service

import (
	"go.uber.org/zap"

	"linguaquest/internal/apperr"
	"linguaquest/internal/cache"
	"linguaquest/internal/models"
)

// TopicStore provides the topic operations the service needs.
type TopicStore interface {
	List() ([]models.Topic, error)
	FindByName(name string) (*models.Topic, error)
	Create(name, description string) (int64, error)
}

// TopicService serves the topic catalog. The list changes rarely, so reads
// go through a short-lived cache.
type TopicService struct {
	topics TopicStore
	cache  *cache.TTL[[]models.Topic]
	logger *zap.Logger
}

// NewTopicService creates the topic service.
func NewTopicService(topics TopicStore, listCache *cache.TTL[[]models.Topic], logger *zap.Logger) *TopicService {
	return &TopicService{topics: topics, cache: listCache, logger: logger}
}

// ListTopics returns all topics, from cache when fresh.
func (s *TopicService) ListTopics() ([]models.Topic, error) {
	if cached, ok := s.cache.Get(); ok {
		return cached, nil
	}

	topics, err := s.topics.List()
	if err != nil {
		return nil, apperr.DataAccess("list topics", err)
	}

	s.cache.Set(topics)
	return topics, nil
}

// CreateTopic adds a new topic to the catalog.
func (s *TopicService) CreateTopic(name, description string) (*models.Topic, error) {
	if Normalize(name) == "" {
		return nil, apperr.Validation("name", "topic name is required")
	}

	existing, err := s.topics.FindByName(name)
	if err != nil {
		return nil, apperr.DataAccess("find topic", err)
	}
	if existing != nil {
		return nil, apperr.Validation("name", "topic already exists")
	}

	id, err := s.topics.Create(name, description)
	if err != nil {
		return nil, apperr.DataAccess("create topic", err)
	}

	s.cache.Invalidate()
	s.logger.Info("topic created", zap.Int64("topic_id", id), zap.String("name", name))

	return &models.Topic{ID: id, Name: name, Description: description}, nil
}

// defaultTopics seeds a fresh installation with something to learn.
var defaultTopics = map[string]string{
	"Travel":     "Airports, trips and holidays",
	"Food":       "Cooking, restaurants and groceries",
	"Work":       "Office life, careers and meetings",
	"Technology": "Computers, gadgets and the internet",
	"Health":     "Body, fitness and medicine",
}

// EnsureDefaults creates the built-in topics when the catalog is empty.
func (s *TopicService) EnsureDefaults() error {
	topics, err := s.topics.List()
	if err != nil {
		return apperr.DataAccess("list topics", err)
	}
	if len(topics) > 0 {
		return nil
	}

	for name, description := range defaultTopics {
		if _, err := s.topics.Create(name, description); err != nil {
			return apperr.DataAccess("seed topic", err)
		}
	}

	s.cache.Invalidate()
	s.logger.Info("seeded default topics", zap.Int("count", len(defaultTopics)))
	return nil
}
