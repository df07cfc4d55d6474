package service

import (
	"context"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"linguaquest/internal/apperr"
	"linguaquest/internal/generator"
	"linguaquest/internal/models"
)

// WordStore provides the catalog operations the supply engine needs.
type WordStore interface {
	FindByTopicAndLevel(topic string, level models.Level, excludeTexts []string) ([]models.Word, error)
	FindByText(topic, normalizedText string) (*models.Word, error)
	Insert(word *models.Word) (string, error)
	UpdateTranslation(wordID, translation, example string) error
}

// VocabService is the word supply engine. It assembles the word set for a
// new task from the shared catalog, topping it up from the content
// generator when the unseen pool runs low.
type VocabService struct {
	words            WordStore
	learned          LearnedWordsResolver
	generator        generator.ContentGenerator
	generatorTimeout time.Duration
	logger           *zap.Logger
}

// NewVocabService creates the word supply engine.
func NewVocabService(words WordStore, learned LearnedWordsResolver, gen generator.ContentGenerator, generatorTimeout time.Duration, logger *zap.Logger) *VocabService {
	return &VocabService{
		words:            words,
		learned:          learned,
		generator:        gen,
		generatorTimeout: generatorTimeout,
		logger:           logger,
	}
}

// SupplyWords assembles between MinWordsPerTask and MaxWordsPerTask words
// for the user, topic and level, none of which the user has seen before.
// The generator is only consulted when the catalog pool alone cannot cover
// the minimum; when it is, oversized pools are trimmed to a random subset.
func (s *VocabService) SupplyWords(ctx context.Context, userID int64, topic string, level models.Level) ([]models.Word, error) {
	if Normalize(topic) == "" {
		return nil, apperr.Validation("topic", "topic is required")
	}
	if _, ok := models.ParseLevel(string(level)); !ok {
		return nil, apperr.Validation("level", "unknown level")
	}

	// A resolver failure must not block learning: degrade to an empty
	// learned set and let the catalog uniqueness constraints backstop
	// duplicates.
	learnedTexts, err := s.learned.LearnedWords(userID, topic)
	if err != nil {
		s.logger.Warn("learned words resolution failed, proceeding with empty set",
			zap.Int64("user_id", userID),
			zap.String("topic", topic),
			zap.Error(err))
		learnedTexts = nil
	}

	pool, err := s.words.FindByTopicAndLevel(topic, level, learnedTexts)
	if err != nil {
		return nil, apperr.DataAccess("query word pool", err)
	}

	if len(pool) < MinWordsPerTask {
		pool, err = s.generate(ctx, userID, topic, level, learnedTexts, pool)
		if err != nil {
			return nil, err
		}
	}

	if len(pool) < MinWordsPerTask {
		return nil, &apperr.InsufficientWordsError{Available: len(pool), Required: MinWordsPerTask}
	}
	if len(pool) > MaxWordsPerTask {
		pool = lo.Samples(pool, MaxWordsPerTask)
	}

	return pool, nil
}

// generate tops up the pool from the content generator. Candidates are
// untrusted: they are validated, deduplicated against everything already
// seen, and checked against the catalog before any insert, with the
// stored row winning over the generated one.
func (s *VocabService) generate(ctx context.Context, userID int64, topic string, level models.Level, learnedTexts []string, pool []models.Word) ([]models.Word, error) {
	request := MaxWordsPerTask - len(pool)
	if request < MinGenerationBatch {
		request = MinGenerationBatch
	}

	exclude := lo.Uniq(append(learnedTexts, lo.Map(pool, func(w models.Word, _ int) string {
		return Normalize(w.Text)
	})...))

	genCtx, cancel := context.WithTimeout(ctx, s.generatorTimeout)
	defer cancel()

	candidates, err := s.generator.GenerateWords(genCtx, generator.GenerationRequest{
		Topic:        topic,
		Level:        string(level),
		Count:        request,
		ExcludeWords: exclude,
	})
	if err != nil {
		return nil, &apperr.GenerationFailedError{Available: len(pool), Requested: request, Err: err}
	}

	seen := make(map[string]bool, len(exclude))
	for _, text := range exclude {
		seen[text] = true
	}

	for _, candidate := range candidates {
		normalized := Normalize(candidate.Word)
		if !validCandidate(candidate) || seen[normalized] {
			s.logger.Debug("dropping generated candidate",
				zap.String("word", candidate.Word),
				zap.String("topic", topic))
			continue
		}
		seen[normalized] = true

		word, err := s.adopt(candidate, topic, level)
		if err != nil {
			s.logger.Warn("failed to adopt generated word",
				zap.String("word", candidate.Word),
				zap.String("topic", topic),
				zap.Error(err))
			continue
		}
		pool = append(pool, *word)
	}

	return pool, nil
}

// adopt resolves a validated candidate to a catalog row. The catalog is
// authoritative: a word that already exists for the topic is reused as-is,
// only genuinely new words are inserted.
func (s *VocabService) adopt(candidate generator.GeneratedWord, topic string, level models.Level) (*models.Word, error) {
	existing, err := s.words.FindByText(topic, Normalize(candidate.Word))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Backfill a bare row when the generator supplied richer content.
		if existing.Translation == "" && candidate.Translation != "" {
			if err := s.words.UpdateTranslation(existing.ID, candidate.Translation, candidate.Example); err != nil {
				s.logger.Warn("failed to backfill word translation",
					zap.String("word_id", existing.ID),
					zap.Error(err))
			} else {
				existing.Translation = candidate.Translation
				existing.Example = candidate.Example
			}
		}
		return existing, nil
	}

	word := &models.Word{
		ID:          uuid.NewString(),
		Text:        candidate.Word,
		Translation: candidate.Translation,
		Example:     candidate.Example,
		Topic:       topic,
		Level:       level,
	}
	if _, err := s.words.Insert(word); err != nil {
		return nil, err
	}

	return word, nil
}

// validCandidate rejects generator output that is not a usable English
// word entry: empty fields, words written in the translation language's
// alphabet, or anything outside Latin script.
func validCandidate(candidate generator.GeneratedWord) bool {
	text := Normalize(candidate.Word)
	if text == "" || Normalize(candidate.Translation) == "" {
		return false
	}

	hasLetter := false
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			if !unicode.In(r, unicode.Latin) {
				return false
			}
			hasLetter = true
		case r == ' ' || r == '-' || r == '\'':
		default:
			return false
		}
	}

	return hasLetter
}
