package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"linguaquest/internal/apperr"
	"linguaquest/internal/database"
	"linguaquest/internal/models"
	"linguaquest/internal/repository"
)

// WordSupplier assembles the word set for a new task.
type WordSupplier interface {
	SupplyWords(ctx context.Context, userID int64, topic string, level models.Level) ([]models.Word, error)
}

// TaskWord is a catalog word together with the user's progress on it
// within one task.
type TaskWord struct {
	Word      models.Word
	Completed bool
	Score     int
	Attempts  int
}

// TaskDetail is a task with its full word set.
type TaskDetail struct {
	Task  models.Task
	Words []TaskWord
}

// WordResult is one per-word outcome submitted on task completion.
type WordResult struct {
	WordID string
	Score  int
}

// CompletionResult is the outcome of a completed task.
type CompletionResult struct {
	Task   models.Task
	Passed bool
}

// TaskService owns the task lifecycle: starting (or resuming) tasks,
// attaching words, and the completion transaction.
type TaskService struct {
	db        *database.DB
	tasks     *repository.TaskRepository
	words     *repository.WordRepository
	wordTasks *repository.WordTaskRepository
	supplier  WordSupplier
	logger    *zap.Logger
}

// NewTaskService creates the task workflow service.
func NewTaskService(db *database.DB, tasks *repository.TaskRepository, words *repository.WordRepository, wordTasks *repository.WordTaskRepository, supplier WordSupplier, logger *zap.Logger) *TaskService {
	return &TaskService{
		db:        db,
		tasks:     tasks,
		words:     words,
		wordTasks: wordTasks,
		supplier:  supplier,
		logger:    logger,
	}
}

// StartTask returns the user's open task for (topic, level, type) when one
// exists, otherwise creates a new task with a freshly supplied word set.
// The boolean reports whether an existing task was reused.
func (s *TaskService) StartTask(ctx context.Context, userID int64, topic string, level int, taskType models.TaskType) (*TaskDetail, bool, error) {
	if Normalize(topic) == "" {
		return nil, false, apperr.Validation("topic", "topic is required")
	}
	if level < 1 {
		return nil, false, apperr.Validation("level", "level must be at least 1")
	}
	if Normalize(string(taskType)) == "" {
		return nil, false, apperr.Validation("type", "task type is required")
	}

	open, err := s.tasks.FindOpenTask(userID, topic, level, taskType)
	if err != nil {
		return nil, false, apperr.DataAccess("find open task", err)
	}
	if open != nil {
		detail, err := s.loadDetail(open)
		if err != nil {
			return nil, false, err
		}
		return detail, true, nil
	}

	supplied, err := s.supplier.SupplyWords(ctx, userID, topic, models.LevelFromScale(level))
	if err != nil {
		return nil, false, err
	}

	task := &models.Task{UserID: userID, Topic: topic, Level: level, Type: taskType}
	detail, err := s.createWithWords(task, supplied)
	if err != nil {
		return nil, false, err
	}

	s.logger.Info("task started",
		zap.Int64("task_id", detail.Task.ID),
		zap.Int64("user_id", userID),
		zap.String("topic", topic),
		zap.Int("words", len(detail.Words)))

	return detail, false, nil
}

// createWithWords persists the task and its word associations atomically.
// A word whose association fails is dropped with a warning; the task only
// materializes when enough words survive.
func (s *TaskService) createWithWords(task *models.Task, supplied []models.Word) (*TaskDetail, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, &apperr.TransactionFailedError{Err: err}
	}

	taskID, err := s.tasks.Create(tx, task)
	if err != nil {
		tx.Rollback()
		return nil, &apperr.TransactionFailedError{Err: err}
	}

	var attached []TaskWord
	for _, word := range supplied {
		if _, err := s.wordTasks.Insert(tx, taskID, word.ID); err != nil {
			s.logger.Warn("dropping word from new task",
				zap.Int64("task_id", taskID),
				zap.String("word_id", word.ID),
				zap.Error(err))
			continue
		}
		attached = append(attached, TaskWord{Word: word})
	}

	if len(attached) < MinWordsPerTask {
		tx.Rollback()
		return nil, &apperr.InsufficientWordsError{Available: len(attached), Required: MinWordsPerTask}
	}

	if err := tx.Commit(); err != nil {
		return nil, &apperr.TransactionFailedError{Err: err}
	}

	task.ID = taskID
	return &TaskDetail{Task: *task, Words: attached}, nil
}

// AddWords attaches extra catalog words to an open task. Re-adding an
// already attached word is a no-op; the task size cap still applies.
func (s *TaskService) AddWords(ctx context.Context, taskID, userID int64, wordIDs []string) (*TaskDetail, error) {
	if len(wordIDs) == 0 {
		return nil, apperr.Validation("word_ids", "at least one word is required")
	}

	task, err := s.authorizedTask(taskID, userID)
	if err != nil {
		return nil, err
	}
	if task.Completed() {
		return nil, apperr.Validation("task", "task is already completed")
	}

	known, err := s.words.FindByIDs(wordIDs)
	if err != nil {
		return nil, apperr.DataAccess("find words", err)
	}
	if len(known) != len(lo.Uniq(wordIDs)) {
		return nil, apperr.NotFound("word", describeMissing(wordIDs, known))
	}

	existing, err := s.wordTasks.FindByTask(taskID)
	if err != nil {
		return nil, apperr.DataAccess("find task words", err)
	}

	attached := make(map[string]bool, len(existing))
	for _, wit := range existing {
		attached[wit.WordID] = true
	}

	total := len(existing)
	for _, word := range known {
		if attached[word.ID] {
			continue
		}
		if total >= MaxWordsPerTask {
			return nil, apperr.Validation("word_ids",
				fmt.Sprintf("task cannot hold more than %d words", MaxWordsPerTask))
		}
		inserted, err := s.wordTasks.Insert(s.db, taskID, word.ID)
		if err != nil {
			return nil, apperr.DataAccess("attach word", err)
		}
		if inserted {
			total++
		}
	}

	return s.loadDetail(task)
}

// CompleteTask finishes a task and records per-word results, all inside a
// single transaction. Each result upserts its word association: a pair not
// yet on the task is inserted, an existing one is left alone, so a retried
// completion never fails on duplicates. Any failure rolls the whole
// completion back: a task is never left completed with partially recorded
// words.
func (s *TaskService) CompleteTask(ctx context.Context, taskID, userID int64, score int, durationSec *int, results []WordResult) (*CompletionResult, error) {
	if score < 0 || score > 100 {
		return nil, apperr.Validation("score", "score must be between 0 and 100")
	}
	if durationSec != nil && *durationSec < 0 {
		return nil, apperr.Validation("duration_sec", "duration must not be negative")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, &apperr.TransactionFailedError{Err: err}
	}

	task, err := s.tasks.FindByID(tx, taskID)
	if err != nil {
		tx.Rollback()
		return nil, &apperr.TransactionFailedError{Err: err}
	}
	if task == nil {
		tx.Rollback()
		return nil, apperr.NotFound("task", strconv.FormatInt(taskID, 10))
	}
	if task.UserID != userID {
		tx.Rollback()
		return nil, &apperr.AuthorizationError{Message: "task belongs to another user"}
	}
	if task.Completed() {
		tx.Rollback()
		return nil, apperr.Validation("task", "task is already completed")
	}

	completedAt := time.Now().UTC()
	updated, err := s.tasks.Complete(tx, taskID, score, completedAt, durationSec)
	if err != nil {
		tx.Rollback()
		return nil, &apperr.TransactionFailedError{Err: err}
	}
	if !updated {
		// Lost the race against a concurrent completion.
		tx.Rollback()
		return nil, apperr.Validation("task", "task is already completed")
	}

	for _, result := range results {
		if _, err := s.wordTasks.Insert(tx, taskID, result.WordID); err != nil {
			tx.Rollback()
			return nil, &apperr.TransactionFailedError{Err: err}
		}
		matched, err := s.wordTasks.MarkCompleted(tx, taskID, result.WordID, result.Score)
		if err != nil {
			tx.Rollback()
			return nil, &apperr.TransactionFailedError{Err: err}
		}
		if !matched {
			tx.Rollback()
			return nil, &apperr.TransactionFailedError{
				Err: fmt.Errorf("word association %s lost during completion", result.WordID),
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, &apperr.TransactionFailedError{Err: err}
	}

	task.Score = score
	task.CompletedAt = &completedAt
	task.DurationSec = durationSec

	passed := task.Type != models.TaskTypeQuiz || float64(score) >= QuizPassThreshold*100

	s.logger.Info("task completed",
		zap.Int64("task_id", taskID),
		zap.Int64("user_id", userID),
		zap.Int("score", score),
		zap.Bool("passed", passed))

	return &CompletionResult{Task: *task, Passed: passed}, nil
}

// ListTasks retrieves the user's recent tasks, most recent first.
func (s *TaskService) ListTasks(userID int64, limit int) ([]models.Task, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	tasks, err := s.tasks.ListByUser(userID, limit)
	if err != nil {
		return nil, apperr.DataAccess("list tasks", err)
	}
	return tasks, nil
}

// GetTask retrieves a task with its word set and per-word progress.
func (s *TaskService) GetTask(taskID, userID int64) (*TaskDetail, error) {
	task, err := s.authorizedTask(taskID, userID)
	if err != nil {
		return nil, err
	}
	return s.loadDetail(task)
}

func (s *TaskService) authorizedTask(taskID, userID int64) (*models.Task, error) {
	task, err := s.tasks.FindByID(s.db, taskID)
	if err != nil {
		return nil, apperr.DataAccess("find task", err)
	}
	if task == nil {
		return nil, apperr.NotFound("task", strconv.FormatInt(taskID, 10))
	}
	if task.UserID != userID {
		return nil, &apperr.AuthorizationError{Message: "task belongs to another user"}
	}
	return task, nil
}

func (s *TaskService) loadDetail(task *models.Task) (*TaskDetail, error) {
	associations, err := s.wordTasks.FindByTask(task.ID)
	if err != nil {
		return nil, apperr.DataAccess("find task words", err)
	}

	ids := make([]string, len(associations))
	for i, wit := range associations {
		ids[i] = wit.WordID
	}

	words, err := s.words.FindByIDs(ids)
	if err != nil {
		return nil, apperr.DataAccess("find words", err)
	}

	byID := make(map[string]models.Word, len(words))
	for _, word := range words {
		byID[word.ID] = word
	}

	taskWords := make([]TaskWord, 0, len(associations))
	for _, wit := range associations {
		word, ok := byID[wit.WordID]
		if !ok {
			continue
		}
		taskWords = append(taskWords, TaskWord{
			Word:      word,
			Completed: wit.Completed,
			Score:     wit.Score,
			Attempts:  wit.Attempts,
		})
	}

	return &TaskDetail{Task: *task, Words: taskWords}, nil
}

func describeMissing(requested []string, found []models.Word) string {
	known := make(map[string]bool, len(found))
	for _, word := range found {
		known[word.ID] = true
	}
	for _, id := range requested {
		if !known[id] {
			return id
		}
	}
	return "unknown"
}
